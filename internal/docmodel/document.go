package docmodel

import "fmt"

// Document is an ordered sequence of lines, with optional title and
// composer.
type Document struct {
	Title    string
	Composer string
	Lines    []*Line
}

// New creates an empty document.
func New() *Document {
	return &Document{}
}

// AddLine appends a line and recomputes system/part identity.
func (d *Document) AddLine(l *Line) {
	d.Lines = append(d.Lines, l)
	d.Recompute()
}

// Recompute walks the lines top-to-bottom assigning SystemID and PartID:
// every SystemStartCount (or standalone, count=1) line starts a new
// system and bumps SystemID; within a system the k-th line
// (0-indexed) always receives PartID "P{k+1}", so that a line at the same
// row position in a later system continues the same part.
func (d *Document) Recompute() {
	systemID := 0
	i := 0
	for i < len(d.Lines) {
		n := d.Lines[i].SystemStartCount
		if n <= 0 {
			n = 1
		}
		systemID++
		for k := 0; k < n && i+k < len(d.Lines); k++ {
			d.Lines[i+k].SystemID = systemID
			d.Lines[i+k].PartID = fmt.Sprintf("P%d", k+1)
		}
		i += n
	}
}

// PartIDs returns the distinct part ids in the document, in first-seen
// (equivalently sorted, since part ids are assigned P1, P2, ... in row
// order) order.
func (d *Document) PartIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, l := range d.Lines {
		if !seen[l.PartID] {
			seen[l.PartID] = true
			ids = append(ids, l.PartID)
		}
	}
	return ids
}

// LinesForPart returns every line sharing partID, in document order —
// the set the MusicXML emitter concatenates into one <part>.
func (d *Document) LinesForPart(partID string) []*Line {
	var out []*Line
	for _, l := range d.Lines {
		if l.PartID == partID {
			out = append(out, l)
		}
	}
	return out
}
