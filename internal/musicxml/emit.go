package musicxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/leafo/notengine/internal/ir"
	"github.com/leafo/notengine/internal/pitchcode"
)

// PartMeta is the rendering metadata an emitted part needs that
// ir.MeasurizedPart itself doesn't carry (it's a pure rhythm/pitch
// reduction, not a display record).
type PartMeta struct {
	SystemID      int
	Label         string
	KeySignature  string
	TimeSignature string
	Clef          string
	ShowBracket   bool
}

// Emit produces a complete partwise MusicXML 3.1 document for parts, in
// part_id sort order, consulting meta for each part's display metadata
// (defaulting to zero-value metadata for any part_id meta omits).
func Emit(parts []ir.MeasurizedPart, meta map[string]PartMeta) (string, error) {
	sorted := append([]ir.MeasurizedPart(nil), parts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PartID < sorted[j].PartID })

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<score-partwise version="3.1">` + "\n")
	buf.WriteString(buildPartList(sorted, meta))
	buf.WriteString("\n")

	prevSystem := 0
	for i, p := range sorted {
		pm := meta[p.PartID]
		part := xmlPart{ID: p.PartID}
		for mi, bar := range p.Bars {
			m := xmlMeasure{Number: strconv.Itoa(mi + 1)}
			if mi == 0 {
				if i > 0 && pm.SystemID != prevSystem {
					m.Print = &xmlPrint{NewSystem: "yes"}
				}
				m.Attributes = buildAttributes(bar.Divisions, pm, true)
			} else {
				m.Attributes = buildAttributes(bar.Divisions, pm, false)
			}
			m.Notes = buildNotes(bar.Events)
			part.Measures = append(part.Measures, m)
		}
		prevSystem = pm.SystemID

		encoded, err := encodePart(part)
		if err != nil {
			return "", fmt.Errorf("musicxml: encoding part %q: %w", p.PartID, err)
		}
		buf.WriteString(encoded)
		buf.WriteString("\n")
	}

	buf.WriteString("</score-partwise>\n")

	return selfClose(buf.String()), nil
}

func encodePart(p xmlPart) (string, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("  ", "  ")
	if err := enc.Encode(p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// buildPartList assembles <part-list> by hand: a run of two or more
// consecutive parts sharing one system_id is wrapped in a <part-group>
// of symbol bracket; any member of that run with ShowBracket=false marks
// the group's start element print-object="no".
func buildPartList(sorted []ir.MeasurizedPart, meta map[string]PartMeta) string {
	var b strings.Builder
	b.WriteString("  <part-list>\n")

	groupNumber := 0
	i := 0
	for i < len(sorted) {
		j := i + 1
		sys := meta[sorted[i].PartID].SystemID
		for j < len(sorted) && meta[sorted[j].PartID].SystemID == sys {
			j++
		}

		grouped := j-i >= 2
		if grouped {
			groupNumber++
			hideBracket := false
			for k := i; k < j; k++ {
				if !meta[sorted[k].PartID].ShowBracket {
					hideBracket = true
				}
			}
			printAttr := ""
			if hideBracket {
				printAttr = ` print-object="no"`
			}
			fmt.Fprintf(&b, "    <part-group type=\"start\" number=\"%d\" symbol=\"bracket\"%s/>\n", groupNumber, printAttr)
		}
		for k := i; k < j; k++ {
			pm := meta[sorted[k].PartID]
			fmt.Fprintf(&b, "    <score-part id=\"%s\">\n      <part-name>%s</part-name>\n    </score-part>\n",
				escapeText(sorted[k].PartID), escapeText(pm.Label))
		}
		if grouped {
			fmt.Fprintf(&b, "    <part-group type=\"stop\" number=\"%d\"/>\n", groupNumber)
		}
		i = j
	}

	b.WriteString("  </part-list>")
	return b.String()
}

func buildAttributes(divisions int, pm PartMeta, full bool) *attributes {
	if !full {
		return &attributes{Divisions: divisions}
	}
	return &attributes{
		Divisions: divisions,
		Key:       &keyElem{Fifths: fifthsFor(pm.KeySignature)},
		Time:      parseTimeSignature(pm.TimeSignature),
		Clef:      clefFor(pm.Clef),
	}
}

var keyFifths = map[string]int{
	"C": 0, "Am": 0,
	"G": 1, "Em": 1,
	"D": 2, "Bm": 2,
	"A": 3, "F#m": 3,
	"E": 4, "C#m": 4,
	"B": 5, "G#m": 5,
	"F#": 6, "D#m": 6,
	"C#": 7, "A#m": 7,
	"F": -1, "Dm": -1,
	"Bb": -2, "Gm": -2,
	"Eb": -3, "Cm": -3,
	"Ab": -4, "Fm": -4,
	"Db": -5, "Bbm": -5,
	"Gb": -6, "Ebm": -6,
	"Cb": -7, "Abm": -7,
}

func fifthsFor(key string) int {
	if key == "" {
		return 0
	}
	return keyFifths[key]
}

func parseTimeSignature(ts string) *timeElem {
	beats, beatType := "4", "4"
	if parts := strings.SplitN(ts, "/", 2); len(parts) == 2 && parts[0] != "" && parts[1] != "" {
		beats, beatType = parts[0], parts[1]
	}
	return &timeElem{Beats: beats, BeatType: beatType}
}

func clefFor(name string) *clefElem {
	switch strings.ToLower(name) {
	case "bass", "f":
		return &clefElem{Sign: "F", Line: 4}
	case "alto", "c":
		return &clefElem{Sign: "C", Line: 3}
	default:
		return &clefElem{Sign: "G", Line: 2}
	}
}

var stepLetters = [7]string{"C", "D", "E", "F", "G", "A", "B"}

var alterFor = map[pitchcode.AccidentalType]float64{
	pitchcode.AccidentalNone:        0,
	pitchcode.AccidentalSharp:       1,
	pitchcode.AccidentalFlat:        -1,
	pitchcode.AccidentalDoubleSharp: 2,
	pitchcode.AccidentalDoubleFlat:  -2,
	pitchcode.AccidentalHalfFlat:    -0.5,
}

func pitchElemFor(p ir.PitchInfo) *pitchElem {
	return &pitchElem{
		Step:   stepLetters[p.Pitch.Degree()-1],
		Alter:  alterFor[p.Pitch.AccidentalType()],
		Octave: 4 + int(p.Octave),
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func buildNotes(events []ir.ExportEvent) []xmlNote {
	var notes []xmlNote
	for _, ev := range events {
		switch ev.Kind {
		case ir.EventRest:
			notes = append(notes, xmlNote{Rest: &struct{}{}, Duration: ev.Rest.Divisions})

		case ir.EventNote:
			nd := ev.Note
			for _, gn := range nd.GraceNotesBefore {
				notes = append(notes, xmlNote{
					Grace: &graceElem{Slash: yesNo(gn.Slash)},
					Pitch: pitchElemFor(gn.Pitch),
				})
			}

			note := xmlNote{
				Pitch:    pitchElemFor(nd.Pitch),
				Duration: nd.Divisions,
			}
			note.Tie, note.TimeModification, note.Notations = tieAndNotations(nd)
			if nd.Lyric != "" {
				note.Lyric = lyricFor(nd.Lyric)
			}
			notes = append(notes, note)

			for _, gn := range nd.GraceNotesAfter {
				notes = append(notes, xmlNote{
					Grace: &graceElem{Slash: yesNo(gn.Slash), StealTimeFollowing: "100"},
					Pitch: pitchElemFor(gn.Pitch),
				})
			}

		case ir.EventChord:
			// Chord construction (simultaneous-voice detection) isn't
			// produced by the IR builder yet; nothing to emit.
		}
	}
	return notes
}

func tieAndNotations(nd *ir.NoteData) ([]tieElem, *timeModElem, *notationsElem) {
	var ties []tieElem
	var tied []tiedElem
	switch nd.Tie {
	case ir.TieStart:
		ties = append(ties, tieElem{Type: "start"})
		tied = append(tied, tiedElem{Type: "start"})
	case ir.TieStop:
		ties = append(ties, tieElem{Type: "stop"})
		tied = append(tied, tiedElem{Type: "stop"})
	case ir.TieBoth:
		ties = append(ties, tieElem{Type: "stop"}, tieElem{Type: "start"})
		tied = append(tied, tiedElem{Type: "stop"}, tiedElem{Type: "start"})
	}

	var tuplets []tupletElem
	if nd.Tuplet != nil {
		if nd.Tuplet.BracketStart {
			tuplets = append(tuplets, tupletElem{Type: "start"})
		}
		if nd.Tuplet.BracketStop {
			tuplets = append(tuplets, tupletElem{Type: "stop"})
		}
	}

	var slurs []slurElem
	if nd.Slur != nil {
		if nd.Slur.Start {
			slurs = append(slurs, slurElem{Type: "start"})
		}
		if nd.Slur.Stop {
			slurs = append(slurs, slurElem{Type: "stop"})
		}
	}

	var notations *notationsElem
	if len(tied) > 0 || len(tuplets) > 0 || len(slurs) > 0 {
		notations = &notationsElem{Tied: tied, Tuplet: tuplets, Slur: slurs}
	}

	var tm *timeModElem
	if nd.Tuplet != nil {
		tm = &timeModElem{ActualNotes: nd.Tuplet.ActualNotes, NormalNotes: nd.Tuplet.NormalNotes}
	}

	return ties, tm, notations
}

func lyricFor(raw string) *lyricElem {
	syllabic := "single"
	text := raw
	if strings.HasSuffix(raw, "-") {
		syllabic = "begin"
		text = strings.TrimSuffix(raw, "-")
	}
	return &lyricElem{Number: "1", Syllabic: syllabic, Text: text}
}

// selfClose folds <tag attrs></tag> into <tag attrs/>, matching what
// MusicXML readers expect for empty elements.
var emptyTagRegex = regexp.MustCompile(`<(\w[\w-]*)([^>]*?)></\w[\w-]*>`)

func selfClose(xmlString string) string {
	return emptyTagRegex.ReplaceAllStringFunc(xmlString, func(match string) string {
		matches := emptyTagRegex.FindStringSubmatch(match)
		if len(matches) >= 3 {
			return "<" + matches[1] + matches[2] + "/>"
		}
		return match
	})
}
