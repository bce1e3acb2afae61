// Package docmodel implements the document/line model: lines grouped
// into vertical systems, each assigned a stable part identity.
package docmodel

import (
	"github.com/leafo/notengine/internal/annotation"
	"github.com/leafo/notengine/internal/cell"
	"github.com/leafo/notengine/internal/pitch"
	"golang.org/x/text/unicode/norm"
)

// StaffRole tags what a line represents in the rendered score.
type StaffRole int

const (
	Melody StaffRole = iota
	Bass
	Drum
	GroupHeader
)

func (r StaffRole) String() string {
	switch r {
	case Bass:
		return "Bass"
	case Drum:
		return "Drum"
	case GroupHeader:
		return "GroupHeader"
	default:
		return "Melody"
	}
}

// Line is an ordered sequence of cells plus per-line metadata.
type Line struct {
	Cells []cell.Cell

	Label         string
	Tala          string
	Lyrics        string
	Tonic         string
	System        pitch.System
	KeySignature  string
	TimeSignature string
	Tempo         string
	StaffRole     StaffRole

	// SystemStartCount, when non-zero, declares that this line and the
	// following (SystemStartCount-1) lines form one vertical system of
	// that many staves. Zero means "standalone line", which
	// Document.Recompute treats as a system of one.
	SystemStartCount int

	// SystemID and PartID are derived fields recomputed by
	// Document.Recompute after every edit; never set them directly.
	SystemID int
	PartID   string

	Annotations annotation.Layer
}

// NewLine creates an empty line typed in the given pitch system.
func NewLine(system pitch.System) *Line {
	return &Line{System: system}
}

// Text renders the line's canonical textual form: the concatenation of
// each cell's glyph.
func (l *Line) Text() string {
	var b []byte
	for _, c := range l.Cells {
		b = append(b, c.Text...)
	}
	return string(b)
}

// InsertChar inserts r at column, reclassifying and re-running the
// continuation pass, then shifts this line's annotations.
func (l *Line) InsertChar(column int, r rune) {
	l.Cells = cell.InsertChar(l.Cells, column, r, l.System)
	l.Annotations.Insert(column)
}

// DeleteChar removes the cell at column and shifts annotations to match.
// Deleting a continuation cell does not rerun the continuation pass; the
// preceding root cell's merged text is preserved.
func (l *Line) DeleteChar(column int) {
	l.Cells = cell.DeleteChar(l.Cells, column)
	l.Annotations.Delete(column)
}

// ParseText builds a fresh cell slice by parsing text character by
// character through InsertChar. text is normalized to NFC first so a
// combining-mark sequence typed or pasted as separate codepoints lands on
// the same single cell its precomposed form would, before the per-system
// longest-match tables ever see it.
func ParseText(text string, system pitch.System) []cell.Cell {
	text = norm.NFC.String(text)
	var cells []cell.Cell
	for _, r := range text {
		cells = cell.InsertChar(cells, len(cells), r, system)
	}
	return cells
}
