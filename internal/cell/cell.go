// Package cell implements the atomic per-character unit of user input and
// the continuation-marking pass that groups multi-character pitch glyphs
// (e.g. "1#") into one root cell plus trailing continuation cells.
package cell

import (
	"github.com/leafo/notengine/internal/pitch"
	"github.com/leafo/notengine/internal/pitchcode"
)

// Kind classifies a cell's role in the rhythm and rendering pipeline.
type Kind int

const (
	Unknown Kind = iota
	PitchedElement
	UnpitchedElement
	Barline
	BreathMark
	Whitespace
	Text
)

func (k Kind) String() string {
	switch k {
	case PitchedElement:
		return "PitchedElement"
	case UnpitchedElement:
		return "UnpitchedElement"
	case Barline:
		return "Barline"
	case BreathMark:
		return "BreathMark"
	case Whitespace:
		return "Whitespace"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// SlurIndicator marks whether a cell opens or closes a slur span. The
// authoritative slur storage lives in package annotation; this flag is a
// display/round-trip convenience mirrored onto the cell at build time.
type SlurIndicator int

const (
	SlurNone SlurIndicator = iota
	SlurStart
	SlurEnd
)

// Placement distinguishes a grace-note ornament attached before or after
// its host note.
type Placement int

const (
	Before Placement = iota
	After
)

// Ornament is a small cell sequence attached to a host cell. Ornament cells
// are rhythm-transparent: package rhythm excludes them from subdivision
// counting, and package ir lifts them to GraceNote entries.
type Ornament struct {
	Cells     []Cell
	Placement Placement
}

// BeatGroupIndicator marks a cell as the explicit start or end of a
// user-drawn beat group, distinct from the implicit whitespace/barline/
// breath-mark grouping. It lets a host force a beat boundary inside what
// would otherwise be one implicit beat.
type BeatGroupIndicator int

const (
	BeatGroupNone BeatGroupIndicator = iota
	BeatGroupBegin
	BeatGroupEnd
)

// Cell is the atomic unit of user input.
type Cell struct {
	Codepoint rune
	Text      string
	Kind      Kind

	HasPitch  bool
	Pitch     pitchcode.PitchCode
	System    pitch.System
	Octave    int8 // in [-4, +4]

	Continuation bool
	Slur         SlurIndicator
	Ornament     *Ornament
	BeatGroup    BeatGroupIndicator

	// Layout fields: populated by the host's renderer, untouched by the
	// core pipeline. Kept here rather than in a side table so a single
	// event struct carries both its musical and its visual state.
	X, Y, W, H float64

	Column int
}

// IsRhythmic reports whether c occupies its own beat-subdivision slot:
// continuations and ornament hosts' attached ornament cells never do.
// Note that a cell carrying a non-nil Ornament is itself still rhythmic;
// only the cells *inside* the Ornament are transparent.
func (c Cell) IsRhythmic() bool {
	return !c.Continuation
}

// NewFromRune classifies a single typed character: it tries every pitch
// system's longest-match parser for system, then falls back to
// punctuation/whitespace/barline classification, then plain Text.
func NewFromRune(r rune, system pitch.System, column int) Cell {
	s := string(r)

	if code, n, ok := pitch.Parse(system, s); ok {
		return Cell{
			Codepoint: r,
			Text:      s[:n],
			Kind:      PitchedElement,
			HasPitch:  true,
			Pitch:     code,
			System:    system,
			Column:    column,
		}
	}

	switch r {
	case '|':
		return Cell{Codepoint: r, Text: s, Kind: Barline, Column: column}
	case '\'':
		return Cell{Codepoint: r, Text: s, Kind: BreathMark, Column: column}
	case ' ', '\t':
		return Cell{Codepoint: r, Text: s, Kind: Whitespace, Column: column}
	case '-':
		return Cell{Codepoint: r, Text: s, Kind: UnpitchedElement, Column: column}
	default:
		return Cell{Codepoint: r, Text: s, Kind: Text, Column: column}
	}
}
