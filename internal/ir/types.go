// Package ir defines the intermediate representation emitted formats are
// built from: a Line's cells, annotations and beats reduced to a stream
// of measures and export events carrying only the information an
// emitter needs (divisions, pitch, ties, slurs, lyrics, grace notes,
// tuplets) with no notation-specific detail left in it.
package ir

import "github.com/leafo/notengine/internal/pitchcode"

// Fraction is a rational duration in lowest terms, always positive.
type Fraction struct {
	Numerator   int
	Denominator int
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// NewFraction reduces num/den to lowest terms.
func NewFraction(num, den int) Fraction {
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(num, den)
	if g == 0 {
		g = 1
	}
	return Fraction{Numerator: num / g, Denominator: den / g}
}

// PitchInfo is a sounding pitch: a pitch code plus its octave.
type PitchInfo struct {
	Pitch  pitchcode.PitchCode
	Octave int8
}

// Placement distinguishes a grace note attached before or after its host.
type Placement int

const (
	Before Placement = iota
	After
)

// GraceNote is an unmeasured ornamental note attached to a host event.
type GraceNote struct {
	Pitch     PitchInfo
	Placement Placement
	Slash     bool // true for a short appoggiatura, false for a long one
}

// TupletInfo marks an event as a member of a tuplet bracket.
type TupletInfo struct {
	ActualNotes  int
	NormalNotes  int
	BracketStart bool
	BracketStop  bool
}

// TieState marks whether an event ties to its neighbor.
type TieState int

const (
	TieNone  TieState = iota
	TieStart          // ties into the following event
	TieStop           // ties from the preceding event
	TieBoth           // both: a note held through from before and into after
)

// NoteData is one sounding, pitched export event.
type NoteData struct {
	Pitch            PitchInfo
	Divisions        int
	Fraction         Fraction
	GraceNotesBefore []GraceNote
	GraceNotesAfter  []GraceNote
	Lyric            string
	Slur             *SlurMark
	Tie              TieState
	Tuplet           *TupletInfo
	Beam             bool
	BreathMarkAfter  bool
}

// SlurMark records this event's role at one endpoint of a slur; an event
// can both end one slur and start another.
type SlurMark struct {
	Start bool
	Stop  bool
}

// RestData is a silent export event.
type RestData struct {
	Divisions int
	Fraction  Fraction
}

// ChordData is two or more simultaneous pitches sharing one duration.
type ChordData struct {
	Pitches  []PitchInfo
	Fraction Fraction
	Lyric    string
	Slur     *SlurMark
}

// EventKind discriminates ExportEvent's variant.
type EventKind int

const (
	EventNote EventKind = iota
	EventRest
	EventChord
)

// ExportEvent is one of Note(NoteData) | Rest(RestData) | Chord(ChordData).
// Exactly one of Note/Rest/Chord is populated, selected by Kind.
type ExportEvent struct {
	Kind  EventKind
	Note  *NoteData
	Rest  *RestData
	Chord *ChordData
}

// ExportMeasure is one barline-delimited segment of a line, already
// divisions-normalized: Divisions is the LCM of every beat's normalized
// subdivision count inside it, and every event's own Divisions is its
// share of that total.
type ExportMeasure struct {
	Divisions int
	Events    []ExportEvent
}

// ExportLine is one staff's full measure sequence plus the rendering
// metadata an emitter needs but the IR builder itself does not interpret.
type ExportLine struct {
	SystemID      int
	PartID        string
	StaffRole     string
	Label         string
	KeySignature  string
	TimeSignature string
	Clef          string
	Lyrics        string
	ShowBracket   bool
	Measures      []ExportMeasure
}

// MeasurizedPart is the measurization stage's output for one part_id: its
// bar sequence after rest-padding and divisions rescaling, plus the
// divisions value every bar in it now shares.
type MeasurizedPart struct {
	PartID          string
	Bars            []ExportMeasure
	GlobalDivisions int
}
