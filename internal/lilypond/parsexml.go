package lilypond

import (
	"encoding/xml"
	"math"
)

// The following mirror internal/musicxml's (unexported) struct tree just
// closely enough to unmarshal the subset of partwise MusicXML this
// converter reads back: attributes, notes, ties, tuplets and slurs. This
// package treats MusicXML text as its input boundary rather than reaching
// into musicxml's internal types, the same two-stage parse-then-convert
// shape the rest of the toolchain import pipeline uses elsewhere.
type scorePartwise struct {
	XMLName xml.Name  `xml:"score-partwise"`
	Parts   []xmlPart `xml:"part"`
}

type xmlPart struct {
	ID       string       `xml:"id,attr"`
	Measures []xmlMeasure `xml:"measure"`
}

type xmlMeasure struct {
	Attributes *xmlAttributes `xml:"attributes"`
	Notes      []xmlNote      `xml:"note"`
}

type xmlAttributes struct {
	Divisions int      `xml:"divisions"`
	Key       *xmlKey  `xml:"key"`
	Time      *xmlTime `xml:"time"`
	Clef      *xmlClef `xml:"clef"`
}

type xmlKey struct {
	Fifths int `xml:"fifths"`
}

type xmlTime struct {
	Beats    string `xml:"beats"`
	BeatType string `xml:"beat-type"`
}

type xmlClef struct {
	Sign string `xml:"sign"`
	Line int    `xml:"line"`
}

type xmlNote struct {
	Grace            *xmlGrace     `xml:"grace"`
	Rest             *struct{}     `xml:"rest"`
	Pitch            *xmlPitch     `xml:"pitch"`
	Duration         int           `xml:"duration"`
	Tie              []xmlTie      `xml:"tie"`
	TimeModification *xmlTimeMod   `xml:"time-modification"`
	Notations        *xmlNotations `xml:"notations"`
}

type xmlGrace struct {
	Slash string `xml:"slash,attr"`
}

type xmlPitch struct {
	Step   string  `xml:"step"`
	Alter  float64 `xml:"alter"`
	Octave int     `xml:"octave"`
}

type xmlTie struct {
	Type string `xml:"type,attr"`
}

type xmlTimeMod struct {
	ActualNotes int `xml:"actual-notes"`
	NormalNotes int `xml:"normal-notes"`
}

type xmlNotations struct {
	Tuplet []xmlTypeAttr `xml:"tuplet"`
	Slur   []xmlSlur     `xml:"slur"`
}

type xmlTypeAttr struct {
	Type string `xml:"type,attr"`
}

type xmlSlur struct {
	Type   string `xml:"type,attr"`
	Number int    `xml:"number,attr"`
}

// ParseParts parses a complete partwise MusicXML document (as produced by
// internal/musicxml.Emit) into one SequentialMusic tree per part, in
// document order.
func ParseParts(source string) ([]SequentialMusic, error) {
	var doc scorePartwise
	if err := xml.Unmarshal([]byte(source), &doc); err != nil {
		return nil, err
	}

	parts := make([]SequentialMusic, 0, len(doc.Parts))
	for _, p := range doc.Parts {
		parts = append(parts, partToMusic(p))
	}
	return parts, nil
}

func partToMusic(p xmlPart) SequentialMusic {
	var seq SequentialMusic

	var pendingTuplet *TupletMusic
	flushTuplet := func() {
		if pendingTuplet != nil {
			seq.Elements = append(seq.Elements, Music{Kind: KindTuplet, Tuplet: pendingTuplet})
			pendingTuplet = nil
		}
	}
	appendMusic := func(m Music) {
		if pendingTuplet != nil {
			pendingTuplet.Contents = append(pendingTuplet.Contents, m)
		} else {
			seq.Elements = append(seq.Elements, m)
		}
	}

	divisions := 1
	for _, measure := range p.Measures {
		if measure.Attributes != nil {
			if measure.Attributes.Divisions > 0 {
				divisions = measure.Attributes.Divisions
			}
			appendAttributeChanges(&seq, measure.Attributes)
		}

		for _, n := range measure.Notes {
			tupletStart, tupletStop := tupletFlags(n)

			if tupletStart && pendingTuplet == nil {
				pendingTuplet = &TupletMusic{
					ActualNotes: n.TimeModification.ActualNotes,
					NormalNotes: n.TimeModification.NormalNotes,
				}
			}

			appendMusic(noteToMusic(n, divisions))

			if tupletStop {
				flushTuplet()
			}
		}
	}
	flushTuplet()

	return seq
}

func appendAttributeChanges(seq *SequentialMusic, attrs *xmlAttributes) {
	if attrs.Key != nil {
		seq.Elements = append(seq.Elements, Music{Kind: KindKeyChange, KeyChange: &KeySignature{Fifths: attrs.Key.Fifths}})
	}
	if attrs.Time != nil {
		seq.Elements = append(seq.Elements, Music{Kind: KindTimeChange, TimeChange: &TimeSignature{
			Beats: attrs.Time.Beats, BeatType: attrs.Time.BeatType,
		}})
	}
	if attrs.Clef != nil {
		seq.Elements = append(seq.Elements, Music{Kind: KindClefChange, ClefChange: &Clef{
			Sign: attrs.Clef.Sign, Line: attrs.Clef.Line,
		}})
	}
}

func tupletFlags(n xmlNote) (start, stop bool) {
	if n.Notations == nil {
		return false, false
	}
	for _, t := range n.Notations.Tuplet {
		if t.Type == "start" {
			start = true
		}
		if t.Type == "stop" {
			stop = true
		}
	}
	return start, stop
}

func noteToMusic(n xmlNote, divisions int) Music {
	if n.Rest != nil {
		return Music{Kind: KindRest, Rest: &RestEvent{Duration: durationFromDivisions(n.Duration, divisions, n)}}
	}

	ev := &NoteEvent{
		Duration: durationFromDivisions(n.Duration, divisions, n),
	}
	if n.Pitch != nil {
		ev.Pitch = Pitch{
			Step:   n.Pitch.Step,
			Alter:  int(math.Round(n.Pitch.Alter * 2)),
			Octave: n.Pitch.Octave,
		}
	}
	if n.Grace != nil {
		ev.IsGrace = true
		ev.GraceSlash = n.Grace.Slash == "yes"
	}
	for _, t := range n.Tie {
		if t.Type == "start" {
			ev.TieStart = true
		}
	}
	if n.Notations != nil {
		for _, s := range n.Notations.Slur {
			switch s.Type {
			case "start":
				ev.SlurStart = true
				ev.SlurNumber = s.Number
			case "stop":
				ev.SlurStop = true
				ev.SlurNumber = s.Number
			}
		}
	}

	return Music{Kind: KindNote, Note: ev}
}

// durationFromDivisions recovers a LilyPond note length from a raw
// divisions-scaled tick count: each measure's own <divisions> counts ticks
// per quarter note, so ticks/(4·divisions) gives the duration as a
// fraction of a whole note. A tuplet member's written duration (what
// LilyPond needs inside \tuplet actual/normal { }) is the sounding
// duration scaled back up by actual/normal.
func durationFromDivisions(ticks, divisions int, n xmlNote) Duration {
	num, den := ticks, divisions*4
	if n.TimeModification != nil && n.TimeModification.ActualNotes > 0 && n.TimeModification.NormalNotes > 0 {
		num *= n.TimeModification.ActualNotes
		den *= n.TimeModification.NormalNotes
	}
	return fractionToDuration(num, den)
}
