// Package musicxml emits partwise MusicXML 3.1 from measurized IR,
// following the same struct-tree-plus-encoding/xml shape the engine's
// other tree-structured export format uses, with a post-process pass
// over the encoder's output to fold empty elements into self-closing
// tags the way MusicXML readers expect.
package musicxml

import "encoding/xml"

// xmlPart marshals to a self-contained <part id="...">...</part> element.
// <part-list> is assembled by hand in emit.go instead of through a struct:
// its <score-part> and <part-group> children interleave in document order
// in a way a static field-tagged struct can't express cleanly.
type xmlPart struct {
	XMLName  xml.Name     `xml:"part"`
	ID       string       `xml:"id,attr"`
	Measures []xmlMeasure `xml:"measure"`
}

type xmlMeasure struct {
	Number     string      `xml:"number,attr"`
	Print      *xmlPrint   `xml:"print,omitempty"`
	Attributes *attributes `xml:"attributes,omitempty"`
	Notes      []xmlNote   `xml:"note"`
}

type xmlPrint struct {
	NewSystem string `xml:"new-system,attr,omitempty"`
}

type attributes struct {
	Divisions int       `xml:"divisions,omitempty"`
	Key       *keyElem  `xml:"key,omitempty"`
	Time      *timeElem `xml:"time,omitempty"`
	Clef      *clefElem `xml:"clef,omitempty"`
}

type keyElem struct {
	Fifths int `xml:"fifths"`
}

type timeElem struct {
	Beats    string `xml:"beats"`
	BeatType string `xml:"beat-type"`
}

type clefElem struct {
	Sign string `xml:"sign"`
	Line int    `xml:"line"`
}

type xmlNote struct {
	Grace            *graceElem     `xml:"grace,omitempty"`
	Rest             *struct{}      `xml:"rest,omitempty"`
	Pitch            *pitchElem     `xml:"pitch,omitempty"`
	Duration         int            `xml:"duration,omitempty"`
	Tie              []tieElem      `xml:"tie,omitempty"`
	TimeModification *timeModElem   `xml:"time-modification,omitempty"`
	Notations        *notationsElem `xml:"notations,omitempty"`
	Lyric            *lyricElem     `xml:"lyric,omitempty"`
}

type graceElem struct {
	Slash             string `xml:"slash,attr,omitempty"`
	StealTimeFollowing string `xml:"steal-time-following,attr,omitempty"`
}

type pitchElem struct {
	Step   string  `xml:"step"`
	Alter  float64 `xml:"alter,omitempty"`
	Octave int     `xml:"octave"`
}

type tieElem struct {
	Type string `xml:"type,attr"`
}

type timeModElem struct {
	ActualNotes int `xml:"actual-notes"`
	NormalNotes int `xml:"normal-notes"`
}

type notationsElem struct {
	Tied   []tiedElem   `xml:"tied,omitempty"`
	Tuplet []tupletElem `xml:"tuplet,omitempty"`
	Slur   []slurElem   `xml:"slur,omitempty"`
}

type tiedElem struct {
	Type string `xml:"type,attr"`
}

type tupletElem struct {
	Type string `xml:"type,attr"`
}

type slurElem struct {
	Type   string `xml:"type,attr"`
	Number int    `xml:"number,attr,omitempty"`
}

type lyricElem struct {
	Number   string `xml:"number,attr"`
	Syllabic string `xml:"syllabic"`
	Text     string `xml:"text"`
}
