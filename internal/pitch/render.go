package pitch

import "github.com/leafo/notengine/internal/pitchcode"

// Renderer is implemented by a pitch system's token table when it can also
// go the other way: turning a PitchCode back into that system's notation.
// Not every system is total over every accidental (Tabla bols denote
// strokes, not scale degrees, and Sargam has no half-flat convention), so
// RenderPitch reports ok=false rather than inventing a spelling the
// system's own Parser could not subsequently re-parse.
type Renderer interface {
	RenderPitch(code pitchcode.PitchCode) (text string, ok bool)
}

// Render looks up system's Parser and, if it also implements Renderer,
// renders code in that system's notation. Returns ok=false if system is
// unknown, code is invalid, or the system has no spelling for code.
func Render(system System, code pitchcode.PitchCode) (string, bool) {
	r, ok := Dispatch(system).(Renderer)
	if !ok {
		return "", false
	}
	return r.RenderPitch(code)
}

// accidentalText gives the suffix glyph for each accidental state, shared
// by every system whose alphabet is a single letter per degree.
var accidentalText = map[pitchcode.AccidentalType]string{
	pitchcode.AccidentalNone:        "",
	pitchcode.AccidentalSharp:       "#",
	pitchcode.AccidentalFlat:        "b",
	pitchcode.AccidentalDoubleSharp: "##",
	pitchcode.AccidentalDoubleFlat:  "bb",
	pitchcode.AccidentalHalfFlat:    "b/",
}

func (numberSystem) RenderPitch(code pitchcode.PitchCode) (string, bool) {
	if !code.Valid() {
		return "", false
	}
	return code.String(), true
}

var westernLetters = [7]string{"c", "d", "e", "f", "g", "a", "b"}

func (westernSystem) RenderPitch(code pitchcode.PitchCode) (string, bool) {
	if !code.Valid() {
		return "", false
	}
	return westernLetters[code.Degree()-1] + accidentalText[code.AccidentalType()], true
}

// sargamRender gives the canonical spelling for every PitchCode Sargam (and
// Bhatkhande, which shares its token set) can actually round-trip through
// longestMatch(sargamTokens, ...); half-flats have no token at all so are
// left out, matching sargamTokens itself.
var sargamRender = map[pitchcode.PitchCode]string{
	pitchcode.N1: "S", pitchcode.N2: "R", pitchcode.N3: "G", pitchcode.N4: "m",
	pitchcode.N5: "P", pitchcode.N6: "D", pitchcode.N7: "N",

	pitchcode.N1s: "S#", pitchcode.N2s: "R#", pitchcode.N3s: "G#", pitchcode.N4s: "M",
	pitchcode.N5s: "P#", pitchcode.N6s: "D#", pitchcode.N7s: "N#",

	pitchcode.N1b: "Sb", pitchcode.N2b: "r", pitchcode.N3b: "g", pitchcode.N4b: "mb",
	pitchcode.N5b: "Pb", pitchcode.N6b: "d", pitchcode.N7b: "n",

	pitchcode.N1ss: "S##", pitchcode.N2ss: "R##", pitchcode.N3ss: "G##", pitchcode.N4ss: "M#",
	pitchcode.N5ss: "P##", pitchcode.N6ss: "D##", pitchcode.N7ss: "N##",

	pitchcode.N1bb: "Sbb", pitchcode.N2bb: "Rbb", pitchcode.N3bb: "Gbb", pitchcode.N4bb: "mbb",
	pitchcode.N5bb: "Pbb", pitchcode.N6bb: "Dbb", pitchcode.N7bb: "Nbb",
}

func (sargamSystem) RenderPitch(code pitchcode.PitchCode) (string, bool) {
	text, ok := sargamRender[code]
	return text, ok
}

func (bhatkhandeSystem) RenderPitch(code pitchcode.PitchCode) (string, bool) {
	text, ok := sargamRender[code]
	return text, ok
}

// tablaRender gives the canonical bol for the six degrees a stroke is
// assigned to; degree 4 and every accidental have no bol (tabla.go: "Degree
// assignment is arbitrary ... bols denote strokes, not scale degrees").
var tablaRender = map[pitchcode.PitchCode]string{
	pitchcode.N1: "dha",
	pitchcode.N2: "ta",
	pitchcode.N3: "tita",
	pitchcode.N5: "tin",
	pitchcode.N6: "ke",
	pitchcode.N7: "te",
}

func (tablaSystem) RenderPitch(code pitchcode.PitchCode) (string, bool) {
	text, ok := tablaRender[code]
	return text, ok
}
