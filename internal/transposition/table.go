package transposition

import "github.com/leafo/notengine/internal/pitchcode"

// naturalScale gives each tonic's 7 natural scale-degree spellings (the
// letter name plus whatever accidental that letter carries in this key's
// signature, before any additional sharp/flat the caller asks for). Ported
// from a per-tonic lookup table: every major
// scale written out in its own key signature's proper spelling, so degree
// 4 of F major is "Bb" rather than "A#", etc.
var naturalScale = map[Tonic][7]string{
	C:  {"C", "D", "E", "F", "G", "A", "B"},
	Cs: {"C#", "D#", "E#", "F#", "G#", "A#", "B#"},
	Db: {"Db", "Eb", "F", "Gb", "Ab", "Bb", "C"},
	D:  {"D", "E", "F#", "G", "A", "B", "C#"},
	Ds: {"D#", "E#", "F##", "G#", "A#", "B#", "C##"},
	Eb: {"Eb", "F", "G", "Ab", "Bb", "C", "D"},
	E:  {"E", "F#", "G#", "A", "B", "C#", "D#"},
	F:  {"F", "G", "A", "Bb", "C", "D", "E"},
	Fs: {"F#", "G#", "A#", "B", "C#", "D#", "E#"},
	Gb: {"Gb", "Ab", "Bb", "Cb", "Db", "Eb", "F"},
	G:  {"G", "A", "B", "C", "D", "E", "F#"},
	Gs: {"G#", "A#", "B#", "C#", "D#", "E#", "F##"},
	Ab: {"Ab", "Bb", "C", "Db", "Eb", "F", "G"},
	A:  {"A", "B", "C#", "D", "E", "F#", "G#"},
	As: {"A#", "B#", "C##", "D#", "E#", "F##", "G##"},
	Bb: {"Bb", "C", "D", "Eb", "F", "G", "A"},
	B:  {"B", "C#", "D#", "E", "F#", "G#", "A#"},
}

// accidentalTable gives the spelling of a letter's scale-degree after the
// letter's own key-signature accidental ("", "#", "b", "##", or "bb") is
// combined with the requested additional accidental: sharping a flatted
// letter cancels the flat rather than stacking a natural sign plus a
// sharp, and similarly for flatting a sharped letter.
var accidentalTable = map[string]map[string]string{
	"#": {
		"":   "#",
		"b":  "",
		"bb": "b",
		"#":  "##",
		"##": "###", // theoretical; not expected to occur in practice
	},
	"b": {
		"":   "b",
		"#":  "",
		"##": "#",
		"b":  "bb",
		"bb": "bbb", // theoretical; not expected to occur in practice
	},
	"": {
		"":   "",
		"#":  "#",
		"b":  "b",
		"##": "##",
		"bb": "bb",
	},
}

// splitPitch separates a spelled pitch into its letter and accidental
// suffix, checking the two-character suffixes before the one-character
// ones so "F##" doesn't get mis-split as "F#" plus a dangling "#".
func splitPitch(pitch string) (letter, accidental string) {
	for _, suffix := range []string{"##", "bb", "#", "b"} {
		if len(pitch) > len(suffix) && pitch[len(pitch)-len(suffix):] == suffix {
			return pitch[:len(pitch)-len(suffix)], suffix
		}
	}
	return pitch, ""
}

// Normalize spells scale degree (1-indexed) of tonic's major scale, with
// accidental ("", "#", or "b") applied on top of whatever accidental the
// scale degree's own letter already carries in that key.
//
// Examples:
// Normalize(2, "#", E) == "F##", Normalize(2, "b", E) == "F",
// Normalize(1, "b", Cs) == "C".
func Normalize(degree int, accidental string, tonic Tonic) string {
	scale, ok := naturalScale[tonic]
	if !ok || degree < 1 || degree > 7 {
		return ""
	}
	letter, existing := splitPitch(scale[degree-1])
	if accidental == "" {
		return letter + existing
	}
	combined, ok := accidentalTable[accidental][existing]
	if !ok {
		combined = existing + accidental
	}
	return letter + combined
}

// accidentalSuffix maps a pitch code's accidental state to the suffix
// Normalize expects. Half-flat has no letter-name spelling of its own
// (it's a quarter-tone, not a member of the sharp/flat lattice), so it's
// spelled as a plain flat here.
func accidentalSuffix(a pitchcode.AccidentalType) string {
	switch a {
	case pitchcode.AccidentalSharp:
		return "#"
	case pitchcode.AccidentalFlat, pitchcode.AccidentalHalfFlat:
		return "b"
	case pitchcode.AccidentalDoubleSharp:
		return "##"
	case pitchcode.AccidentalDoubleFlat:
		return "bb"
	default:
		return ""
	}
}

// Spell names p the way it would be written in the key of tonic: its
// letter name plus whatever accidental the tonic's own major scale and
// p's own accidental combine to produce.
func Spell(p pitchcode.PitchCode, tonic Tonic) string {
	return Normalize(p.Degree(), accidentalSuffix(p.AccidentalType()), tonic)
}
