// Package transposition spells a pitch code in the context of a key
// center: the same scale degree renders as a different letter name (and
// a different accidental on top of that letter) depending on the
// tonic's own major scale.
package transposition

import "strings"

// Tonic is one of the 17 commonly used key centers in Western music: 7
// natural, 5 sharp, 5 flat. Enharmonic equivalents (C# and Db) are kept
// distinct because they spell their scales differently.
type Tonic int

const (
	C Tonic = iota
	Cs
	Db
	D
	Ds
	Eb
	E
	F
	Fs
	Gb
	G
	Gs
	Ab
	A
	As
	Bb
	B

	numTonics
)

func (t Tonic) String() string {
	switch t {
	case C:
		return "C"
	case Cs:
		return "C#"
	case Db:
		return "Db"
	case D:
		return "D"
	case Ds:
		return "D#"
	case Eb:
		return "Eb"
	case E:
		return "E"
	case F:
		return "F"
	case Fs:
		return "F#"
	case Gb:
		return "Gb"
	case G:
		return "G"
	case Gs:
		return "G#"
	case Ab:
		return "Ab"
	case A:
		return "A"
	case As:
		return "A#"
	case Bb:
		return "Bb"
	case B:
		return "B"
	default:
		return "?"
	}
}

// Valid reports whether t is one of the 17 defined tonics.
func (t Tonic) Valid() bool {
	return t >= C && t < numTonics
}

// ParseTonic parses a tonic name case-insensitively, accepting "n" (or
// no suffix) for natural, "#"/"s" for sharp, "b" for flat, and the
// Unicode sharp/flat glyphs.
func ParseTonic(s string) (Tonic, bool) {
	switch strings.ToUpper(s) {
	case "C", "CN":
		return C, true
	case "C#", "CS", "C♯":
		return Cs, true
	case "DB", "D♭":
		return Db, true
	case "D", "DN":
		return D, true
	case "D#", "DS", "D♯":
		return Ds, true
	case "EB", "E♭":
		return Eb, true
	case "E", "EN":
		return E, true
	case "F", "FN":
		return F, true
	case "F#", "FS", "F♯":
		return Fs, true
	case "GB", "G♭":
		return Gb, true
	case "G", "GN":
		return G, true
	case "G#", "GS", "G♯":
		return Gs, true
	case "AB", "A♭":
		return Ab, true
	case "A", "AN":
		return A, true
	case "A#", "AS", "A♯":
		return As, true
	case "BB", "B♭":
		return Bb, true
	case "B", "BN":
		return B, true
	default:
		return 0, false
	}
}
