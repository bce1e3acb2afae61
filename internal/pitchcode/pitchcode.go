// Package pitchcode defines the closed enumeration of musical pitches used
// throughout the engine: seven scale degrees crossed with six accidental
// states. Every pitch-system parser and every emitter exchanges values of
// this type rather than notation-specific strings.
package pitchcode

import "fmt"

// PitchCode is a closed sum type: degree (1-7) x accidental (6 states).
// The zero value is not a valid pitch; use the N1..N7hf constants.
type PitchCode int

const (
	N1 PitchCode = iota
	N2
	N3
	N4
	N5
	N6
	N7

	N1s
	N2s
	N3s
	N4s
	N5s
	N6s
	N7s

	N1b
	N2b
	N3b
	N4b
	N5b
	N6b
	N7b

	N1ss
	N2ss
	N3ss
	N4ss
	N5ss
	N6ss
	N7ss

	N1bb
	N2bb
	N3bb
	N4bb
	N5bb
	N6bb
	N7bb

	N1hf
	N2hf
	N3hf
	N4hf
	N5hf
	N6hf
	N7hf

	numPitchCodes
)

// AccidentalType classifies the alteration applied to a pitch's natural degree.
type AccidentalType int

const (
	AccidentalNone AccidentalType = iota
	AccidentalSharp
	AccidentalFlat
	AccidentalDoubleSharp
	AccidentalDoubleFlat
	AccidentalHalfFlat
)

func (a AccidentalType) String() string {
	switch a {
	case AccidentalNone:
		return "natural"
	case AccidentalSharp:
		return "sharp"
	case AccidentalFlat:
		return "flat"
	case AccidentalDoubleSharp:
		return "double-sharp"
	case AccidentalDoubleFlat:
		return "double-flat"
	case AccidentalHalfFlat:
		return "half-flat"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the 42 defined pitch codes.
func (p PitchCode) Valid() bool {
	return p >= N1 && p < numPitchCodes
}

// Degree returns the scale degree (1-7) of p, independent of accidental.
func (p PitchCode) Degree() int {
	return int(p)%7 + 1
}

// AccidentalType returns the accidental state applied to p's degree.
func (p PitchCode) AccidentalType() AccidentalType {
	return AccidentalType(int(p) / 7)
}

// ToNatural returns the natural (unaltered) pitch code of the same degree.
func (p PitchCode) ToNatural() PitchCode {
	return PitchCode(p.Degree() - 1)
}

// ByDegreeAndAccidental reconstructs a PitchCode from its parts. Returns
// false if degree is out of [1,7].
func ByDegreeAndAccidental(degree int, acc AccidentalType) (PitchCode, bool) {
	if degree < 1 || degree > 7 {
		return 0, false
	}
	return PitchCode(int(acc)*7 + degree - 1), true
}

// AddSharp raises p by one sharp step: natural->sharp, sharp->double-sharp,
// flat->natural, double-flat->flat. Returns false (partial function) when
// the result would require mixing accidental families (double-sharp or
// half-flat have no further sharp step defined).
func (p PitchCode) AddSharp() (PitchCode, bool) {
	switch p.AccidentalType() {
	case AccidentalNone:
		return ByDegreeAndAccidental(p.Degree(), AccidentalSharp)
	case AccidentalSharp:
		return ByDegreeAndAccidental(p.Degree(), AccidentalDoubleSharp)
	case AccidentalFlat:
		return ByDegreeAndAccidental(p.Degree(), AccidentalNone)
	case AccidentalDoubleFlat:
		return ByDegreeAndAccidental(p.Degree(), AccidentalFlat)
	default:
		return 0, false
	}
}

// AddFlat is the mirror of AddSharp.
func (p PitchCode) AddFlat() (PitchCode, bool) {
	switch p.AccidentalType() {
	case AccidentalNone:
		return ByDegreeAndAccidental(p.Degree(), AccidentalFlat)
	case AccidentalFlat:
		return ByDegreeAndAccidental(p.Degree(), AccidentalDoubleFlat)
	case AccidentalSharp:
		return ByDegreeAndAccidental(p.Degree(), AccidentalNone)
	case AccidentalDoubleSharp:
		return ByDegreeAndAccidental(p.Degree(), AccidentalSharp)
	default:
		return 0, false
	}
}

// degreeSemitone maps a 1-indexed scale degree to its semitone offset from
// the tonic in a major scale.
var degreeSemitone = [7]int{0, 2, 4, 5, 7, 9, 11}

// accidentalOffset maps an accidental state to its semitone delta. Half-flat
// rounds to -1 because integer semitone arithmetic (MIDI, transposition)
// cannot express quarter tones.
var accidentalOffset = [6]int{0, 1, -1, 2, -2, -1}

// Semitone returns p's semitone offset from the tonic, in [0,11] after
// reduction, ignoring octave.
func (p PitchCode) Semitone() int {
	s := (degreeSemitone[p.Degree()-1] + accidentalOffset[p.AccidentalType()]) % 12
	if s < 0 {
		s += 12
	}
	return s
}

// semitoneSpelling gives the preferred (degree, accidental) spelling for
// each of the 12 semitone classes, favoring sharps over flats and naturals
// over both, which keeps transposed output readable without key-aware
// respelling (callers needing key-aware spelling should use package
// transposition instead).
var semitoneSpelling = [12]struct {
	degree int
	acc    AccidentalType
}{
	{1, AccidentalNone}, // 0  C
	{1, AccidentalSharp},
	{2, AccidentalNone}, // 2  D
	{2, AccidentalSharp},
	{3, AccidentalNone}, // 4  E
	{4, AccidentalNone}, // 5  F
	{4, AccidentalSharp},
	{5, AccidentalNone}, // 7  G
	{5, AccidentalSharp},
	{6, AccidentalNone}, // 9  A
	{6, AccidentalSharp},
	{7, AccidentalNone}, // 11 B
}

// TransposeBySemitones shifts p by k semitones (may be negative) and
// re-spells the result using the sharps-preferred table above.
func (p PitchCode) TransposeBySemitones(k int) PitchCode {
	s := (p.Semitone() + k) % 12
	if s < 0 {
		s += 12
	}
	sp := semitoneSpelling[s]
	code, _ := ByDegreeAndAccidental(sp.degree, sp.acc)
	return code
}

var accidentalSuffix = map[AccidentalType]string{
	AccidentalNone:        "",
	AccidentalSharp:       "#",
	AccidentalFlat:        "b",
	AccidentalDoubleSharp: "##",
	AccidentalDoubleFlat:  "bb",
	AccidentalHalfFlat:    "b/",
}

// String renders p in plain number-system notation (degree digit plus
// accidental suffix). System-specific rendering lives in package pitch,
// which can import pitchcode without creating a cycle.
func (p PitchCode) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PitchCode(%d)", int(p))
	}
	return fmt.Sprintf("%d%s", p.Degree(), accidentalSuffix[p.AccidentalType()])
}
