package midiemit

import (
	"github.com/leafo/notengine/internal/ir"
	"github.com/leafo/notengine/internal/pitchcode"
)

// degreeBase maps a 1-indexed scale degree to its semitone offset from C,
// matching pitchcode's own major-scale table; kept as a separate local
// copy (rather than calling pitchcode.PitchCode.Semitone) because that
// method reduces its result mod 12, which loses the octave-carrying
// information a sharped seventh degree needs here (B# must land a full
// semitone above B, not fold back onto C within the same octave).
var degreeBase = [7]int{0, 2, 4, 5, 7, 9, 11}

var accidentalSemitone = map[pitchcode.AccidentalType]int{
	pitchcode.AccidentalNone:        0,
	pitchcode.AccidentalSharp:       1,
	pitchcode.AccidentalFlat:        -1,
	pitchcode.AccidentalDoubleSharp: 2,
	pitchcode.AccidentalDoubleFlat:  -2,
	pitchcode.AccidentalHalfFlat:    -1, // SMF has no microtones
}

// PitchToMIDI converts a sounding pitch to a MIDI key number, clamped to
// the valid [0,127] range.
func PitchToMIDI(p ir.PitchInfo) uint8 {
	midi := 60 + degreeBase[p.Pitch.Degree()-1] + accidentalSemitone[p.Pitch.AccidentalType()] + 12*int(p.Octave)
	if midi < 0 {
		midi = 0
	}
	if midi > 127 {
		midi = 127
	}
	return uint8(midi)
}

// ChannelFor assigns part index k (0-based, in part_id sort order) to a
// MIDI channel: k mod 16, shifting 9 and above up by one so melodic parts
// never land on channel 9 (reserved for drums). A drum part always uses
// channel 9 directly regardless of its index.
func ChannelFor(k int, isDrum bool) uint8 {
	if isDrum {
		return 9
	}
	ch := k % 16
	if ch >= 9 {
		ch++
	}
	if ch > 15 {
		ch = 15
	}
	return uint8(ch)
}

// ticksForFraction converts an IR duration fraction to tick count at the
// given ticks-per-quarter resolution: dur_ticks = fraction.num*tpq/fraction.den.
func ticksForFraction(f ir.Fraction, tpq uint16) uint32 {
	return uint32(f.Numerator) * uint32(tpq) / uint32(f.Denominator)
}
