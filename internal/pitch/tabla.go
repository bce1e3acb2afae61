package pitch

import "github.com/leafo/notengine/internal/pitchcode"

// tablaSystem recognizes multi-character tabla bols rather than single
// glyphs; longest-match is essential here because several bols share a
// prefix with a shorter one ("dhin" must beat "dha", "tita" must beat
// "ti"). Degree assignment is arbitrary (bols denote strokes, not scale
// degrees) and follows the pitch_sequence ordering dha,na,tita,tin,ta,ke,te
// with "dhin" sharing "dha"'s slot: the two are alternate spellings of the
// same open bass stroke in many notations.
type tablaSystem struct{}

var tablaTokens = []token{
	{"dhin", pitchcode.N1},
	{"tita", pitchcode.N3},
	{"dha", pitchcode.N1},
	{"tin", pitchcode.N5},
	{"na", pitchcode.N1},
	{"ta", pitchcode.N2},
	{"ti", pitchcode.N3},
	{"ke", pitchcode.N6},
	{"te", pitchcode.N7},
}

func (tablaSystem) ParsePitch(input string) (pitchcode.PitchCode, int, bool) {
	return longestMatch(tablaTokens, input)
}
