package pitch

import "github.com/leafo/notengine/internal/pitchcode"

// sargamSystem recognizes the syllables Sa Re Ga Ma Pa Dha Ni, case-sensitive:
// uppercase is shuddha (natural) and lowercase is komal (flat) for degrees
// 2,3,6,7. Ma is special: lowercase "m" is shuddha Ma (N4) and uppercase
// "M" is tivra Ma (N4s); "M#" further raises tivra Ma to a double sharp
// rather than stacking as a plain sharp, matching the source notation's
// own irregular Ma handling. Both S/s map to N1 and both P/p map to N5
// since Sa and Pa have no komal/tivra variant in practice.
type sargamSystem struct{}

var sargamTokens = []token{
	// Double sharps (3 chars)
	{"S##", pitchcode.N1ss}, {"s##", pitchcode.N1ss},
	{"R##", pitchcode.N2ss}, {"G##", pitchcode.N3ss},
	{"M##", pitchcode.N4ss},
	{"P##", pitchcode.N5ss}, {"p##", pitchcode.N5ss},
	{"D##", pitchcode.N6ss}, {"N##", pitchcode.N7ss},

	// Double flats (3 chars)
	{"Sbb", pitchcode.N1bb}, {"sbb", pitchcode.N1bb},
	{"Rbb", pitchcode.N2bb}, {"rbb", pitchcode.N2bb},
	{"Gbb", pitchcode.N3bb}, {"gbb", pitchcode.N3bb},
	{"mbb", pitchcode.N4bb}, {"Mbb", pitchcode.N4bb},
	{"Pbb", pitchcode.N5bb}, {"pbb", pitchcode.N5bb},
	{"Dbb", pitchcode.N6bb}, {"dbb", pitchcode.N6bb},
	{"Nbb", pitchcode.N7bb}, {"nbb", pitchcode.N7bb},

	// Explicit "b" combinations (2 chars)
	{"mb", pitchcode.N4b}, // komal Ma
	{"Sb", pitchcode.N1b}, {"sb", pitchcode.N1b},
	{"Pb", pitchcode.N5b}, {"pb", pitchcode.N5b},

	// Sharps (2 chars)
	{"S#", pitchcode.N1s}, {"s#", pitchcode.N1s},
	{"R#", pitchcode.N2s}, {"G#", pitchcode.N3s},
	{"M#", pitchcode.N4ss}, // tivra Ma sharp: notated as a double sharp
	{"P#", pitchcode.N5s}, {"p#", pitchcode.N5s},
	{"D#", pitchcode.N6s}, {"N#", pitchcode.N7s},

	// Naturals and case variants (1 char)
	{"S", pitchcode.N1}, {"s", pitchcode.N1},
	{"R", pitchcode.N2}, // shuddha Re
	{"r", pitchcode.N2b}, // komal Re
	{"G", pitchcode.N3}, // shuddha Ga
	{"g", pitchcode.N3b}, // komal Ga
	{"m", pitchcode.N4}, // shuddha Ma
	{"M", pitchcode.N4s}, // tivra Ma
	{"P", pitchcode.N5}, {"p", pitchcode.N5},
	{"D", pitchcode.N6}, // shuddha Dha
	{"d", pitchcode.N6b}, // komal Dha
	{"N", pitchcode.N7}, // shuddha Ni
	{"n", pitchcode.N7b}, // komal Ni
}

func (sargamSystem) ParsePitch(input string) (pitchcode.PitchCode, int, bool) {
	return longestMatch(sargamTokens, input)
}
