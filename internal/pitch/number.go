package pitch

import (
	"sort"

	"github.com/leafo/notengine/internal/pitchcode"
)

// numberSystem recognizes the digits 1-7 as scale degrees with an optional
// accidental suffix: "#", "b", "##", "bb", "b/" (half-flat).
type numberSystem struct{}

var numberTokens = buildDegreeTokens([7]string{"1", "2", "3", "4", "5", "6", "7"})

func (numberSystem) ParsePitch(input string) (pitchcode.PitchCode, int, bool) {
	return longestMatch(numberTokens, input)
}

// accidentalSuffixes lists every accidental suffix this engine recognizes,
// in no particular order; buildDegreeTokens sorts the resulting token list
// by descending length so the longest suffix always wins ties.
var accidentalSuffixes = []struct {
	suffix string
	acc    pitchcode.AccidentalType
}{
	{"##", pitchcode.AccidentalDoubleSharp},
	{"bb", pitchcode.AccidentalDoubleFlat},
	{"b/", pitchcode.AccidentalHalfFlat},
	{"#", pitchcode.AccidentalSharp},
	{"b", pitchcode.AccidentalFlat},
	{"", pitchcode.AccidentalNone},
}

// buildDegreeTokens expands a 7-letter base alphabet (one glyph per scale
// degree) into the full longest-match token table: every degree glyph
// crossed with every accidental suffix, sorted longest-text-first.
func buildDegreeTokens(letters [7]string) []token {
	var tokens []token
	for degree, letter := range letters {
		for _, suf := range accidentalSuffixes {
			code, ok := pitchcode.ByDegreeAndAccidental(degree+1, suf.acc)
			if !ok {
				continue
			}
			tokens = append(tokens, token{text: letter + suf.suffix, code: code})
		}
	}
	sort.SliceStable(tokens, func(i, j int) bool {
		return len(tokens[i].text) > len(tokens[j].text)
	})
	return tokens
}
