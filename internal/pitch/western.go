package pitch

import (
	"sort"

	"github.com/leafo/notengine/internal/pitchcode"
)

// westernSystem recognizes the letters c..g,a,b (lowercase conventional for
// melody, uppercase also accepted) with the same accidental suffixes as
// Number. A bare "b" with nothing consumed before it in the same call
// always resolves to the pitch B (degree 7 natural): the ambiguity the
// spec calls out only exists across separate calls (a preceding letter
// consumed by an earlier call, e.g. "c" then "b" typed after it), which
// this single-call longest-match contract does not need to special-case.
type westernSystem struct{}

var westernTokens = buildWesternTokens()

func (westernSystem) ParsePitch(input string) (pitchcode.PitchCode, int, bool) {
	return longestMatch(westernTokens, input)
}

func buildWesternTokens() []token {
	lower := buildDegreeTokens([7]string{"c", "d", "e", "f", "g", "a", "b"})
	upper := buildDegreeTokens([7]string{"C", "D", "E", "F", "G", "A", "B"})
	tokens := append(lower, upper...)
	sort.SliceStable(tokens, func(i, j int) bool {
		return len(tokens[i].text) > len(tokens[j].text)
	})
	return tokens
}
