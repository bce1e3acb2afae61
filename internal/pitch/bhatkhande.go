package pitch

import "github.com/leafo/notengine/internal/pitchcode"

// bhatkhandeSystem uses the identical token set to Sargam (Bhatkhande
// notation is a Devanagari rendering of the same svara convention; the
// plain-ASCII input glyphs this engine accepts are indistinguishable from
// Sargam's). Kept as a distinct System tag rather than an alias so the
// document/line model can still label a line's notational convention for
// display purposes.
type bhatkhandeSystem struct{}

func (bhatkhandeSystem) ParsePitch(input string) (pitchcode.PitchCode, int, bool) {
	return longestMatch(sargamTokens, input)
}
