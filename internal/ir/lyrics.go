package ir

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SplitSyllables splits a lyric line into syllables, honoring hyphens as
// within-word syllable boundaries: "Hel-lo world" splits to
// ["Hel-", "lo", "world"], where a trailing hyphen marks a syllable that
// continues into the next one of the same word. This is the inverse of
// the word-joining a host does when it displays already-placed lyrics.
//
// lyrics is normalized to NFC first so that combining-mark sequences typed
// as separate codepoints (common when pasting lyrics from other editors)
// compare equal to their precomposed form once placed on note events.
func SplitSyllables(lyrics string) []string {
	lyrics = norm.NFC.String(lyrics)

	var out []string
	for _, word := range strings.Fields(lyrics) {
		parts := strings.Split(word, "-")
		for i, part := range parts {
			if part == "" {
				continue
			}
			if i < len(parts)-1 {
				out = append(out, part+"-")
			} else {
				out = append(out, part)
			}
		}
	}
	return out
}

// DistributeLyrics assigns syllables from lyrics, in order, onto the
// pitched note events flagged eligible. If more syllables remain than
// eligible events once every event has one, the remainder is hyphen-joined
// and appended onto the final eligible event's lyric.
func DistributeLyrics(events []ExportEvent, eligible []bool, lyrics string) {
	syllables := SplitSyllables(lyrics)
	if len(syllables) == 0 {
		return
	}

	var eligibleIdx []int
	for i, ok := range eligible {
		if ok {
			eligibleIdx = append(eligibleIdx, i)
		}
	}
	if len(eligibleIdx) == 0 {
		return
	}

	si := 0
	for _, ei := range eligibleIdx {
		if si >= len(syllables) {
			break
		}
		events[ei].Note.Lyric = syllables[si]
		si++
	}

	if si < len(syllables) {
		last := eligibleIdx[len(eligibleIdx)-1]
		var rest []string
		for _, s := range syllables[si:] {
			rest = append(rest, strings.TrimSuffix(s, "-"))
		}
		events[last].Note.Lyric = events[last].Note.Lyric + "-" + strings.Join(rest, "-")
	}
}
