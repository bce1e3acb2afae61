package rhythm

import (
	"sort"

	"github.com/leafo/notengine/internal/cell"
)

// ExplicitGroup is a user-marked override of beat boundaries: a span of
// cell indices the host has explicitly bracketed with BeatGroupBegin /
// BeatGroupEnd, forcing a beat boundary that whitespace/barline/breath-mark
// extraction alone would not produce.
type ExplicitGroup struct {
	Start, End int // inclusive cell-index bounds
}

// ExtractExplicitGroups scans cells for BeatGroupBegin/BeatGroupEnd pairs
// and returns each bracketed span. A Begin with no matching End is
// discarded; an unterminated group is never emitted.
func ExtractExplicitGroups(cells []cell.Cell) []ExplicitGroup {
	var groups []ExplicitGroup
	start := -1
	for i, c := range cells {
		switch c.BeatGroup {
		case cell.BeatGroupBegin:
			start = i
		case cell.BeatGroupEnd:
			if start != -1 {
				groups = append(groups, ExplicitGroup{Start: start, End: i})
				start = -1
			}
		}
	}
	return groups
}

// ExtractImplicitBeats is ExtractBeats restricted to the cells not covered
// by any of excludeSpans, so that implicit-beat scanning does not re-split
// an explicitly grouped run. Non-covered runs are concatenated by index
// range the same way ExtractBeats itself scans; indices inside an
// excluded span are skipped, which also closes out whatever implicit beat
// was in progress.
func ExtractImplicitBeats(cells []cell.Cell, excludeSpans []ExplicitGroup) []Beat {
	excluded := make([]bool, len(cells))
	for _, g := range excludeSpans {
		for i := g.Start; i <= g.End && i < len(cells); i++ {
			excluded[i] = true
		}
	}

	var filtered []cell.Cell
	var indexMap []int
	for i, c := range cells {
		if excluded[i] {
			continue
		}
		filtered = append(filtered, c)
		indexMap = append(indexMap, i)
	}

	beats := ExtractBeats(filtered)
	for bi := range beats {
		beats[bi].Start = indexMap[beats[bi].Start]
		beats[bi].End = indexMap[beats[bi].End]
		for ei := range beats[bi].Elements {
			for ci := range beats[bi].Elements[ei].CellIndices {
				beats[bi].Elements[ei].CellIndices[ci] = indexMap[beats[bi].Elements[ei].CellIndices[ci]]
			}
		}
	}
	return beats
}

// ExtractAllBeats combines explicit beat groups with the implicit scan of
// everything else, returning every beat in left-to-right cell order. Each
// explicit group becomes exactly one beat spanning its whole bracketed
// range, overriding whatever whitespace/barline/breath-mark split would
// otherwise have applied inside it.
func ExtractAllBeats(cells []cell.Cell) []Beat {
	groups := ExtractExplicitGroups(cells)

	beats := make([]Beat, 0, len(groups)+1)
	for _, g := range groups {
		beats = append(beats, buildBeat(cells, g.Start, g.End))
	}
	beats = append(beats, ExtractImplicitBeats(cells, groups)...)

	sort.Slice(beats, func(i, j int) bool { return beats[i].Start < beats[j].Start })
	return beats
}
