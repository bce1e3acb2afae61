package cell

import "github.com/leafo/notengine/internal/pitch"

// MarkContinuations walks the line left-to-right and, for every cell that
// is not already a continuation, greedily tries to extend the glyph by
// absorbing following cells one codepoint at a time, reparsing the
// concatenation against system. The longest concatenation that parses in
// full wins, even when a shorter prefix of it is not a token itself (the
// tabla bol "dhin" passes through "dh" and "dhi"); scanning stops at the
// next whitespace, barline or breath mark. Every absorbed cell is flagged
// Continuation = true; the root cell's Text, HasPitch, Pitch and Kind are
// updated to reflect the final merged glyph.
//
// This recomputes continuation groupings fully from each cell's individual
// Codepoint every time it runs. Insertion is the only trigger for this
// pass — deletion does not call it, so a root's merged Text is left
// untouched by a delete that removes one of its continuation cells ("what
// you typed is what you get" text fidelity), and is only recomputed the
// next time any character is inserted on the line.
func MarkContinuations(cells []Cell, system pitch.System) {
	for i := range cells {
		cells[i].Continuation = false
	}

	i := 0
	for i < len(cells) {
		if cells[i].Kind != PitchedElement && cells[i].Kind != Text {
			i++
			continue
		}

		combined := string(cells[i].Codepoint)
		lastCode := cells[i].Pitch
		foundPitch := cells[i].Kind == PitchedElement
		lastAbsorbed := i

		candidate := combined
		j := i + 1
		for j < len(cells) {
			if cells[j].Kind == Whitespace || cells[j].Kind == Barline || cells[j].Kind == BreathMark {
				break
			}
			candidate += string(cells[j].Codepoint)
			if code, n, ok := pitch.Parse(system, candidate); ok && n == len(candidate) {
				combined = candidate
				lastCode = code
				foundPitch = true
				lastAbsorbed = j
			}
			j++
		}

		if foundPitch {
			cells[i].Text = combined
			cells[i].Kind = PitchedElement
			cells[i].HasPitch = true
			cells[i].Pitch = lastCode
			cells[i].System = system
			for k := i + 1; k <= lastAbsorbed; k++ {
				cells[k].Continuation = true
			}
		}

		i = lastAbsorbed + 1
	}
}

// InsertChar constructs a fresh cell for r, inserts it at column (shifting
// subsequent columns by one), and reruns MarkContinuations end-to-end.
func InsertChar(cells []Cell, column int, r rune, system pitch.System) []Cell {
	nc := NewFromRune(r, system, column)

	out := make([]Cell, 0, len(cells)+1)
	out = append(out, cells[:column]...)
	out = append(out, nc)
	out = append(out, cells[column:]...)
	for i := column + 1; i < len(out); i++ {
		out[i].Column = i
	}

	MarkContinuations(out, system)
	return out
}

// DeleteChar removes the cell at column. This does not rerun
// MarkContinuations: a deleted continuation's root keeps its
// previously-merged Text untouched.
func DeleteChar(cells []Cell, column int) []Cell {
	if column < 0 || column >= len(cells) {
		return cells
	}
	out := make([]Cell, 0, len(cells)-1)
	out = append(out, cells[:column]...)
	out = append(out, cells[column+1:]...)
	for i := column; i < len(out); i++ {
		out[i].Column = i
	}
	return out
}
