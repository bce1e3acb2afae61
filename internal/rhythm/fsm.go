// Package rhythm implements the beat normalizer: extracting beats from a
// measure's cells, assigning per-element slot counts via a small state
// machine, GCD-reducing them, and detecting tuplets.
package rhythm

import "github.com/leafo/notengine/internal/cell"

// Element is one note or rest inside a beat: a run of cells consisting of
// a single note/rest head followed by zero or more absorbed dashes.
type Element struct {
	// CellIndices holds the index (within the beat's cell slice) of the
	// head cell, followed by the indices of any absorbed dash cells, in
	// order.
	CellIndices []int
	IsRest      bool
	Count       int // raw slot count s_i (1 + absorbed dashes)

	// BreathMarkAfter is set when a breath mark cell immediately follows
	// this element.
	BreathMarkAfter bool
}

// Beat is one whitespace/barline/breath-mark-delimited run of pitched and
// unpitched cells.
type Beat struct {
	// Start and End are inclusive cell-index bounds within the line (or
	// measure) slice this beat was extracted from.
	Start, End int

	Elements []Element
	N        int // raw subdivision count
}

// ExtractBeats splits cells (already confined to one barline-delimited
// measure) into beats at Whitespace and BreathMark boundaries, then runs
// the slot-assignment FSM over each.
//
// A run of dashes with no preceding note in scope (either beat-initial,
// or immediately after a breath mark) must merge into a single rest
// element whose slot count is the run's length, exactly as a note
// absorbs trailing dashes into itself. This implementation generalizes
// both cases into one "currently open element" pointer that notes and
// rests alike can hold and extend, so breath-mark-adjacent rest runs and
// ordinary held notes share the same absorption logic.
func ExtractBeats(cells []cell.Cell) []Beat {
	var beats []Beat
	start := -1

	flush := func(end int) {
		if start == -1 {
			return
		}
		beats = append(beats, buildBeat(cells, start, end))
		start = -1
	}

	for i, c := range cells {
		switch c.Kind {
		case cell.Whitespace, cell.Barline:
			flush(i - 1)
		case cell.BreathMark:
			// A breath mark is part of the current beat (it does not by
			// itself split into a new beat) but is excluded from N like a
			// continuation cell.
			if start == -1 {
				start = i
			}
		default:
			if start == -1 {
				start = i
			}
		}
	}
	flush(len(cells) - 1)

	return beats
}

// buildBeat runs the slot-assignment pass over cells[start:end+1].
func buildBeat(cells []cell.Cell, start, end int) Beat {
	b := Beat{Start: start, End: end}

	var current *Element

	closeCurrent := func() {
		if current != nil {
			b.Elements = append(b.Elements, *current)
			current = nil
		}
	}

	for i := start; i <= end; i++ {
		c := cells[i]

		if c.Continuation {
			continue
		}

		switch c.Kind {
		case cell.BreathMark:
			if current != nil {
				current.BreathMarkAfter = true
				closeCurrent()
			} else if len(b.Elements) > 0 {
				b.Elements[len(b.Elements)-1].BreathMarkAfter = true
			}
			continue

		case cell.PitchedElement:
			closeCurrent()
			current = &Element{CellIndices: []int{i}, Count: 1}
			b.N++

		case cell.UnpitchedElement:
			if c.Text == "-" {
				if current != nil {
					current.CellIndices = append(current.CellIndices, i)
					current.Count++
				} else {
					current = &Element{CellIndices: []int{i}, Count: 1, IsRest: true}
				}
			} else {
				closeCurrent()
				current = &Element{CellIndices: []int{i}, Count: 1, IsRest: true}
			}
			b.N++

		default:
			// Text/Unknown cells inside a beat span are not expected
			// (beat extraction only runs over pitched/unpitched runs),
			// but are tolerated as a transparent no-op for robustness.
		}
	}
	closeCurrent()

	return b
}

