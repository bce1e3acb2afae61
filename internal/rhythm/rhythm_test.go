package rhythm

import (
	"testing"

	"github.com/leafo/notengine/internal/cell"
	"github.com/leafo/notengine/internal/pitch"
)

func parseCells(system pitch.System, text string) []cell.Cell {
	var cells []cell.Cell
	for i, r := range text {
		cells = cell.InsertChar(cells, i, r, system)
	}
	_ = text
	return cells
}

func TestScenario1DashTriplet(t *testing.T) {
	// "1-2-3-" -> one beat, slots [2,2,2] -> gcd 2 -> [1,1,1], N'=3, triplet.
	cells := parseCells(pitch.Number, "1-2-3-")
	beats := ExtractBeats(cells)
	if len(beats) != 1 {
		t.Fatalf("expected 1 beat, got %d", len(beats))
	}
	b := beats[0]
	if len(b.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(b.Elements))
	}
	counts := make([]int, 3)
	for i, e := range b.Elements {
		counts[i] = e.Count
		if e.IsRest {
			t.Errorf("element %d should be a note, not a rest", i)
		}
	}
	if counts[0] != 2 || counts[1] != 2 || counts[2] != 2 {
		t.Fatalf("counts = %v, want [2,2,2]", counts)
	}
	reduced, nPrime := ReduceSlots(counts)
	if nPrime != 3 {
		t.Errorf("N' = %d, want 3", nPrime)
	}
	for _, r := range reduced {
		if r != 1 {
			t.Errorf("reduced = %v, want [1,1,1]", reduced)
		}
	}
	ratio, ok := TupletFor(nPrime)
	if !ok || ratio != (TupletRatio{3, 2}) {
		t.Errorf("TupletFor(3) = %v, %v, want {3,2}, true", ratio, ok)
	}
}

func TestScenario2FourQuarterBeats(t *testing.T) {
	cells := parseCells(pitch.Number, "1 2 3 4")
	beats := ExtractBeats(cells)
	if len(beats) != 4 {
		t.Fatalf("expected 4 beats, got %d", len(beats))
	}
	for _, b := range beats {
		if len(b.Elements) != 1 || b.Elements[0].Count != 1 {
			t.Errorf("beat = %+v, want single element of count 1", b)
		}
		if _, ok := TupletFor(1); ok {
			t.Errorf("N'=1 should need no tuplet")
		}
	}
}

func TestScenario3BreathMarkThenSpace(t *testing.T) {
	// "1' ---" -> beat1 "1'" (1 subdivision, breath_mark_after=true),
	// beat2 "---" (3 subdivisions, one rest, reduces to fraction 1/1).
	cells := parseCells(pitch.Number, "1' ---")
	beats := ExtractBeats(cells)
	if len(beats) != 2 {
		t.Fatalf("expected 2 beats, got %d", len(beats))
	}
	b1 := beats[0]
	if b1.N != 1 || len(b1.Elements) != 1 {
		t.Fatalf("beat1 = %+v, want N=1 single element", b1)
	}
	if !b1.Elements[0].BreathMarkAfter {
		t.Errorf("beat1's note should carry BreathMarkAfter")
	}

	b2 := beats[1]
	if b2.N != 3 || len(b2.Elements) != 1 || !b2.Elements[0].IsRest {
		t.Fatalf("beat2 = %+v, want N=3 single rest", b2)
	}
	_, nPrime := ReduceSlots([]int{b2.Elements[0].Count})
	if nPrime != 1 {
		t.Errorf("beat2 N' = %d, want 1 (reduces 3 -> 1)", nPrime)
	}
}

func TestScenario4BreathMarkNoSpace(t *testing.T) {
	// "1'---" -> one beat, four subdivisions: note (1/4) then rest (3/4).
	cells := parseCells(pitch.Number, "1'---")
	beats := ExtractBeats(cells)
	if len(beats) != 1 {
		t.Fatalf("expected 1 beat, got %d", len(beats))
	}
	b := beats[0]
	if b.N != 4 {
		t.Fatalf("N = %d, want 4", b.N)
	}
	if len(b.Elements) != 2 {
		t.Fatalf("expected 2 elements (note, rest), got %d: %+v", len(b.Elements), b.Elements)
	}
	if b.Elements[0].IsRest || b.Elements[0].Count != 1 || !b.Elements[0].BreathMarkAfter {
		t.Errorf("first element = %+v, want note count=1 breath_mark_after=true", b.Elements[0])
	}
	if !b.Elements[1].IsRest || b.Elements[1].Count != 3 {
		t.Errorf("second element = %+v, want rest count=3", b.Elements[1])
	}
}

func TestExplicitBeatGroupOverridesImplicitScan(t *testing.T) {
	cells := parseCells(pitch.Number, "1 2 3")
	cells[0].BeatGroup = cell.BeatGroupBegin
	cells[4].BeatGroup = cell.BeatGroupEnd // the "3" cell, index 4: '1',' ','2',' ','3'

	groups := ExtractExplicitGroups(cells)
	if len(groups) != 1 || groups[0].Start != 0 || groups[0].End != 4 {
		t.Fatalf("groups = %+v, want one span [0,4]", groups)
	}

	implicit := ExtractImplicitBeats(cells, groups)
	if len(implicit) != 0 {
		t.Fatalf("expected no implicit beats once the whole line is one explicit group, got %+v", implicit)
	}
}
