package cell

import (
	"testing"

	"github.com/leafo/notengine/internal/pitch"
	"github.com/leafo/notengine/internal/pitchcode"
)

func buildLine(t *testing.T, system pitch.System, chars string) []Cell {
	t.Helper()
	var cells []Cell
	for i, r := range chars {
		cells = InsertChar(cells, i, r, system)
	}
	return cells
}

func TestSingleCharClassification(t *testing.T) {
	tests := []struct {
		r    rune
		kind Kind
	}{
		{'1', PitchedElement},
		{'|', Barline},
		{'\'', BreathMark},
		{' ', Whitespace},
		{'-', UnpitchedElement},
		{'x', Text}, // not a Number-system token
	}
	for _, tc := range tests {
		c := NewFromRune(tc.r, pitch.Number, 0)
		if c.Kind != tc.kind {
			t.Errorf("NewFromRune(%q) kind = %v, want %v", tc.r, c.Kind, tc.kind)
		}
	}
}

func TestContinuationMergesAccidental(t *testing.T) {
	cells := buildLine(t, pitch.Number, "1#")
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(cells))
	}
	if cells[0].Continuation {
		t.Errorf("root cell should not be marked continuation")
	}
	if !cells[1].Continuation {
		t.Errorf("second cell should be marked continuation")
	}
	if cells[0].Text != "1#" {
		t.Errorf("root text = %q, want %q", cells[0].Text, "1#")
	}
	if cells[0].Pitch != pitchcode.N1s {
		t.Errorf("root pitch = %v, want N1s", cells[0].Pitch)
	}
	// The rhythm layer must see exactly one subdivision for this glyph.
	rhythmic := 0
	for _, c := range cells {
		if c.IsRhythmic() {
			rhythmic++
		}
	}
	if rhythmic != 1 {
		t.Errorf("rhythmic cell count = %d, want 1", rhythmic)
	}
}

func TestContinuationTablaBol(t *testing.T) {
	cells := buildLine(t, pitch.Tabla, "dhin")
	if len(cells) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(cells))
	}
	if cells[0].Kind != PitchedElement || cells[0].Text != "dhin" {
		t.Errorf("root = %+v, want merged dhin", cells[0])
	}
	if cells[0].Pitch != pitchcode.N1 {
		t.Errorf("root pitch = %v, want N1", cells[0].Pitch)
	}
	for i := 1; i < 4; i++ {
		if !cells[i].Continuation {
			t.Errorf("cell %d should be a continuation", i)
		}
	}
}

func TestDeleteContinuationPreservesRootText(t *testing.T) {
	cells := buildLine(t, pitch.Number, "1#")
	cells = DeleteChar(cells, 1)
	if len(cells) != 1 {
		t.Fatalf("expected 1 cell after delete, got %d", len(cells))
	}
	if cells[0].Text != "1#" {
		t.Errorf("root text after delete = %q, want preserved %q", cells[0].Text, "1#")
	}
}

func TestDoubleSharpContinuation(t *testing.T) {
	cells := buildLine(t, pitch.Number, "1##")
	if len(cells) != 3 {
		t.Fatalf("expected 3 cells, got %d", len(cells))
	}
	if cells[0].Pitch != pitchcode.N1ss {
		t.Errorf("root pitch = %v, want N1ss", cells[0].Pitch)
	}
	if cells[0].Text != "1##" {
		t.Errorf("root text = %q, want %q", cells[0].Text, "1##")
	}
}
