package musicxml

import (
	"strings"
	"testing"

	"github.com/leafo/notengine/internal/ir"
	"github.com/leafo/notengine/internal/pitchcode"
)

func notePart(id string, octave int8) ir.MeasurizedPart {
	return ir.MeasurizedPart{
		PartID: id,
		Bars: []ir.ExportMeasure{{
			Divisions: 1,
			Events: []ir.ExportEvent{
				{Kind: ir.EventNote, Note: &ir.NoteData{
					Pitch:     ir.PitchInfo{Pitch: pitchcode.N1, Octave: octave},
					Divisions: 1,
					Fraction:  ir.NewFraction(1, 1),
				}},
			},
		}},
		GlobalDivisions: 1,
	}
}

func TestEmitBasicNote(t *testing.T) {
	out, err := Emit([]ir.MeasurizedPart{notePart("P1", 0)}, map[string]PartMeta{
		"P1": {TimeSignature: "4/4", Clef: "treble"},
	})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, `<part id="P1">`) {
		t.Errorf("missing part element:\n%s", out)
	}
	if !strings.Contains(out, "<step>C</step>") {
		t.Errorf("missing pitch step:\n%s", out)
	}
	if !strings.Contains(out, "<octave>4</octave>") {
		t.Errorf("expected octave 4 (middle) for Octave=0:\n%s", out)
	}
	if !strings.Contains(out, "<duration>1</duration>") {
		t.Errorf("missing duration:\n%s", out)
	}
}

func TestEmitOctaveOffsetsFromMiddle(t *testing.T) {
	out, err := Emit([]ir.MeasurizedPart{notePart("P1", 2)}, map[string]PartMeta{"P1": {}})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, "<octave>6</octave>") {
		t.Errorf("expected octave 6 for Octave=+2:\n%s", out)
	}
}

func TestEmitRest(t *testing.T) {
	part := ir.MeasurizedPart{
		PartID: "P1",
		Bars: []ir.ExportMeasure{{
			Divisions: 1,
			Events:    []ir.ExportEvent{{Kind: ir.EventRest, Rest: &ir.RestData{Divisions: 1, Fraction: ir.NewFraction(1, 1)}}},
		}},
	}
	out, err := Emit([]ir.MeasurizedPart{part}, map[string]PartMeta{"P1": {}})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, "<rest/>") {
		t.Errorf("expected a self-closed <rest/>, got:\n%s", out)
	}
}

func TestEmitTieProducesTieAndTiedElements(t *testing.T) {
	part := ir.MeasurizedPart{
		PartID: "P1",
		Bars: []ir.ExportMeasure{{
			Divisions: 1,
			Events: []ir.ExportEvent{
				{Kind: ir.EventNote, Note: &ir.NoteData{
					Pitch: ir.PitchInfo{Pitch: pitchcode.N1}, Divisions: 1,
					Fraction: ir.NewFraction(1, 1), Tie: ir.TieStart,
				}},
				{Kind: ir.EventNote, Note: &ir.NoteData{
					Pitch: ir.PitchInfo{Pitch: pitchcode.N1}, Divisions: 1,
					Fraction: ir.NewFraction(1, 1), Tie: ir.TieStop,
				}},
			},
		}},
	}
	out, err := Emit([]ir.MeasurizedPart{part}, map[string]PartMeta{"P1": {}})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, `<tie type="start"/>`) || !strings.Contains(out, `<tied type="start"/>`) {
		t.Errorf("missing tie start elements:\n%s", out)
	}
	if !strings.Contains(out, `<tie type="stop"/>`) || !strings.Contains(out, `<tied type="stop"/>`) {
		t.Errorf("missing tie stop elements:\n%s", out)
	}
}

func TestEmitTupletBracketsAndTimeModification(t *testing.T) {
	part := ir.MeasurizedPart{
		PartID: "P1",
		Bars: []ir.ExportMeasure{{
			Divisions: 2,
			Events: []ir.ExportEvent{
				{Kind: ir.EventNote, Note: &ir.NoteData{
					Pitch: ir.PitchInfo{Pitch: pitchcode.N1}, Divisions: 1,
					Fraction: ir.NewFraction(1, 3),
					Tuplet:   &ir.TupletInfo{ActualNotes: 3, NormalNotes: 2, BracketStart: true},
				}},
			},
		}},
	}
	out, err := Emit([]ir.MeasurizedPart{part}, map[string]PartMeta{"P1": {}})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, "<actual-notes>3</actual-notes>") || !strings.Contains(out, "<normal-notes>2</normal-notes>") {
		t.Errorf("missing time-modification:\n%s", out)
	}
	if !strings.Contains(out, `<tuplet type="start"/>`) {
		t.Errorf("missing tuplet bracket start:\n%s", out)
	}
}

func TestEmitGraceNoteOrdering(t *testing.T) {
	part := ir.MeasurizedPart{
		PartID: "P1",
		Bars: []ir.ExportMeasure{{
			Divisions: 1,
			Events: []ir.ExportEvent{
				{Kind: ir.EventNote, Note: &ir.NoteData{
					Pitch: ir.PitchInfo{Pitch: pitchcode.N1}, Divisions: 1,
					Fraction:         ir.NewFraction(1, 1),
					GraceNotesBefore: []ir.GraceNote{{Pitch: ir.PitchInfo{Pitch: pitchcode.N2}, Slash: true}},
				}},
			},
		}},
	}
	out, err := Emit([]ir.MeasurizedPart{part}, map[string]PartMeta{"P1": {}})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	graceIdx := strings.Index(out, `<grace slash="yes"/>`)
	stepIdx := strings.Index(out, "<step>C</step>")
	if graceIdx == -1 || stepIdx == -1 || graceIdx > stepIdx {
		t.Errorf("expected before-grace note to precede the main note:\n%s", out)
	}
}

func TestEmitPartGroupWrapsSharedSystem(t *testing.T) {
	parts := []ir.MeasurizedPart{notePart("P1", 0), notePart("P2", 0)}
	meta := map[string]PartMeta{
		"P1": {SystemID: 1, ShowBracket: true},
		"P2": {SystemID: 1, ShowBracket: true},
	}
	out, err := Emit(parts, meta)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, `<part-group type="start" number="1" symbol="bracket"/>`) {
		t.Errorf("expected a part-group wrapping both parts:\n%s", out)
	}
}

func TestEmitPartGroupHiddenWhenAnyMemberHidesBracket(t *testing.T) {
	parts := []ir.MeasurizedPart{notePart("P1", 0), notePart("P2", 0)}
	meta := map[string]PartMeta{
		"P1": {SystemID: 1, ShowBracket: true},
		"P2": {SystemID: 1, ShowBracket: false},
	}
	out, err := Emit(parts, meta)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, `print-object="no"`) {
		t.Errorf("expected print-object=no on the group:\n%s", out)
	}
}

func TestEmitSingleSystemPartIsNotGrouped(t *testing.T) {
	parts := []ir.MeasurizedPart{notePart("P1", 0), notePart("P2", 0)}
	meta := map[string]PartMeta{
		"P1": {SystemID: 1},
		"P2": {SystemID: 2},
	}
	out, err := Emit(parts, meta)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if strings.Contains(out, "<part-group") {
		t.Errorf("expected no part-group when parts don't share a system_id:\n%s", out)
	}
}

func TestEmitNewSystemPrintOnSystemChange(t *testing.T) {
	parts := []ir.MeasurizedPart{notePart("P1", 0), notePart("P2", 0)}
	meta := map[string]PartMeta{
		"P1": {SystemID: 1},
		"P2": {SystemID: 2},
	}
	out, err := Emit(parts, meta)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, `<print new-system="yes"/>`) {
		t.Errorf("expected a new-system print directive on the second part:\n%s", out)
	}
}

func TestEmitDefaultTimeSignature(t *testing.T) {
	out, err := Emit([]ir.MeasurizedPart{notePart("P1", 0)}, map[string]PartMeta{"P1": {}})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, "<beats>4</beats>") || !strings.Contains(out, "<beat-type>4</beat-type>") {
		t.Errorf("expected default 4/4 time signature:\n%s", out)
	}
}

func TestEmitKeySignatureFifths(t *testing.T) {
	out, err := Emit([]ir.MeasurizedPart{notePart("P1", 0)}, map[string]PartMeta{"P1": {KeySignature: "D"}})
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !strings.Contains(out, "<fifths>2</fifths>") {
		t.Errorf("expected fifths=2 for key D:\n%s", out)
	}
}
