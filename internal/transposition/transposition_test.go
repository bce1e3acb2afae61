package transposition

import (
	"testing"

	"github.com/leafo/notengine/internal/pitchcode"
)

func TestParseTonicNaturals(t *testing.T) {
	got, ok := ParseTonic("c")
	if !ok || got != C {
		t.Errorf("ParseTonic(c) = %v, %v, want C, true", got, ok)
	}
	if got, ok := ParseTonic("Bn"); !ok || got != B {
		t.Errorf("ParseTonic(Bn) = %v, %v, want B, true", got, ok)
	}
}

func TestParseTonicSharpsAndFlats(t *testing.T) {
	cases := map[string]Tonic{
		"C#": Cs, "Cs": Cs, "C♯": Cs,
		"Db": Db, "D♭": Db,
		"f#": Fs, "FS": Fs,
	}
	for in, want := range cases {
		if got, ok := ParseTonic(in); !ok || got != want {
			t.Errorf("ParseTonic(%q) = %v, %v, want %v, true", in, got, ok, want)
		}
	}
}

func TestParseTonicInvalid(t *testing.T) {
	if _, ok := ParseTonic("H"); ok {
		t.Errorf("ParseTonic(H) should fail")
	}
}

func TestTonicString(t *testing.T) {
	if C.String() != "C" || Cs.String() != "C#" || Db.String() != "Db" {
		t.Errorf("unexpected Tonic.String() output")
	}
}

func TestNormalizeCMajorNaturals(t *testing.T) {
	want := []string{"C", "D", "E", "F", "G", "A", "B"}
	for i, w := range want {
		if got := Normalize(i+1, "", C); got != w {
			t.Errorf("Normalize(%d, \"\", C) = %q, want %q", i+1, got, w)
		}
	}
}

func TestNormalizeCSharpMajorNaturals(t *testing.T) {
	want := []string{"C#", "D#", "E#", "F#", "G#", "A#", "B#"}
	for i, w := range want {
		if got := Normalize(i+1, "", Cs); got != w {
			t.Errorf("Normalize(%d, \"\", Cs) = %q, want %q", i+1, got, w)
		}
	}
}

func TestNormalizeEMajorWithAccidentals(t *testing.T) {
	if got := Normalize(2, "#", E); got != "F##" {
		t.Errorf("Normalize(2, #, E) = %q, want F##", got)
	}
	if got := Normalize(2, "b", E); got != "F" {
		t.Errorf("Normalize(2, b, E) = %q, want F", got)
	}
}

func TestNormalizeCSharpExample(t *testing.T) {
	if got := Normalize(1, "b", Cs); got != "C" {
		t.Errorf("Normalize(1, b, Cs) = %q, want C", got)
	}
}

func TestNormalizeDMajorExamples(t *testing.T) {
	// Degree 7 of D major is C#; sharping it again stacks to C##, and
	// flatting it cancels back down to C natural.
	if got := Normalize(7, "", D); got != "C#" {
		t.Errorf("Normalize(7, \"\", D) = %q, want C#", got)
	}
	if got := Normalize(7, "#", D); got != "C##" {
		t.Errorf("Normalize(7, #, D) = %q, want C##", got)
	}
	if got := Normalize(7, "b", D); got != "C" {
		t.Errorf("Normalize(7, b, D) = %q, want C", got)
	}
}

func TestNormalizeInvalidDegree(t *testing.T) {
	if got := Normalize(0, "", C); got != "" {
		t.Errorf("Normalize with degree 0 should return empty string, got %q", got)
	}
	if got := Normalize(8, "", C); got != "" {
		t.Errorf("Normalize with degree 8 should return empty string, got %q", got)
	}
}

func TestSpellRoundTripsThroughPitchCode(t *testing.T) {
	if got := Spell(pitchcode.N1, C); got != "C" {
		t.Errorf("Spell(N1, C) = %q, want C", got)
	}
	if got := Spell(pitchcode.N7s, D); got != "C##" {
		t.Errorf("Spell(N7s, D) = %q, want C##", got)
	}
}

func TestSpellHalfFlatFallsBackToFlat(t *testing.T) {
	if got := Spell(pitchcode.N7hf, D); got != "C" {
		t.Errorf("Spell(N7hf, D) = %q, want C (half-flat spelled as flat)", got)
	}
}
