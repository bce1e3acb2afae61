package pitch

import (
	"testing"

	"github.com/leafo/notengine/internal/pitchcode"
)

func TestNumberSystemLongestMatch(t *testing.T) {
	tests := []struct {
		input    string
		wantCode pitchcode.PitchCode
		wantLen  int
		wantOK   bool
	}{
		{"1##", pitchcode.N1ss, 3, true},
		{"1##xyz", pitchcode.N1ss, 3, true},
		{"1#", pitchcode.N1s, 2, true},
		{"1#xyz", pitchcode.N1s, 2, true},
		{"1", pitchcode.N1, 1, true},
		{"2bb", pitchcode.N2bb, 3, true},
		{"2b", pitchcode.N2b, 2, true},
		{"8", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range tests {
		code, n, ok := Parse(Number, tc.input)
		if ok != tc.wantOK || (ok && (code != tc.wantCode || n != tc.wantLen)) {
			t.Errorf("Parse(Number, %q) = (%v, %d, %v), want (%v, %d, %v)", tc.input, code, n, ok, tc.wantCode, tc.wantLen, tc.wantOK)
		}
	}
}

func TestWesternSystemLongestMatch(t *testing.T) {
	tests := []struct {
		input    string
		wantCode pitchcode.PitchCode
		wantLen  int
	}{
		{"c##", pitchcode.N1ss, 3},
		{"c#", pitchcode.N1s, 2},
		{"c", pitchcode.N1, 1},
		{"dbb", pitchcode.N2bb, 3},
		{"db", pitchcode.N2b, 2},
		{"d", pitchcode.N2, 1},
		{"e", pitchcode.N3, 1},
		{"f", pitchcode.N4, 1},
		{"g", pitchcode.N5, 1},
		{"a", pitchcode.N6, 1},
		{"b", pitchcode.N7, 1},
	}
	for _, tc := range tests {
		code, n, ok := Parse(Western, tc.input)
		if !ok || code != tc.wantCode || n != tc.wantLen {
			t.Errorf("Parse(Western, %q) = (%v, %d, %v), want (%v, %d, true)", tc.input, code, n, ok, tc.wantCode, tc.wantLen)
		}
	}
	if _, _, ok := Parse(Western, "x"); ok {
		t.Errorf("Parse(Western, %q) should fail", "x")
	}
	if _, _, ok := Parse(Western, ""); ok {
		t.Errorf("Parse(Western, \"\") should fail")
	}
}

func TestSargamSystemLongestMatch(t *testing.T) {
	tests := []struct {
		input    string
		wantCode pitchcode.PitchCode
		wantLen  int
	}{
		{"S##", pitchcode.N1ss, 3},
		{"S#", pitchcode.N1s, 2},
		{"S", pitchcode.N1, 1},
		{"s", pitchcode.N1, 1},
		{"r", pitchcode.N2b, 1},
		{"g", pitchcode.N3b, 1},
		{"d", pitchcode.N6b, 1},
		{"n", pitchcode.N7b, 1},
		{"R", pitchcode.N2, 1},
		{"G", pitchcode.N3, 1},
		{"m", pitchcode.N4, 1},
		{"M", pitchcode.N4s, 1},
		{"mb", pitchcode.N4b, 2},
	}
	for _, tc := range tests {
		code, n, ok := Parse(Sargam, tc.input)
		if !ok || code != tc.wantCode || n != tc.wantLen {
			t.Errorf("Parse(Sargam, %q) = (%v, %d, %v), want (%v, %d, true)", tc.input, code, n, ok, tc.wantCode, tc.wantLen)
		}
	}
	if _, _, ok := Parse(Sargam, "X"); ok {
		t.Errorf("Parse(Sargam, %q) should fail", "X")
	}
}

func TestTablaSystemLongestMatch(t *testing.T) {
	tests := []struct {
		input    string
		wantCode pitchcode.PitchCode
		wantLen  int
	}{
		{"dhin", pitchcode.N1, 4},
		{"dhinxyz", pitchcode.N1, 4},
		{"dha", pitchcode.N1, 3},
		{"tin", pitchcode.N5, 3},
		{"na", pitchcode.N1, 2},
		{"ta", pitchcode.N2, 2},
		{"tita", pitchcode.N3, 4},
	}
	for _, tc := range tests {
		code, n, ok := Parse(Tabla, tc.input)
		if !ok || code != tc.wantCode || n != tc.wantLen {
			t.Errorf("Parse(Tabla, %q) = (%v, %d, %v), want (%v, %d, true)", tc.input, code, n, ok, tc.wantCode, tc.wantLen)
		}
	}
	if _, _, ok := Parse(Tabla, "xyz"); ok {
		t.Errorf("Parse(Tabla, %q) should fail", "xyz")
	}
}

func TestBhatkhandeMatchesSargam(t *testing.T) {
	for _, input := range []string{"S##", "S#", "S", "r", "M"} {
		sCode, sLen, sOK := Parse(Sargam, input)
		bCode, bLen, bOK := Parse(Bhatkhande, input)
		if sCode != bCode || sLen != bLen || sOK != bOK {
			t.Errorf("Bhatkhande(%q) = (%v,%d,%v) diverges from Sargam = (%v,%d,%v)", input, bCode, bLen, bOK, sCode, sLen, sOK)
		}
	}
}

func TestRenderRoundTripsThroughParse(t *testing.T) {
	systems := []System{Number, Western, Sargam, Bhatkhande, Tabla}
	for _, sys := range systems {
		rendered := 0
		for code := pitchcode.N1; code.Valid(); code++ {
			text, ok := Render(sys, code)
			if !ok {
				continue
			}
			rendered++
			gotCode, n, parseOK := Parse(sys, text)
			if !parseOK || gotCode != code || n != len(text) {
				t.Errorf("%v: Render(%v) = %q, Parse(%v, %q) = (%v, %d, %v), want (%v, %d, true)",
					sys, code, text, sys, text, gotCode, n, parseOK, code, len(text))
			}
		}
		if rendered == 0 {
			t.Errorf("%v: Render produced no output for any pitch code", sys)
		}
	}
}

func TestRenderKnownSpellings(t *testing.T) {
	tests := []struct {
		system System
		code   pitchcode.PitchCode
		want   string
	}{
		{Number, pitchcode.N4s, "4#"},
		{Western, pitchcode.N4s, "f#"},
		{Sargam, pitchcode.N4s, "M"},
		{Sargam, pitchcode.N4b, "mb"},
		{Bhatkhande, pitchcode.N4s, "M"},
	}
	for _, tc := range tests {
		got, ok := Render(tc.system, tc.code)
		if !ok || got != tc.want {
			t.Errorf("Render(%v, %v) = (%q, %v), want (%q, true)", tc.system, tc.code, got, ok, tc.want)
		}
	}
}

func TestRenderReportsNoSpellingForTablaAccidentals(t *testing.T) {
	if _, ok := Render(Tabla, pitchcode.N1s); ok {
		t.Errorf("Tabla has no bol for accidentals, want ok=false")
	}
	if _, ok := Render(Tabla, pitchcode.N4); ok {
		t.Errorf("Tabla has no bol assigned to degree 4, want ok=false")
	}
}

func TestLongestMatchDoesNotOverconsume(t *testing.T) {
	code, n, ok := Parse(Number, "1##abc")
	if !ok || code != pitchcode.N1ss || n != 3 {
		t.Fatalf("got (%v, %d, %v)", code, n, ok)
	}
	code, n, ok = Parse(Western, "c#def")
	if !ok || code != pitchcode.N1s || n != 2 {
		t.Fatalf("got (%v, %d, %v)", code, n, ok)
	}
}
