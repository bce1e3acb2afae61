package pitchcode

import "testing"

func TestDegreeAndAccidentalRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		code   PitchCode
		degree int
		acc    AccidentalType
	}{
		{"N1", N1, 1, AccidentalNone},
		{"N4s", N4s, 4, AccidentalSharp},
		{"N7hf", N7hf, 7, AccidentalHalfFlat},
		{"N2bb", N2bb, 2, AccidentalDoubleFlat},
		{"N6ss", N6ss, 6, AccidentalDoubleSharp},
		{"N3b", N3b, 3, AccidentalFlat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.code.Degree(); got != tc.degree {
				t.Errorf("Degree() = %d, want %d", got, tc.degree)
			}
			if got := tc.code.AccidentalType(); got != tc.acc {
				t.Errorf("AccidentalType() = %v, want %v", got, tc.acc)
			}
			if code, ok := ByDegreeAndAccidental(tc.degree, tc.acc); !ok || code != tc.code {
				t.Errorf("ByDegreeAndAccidental(%d, %v) = %v, %v, want %v, true", tc.degree, tc.acc, code, ok, tc.code)
			}
		})
	}
}

func TestAddSharpAddFlat(t *testing.T) {
	if got, ok := N1.AddSharp(); !ok || got != N1s {
		t.Errorf("N1.AddSharp() = %v, %v, want N1s, true", got, ok)
	}
	if got, ok := N1s.AddSharp(); !ok || got != N1ss {
		t.Errorf("N1s.AddSharp() = %v, %v, want N1ss, true", got, ok)
	}
	if _, ok := N1ss.AddSharp(); ok {
		t.Errorf("N1ss.AddSharp() should fail (no triple sharp)")
	}
	if got, ok := N1b.AddSharp(); !ok || got != N1 {
		t.Errorf("N1b.AddSharp() = %v, %v, want N1, true", got, ok)
	}
	if got, ok := N1.AddFlat(); !ok || got != N1b {
		t.Errorf("N1.AddFlat() = %v, %v, want N1b, true", got, ok)
	}
	if _, ok := N1hf.AddSharp(); ok {
		t.Errorf("N1hf.AddSharp() should fail (cross-accidental mixing)")
	}
}

func TestToNatural(t *testing.T) {
	for _, c := range []PitchCode{N3s, N3b, N3ss, N3bb, N3hf} {
		if got := c.ToNatural(); got != N3 {
			t.Errorf("%v.ToNatural() = %v, want N3", c, got)
		}
	}
}

func TestTransposeBySemitones(t *testing.T) {
	tests := []struct {
		code PitchCode
		k    int
		want PitchCode
	}{
		{N1, 2, N2},         // C -> D
		{N1, 1, N1s},        // C -> C#
		{N1, -1, N7},        // C -> B (wrap down)
		{N1, 12, N1},        // full octave is a no-op in pitch class
		{N4s, 1, N5},        // F# -> G
		{N7, 1, N1},         // B -> C
	}

	for _, tc := range tests {
		if got := tc.code.TransposeBySemitones(tc.k); got != tc.want {
			t.Errorf("%v.TransposeBySemitones(%d) = %v, want %v", tc.code, tc.k, got, tc.want)
		}
	}
}

func TestSemitoneClamped(t *testing.T) {
	for p := N1; p < numPitchCodes; p++ {
		s := p.Semitone()
		if s < 0 || s > 11 {
			t.Errorf("%v.Semitone() = %d, out of [0,11]", p, s)
		}
	}
}

func TestStringFormat(t *testing.T) {
	tests := map[PitchCode]string{
		N1:   "1",
		N1s:  "1#",
		N2b:  "2b",
		N4ss: "4##",
		N7bb: "7bb",
	}
	for code, want := range tests {
		if got := code.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", code, got, want)
		}
	}
}
