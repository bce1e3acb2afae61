package coreerr

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapPreservesErrorsIs(t *testing.T) {
	err := Wrap(ErrValidation, Context{Line: 3}, "slur too short")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}
	if errors.Is(err, ErrParse) {
		t.Errorf("errors.Is(err, ErrParse) = true, want false")
	}
}

func TestWrapFormatsContext(t *testing.T) {
	err := Wrap(ErrParse, Context{Line: 2, Measure: 5, PartID: "P1"}, "unexpected token %q", "<<")
	msg := err.Error()
	for _, want := range []string{"line=2", "measure=5", "part=P1", `unexpected token "<<"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}

func TestWrapOmitsZeroContext(t *testing.T) {
	err := Wrap(ErrInternal, Context{}, "unreachable state")
	if strings.Contains(err.Error(), "line=") || strings.Contains(err.Error(), "measure=") || strings.Contains(err.Error(), "part=") {
		t.Errorf("error message %q should omit zero-valued context fields", err.Error())
	}
}

func TestWarningListAdd(t *testing.T) {
	var warnings WarningList
	warnings.Add(Context{Line: 1}, "too few syllables for %d notes", 4)

	if len(warnings) != 1 {
		t.Fatalf("len(warnings) = %d, want 1", len(warnings))
	}
	if warnings[0].Message != "too few syllables for 4 notes" {
		t.Errorf("warnings[0].Message = %q", warnings[0].Message)
	}
	if warnings[0].Line != 1 {
		t.Errorf("warnings[0].Line = %d, want 1", warnings[0].Line)
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Context: Context{Line: 4, Measure: 2, PartID: "P2"}, Message: "low note count"}
	got := w.String()
	if !strings.Contains(got, "low note count") || !strings.Contains(got, "P2") {
		t.Errorf("Warning.String() = %q, missing expected fields", got)
	}
}
