// Package coreerr defines the error kinds the engine surfaces to its
// host. Every error returned by the engine wraps one of a small set of
// sentinel values via fmt.Errorf("%w: detail", ...), so call sites can
// branch on kind with errors.Is while still getting a human-readable
// message with positional context.
package coreerr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Wrap one of these with fmt.Errorf("%w: detail", Err...)
// to attach line/measure/part context while preserving errors.Is matching.
var (
	// ErrParse marks ill-formed input on an import path (malformed XML,
	// missing required elements). Always fatal to the enclosing call.
	ErrParse = errors.New("parse error")

	// ErrUnsupportedFormat marks a recognized-but-unimplemented input
	// variant (e.g. timewise MusicXML). Fatal.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrValidation marks an attempted mutation that would violate a
	// document invariant (slur on a single cell, out-of-range octave,
	// unknown command). The document is left unmutated.
	ErrValidation = errors.New("validation error")

	// ErrInternal signals a bug: an invariant the engine itself should
	// have maintained was found broken.
	ErrInternal = errors.New("internal error")
)

// Context carries the positional detail a user-visible failure should
// report: line number, measure number, and part id, each optional (zero
// value means "not applicable").
type Context struct {
	Line    int
	Measure int
	PartID  string
}

// Wrap attaches positional context to one of the sentinel kinds above,
// preserving errors.Is(result, kind).
func Wrap(kind error, ctx Context, format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)
	loc := ""
	if ctx.Line != 0 {
		loc += fmt.Sprintf(" line=%d", ctx.Line)
	}
	if ctx.Measure != 0 {
		loc += fmt.Sprintf(" measure=%d", ctx.Measure)
	}
	if ctx.PartID != "" {
		loc += fmt.Sprintf(" part=%s", ctx.PartID)
	}
	return fmt.Errorf("%w:%s %s", kind, loc, detail)
}

// Warning is an accumulated, non-fatal diagnostic (e.g. "too few syllables
// for notes"). Warnings never fail an export; the host may display them.
type Warning struct {
	Context
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (line=%d measure=%d part=%s)", w.Message, w.Line, w.Measure, w.PartID)
}

// WarningList accumulates warnings across a single export or mutation call.
type WarningList []Warning

func (l *WarningList) Add(ctx Context, format string, args ...any) {
	*l = append(*l, Warning{Context: ctx, Message: fmt.Sprintf(format, args...)})
}
