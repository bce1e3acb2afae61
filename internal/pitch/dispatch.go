// Package pitch implements the longest-match tokenizers for the five
// pitch-naming systems (Number, Western, Sargam, Bhatkhande, Tabla) and
// dispatches between them by a System tag carried on the host line.
package pitch

import "github.com/leafo/notengine/internal/pitchcode"

// System identifies which notation vocabulary a line is typed in.
type System int

const (
	Number System = iota
	Western
	Sargam
	Bhatkhande
	Tabla
)

func (s System) String() string {
	switch s {
	case Number:
		return "Number"
	case Western:
		return "Western"
	case Sargam:
		return "Sargam"
	case Bhatkhande:
		return "Bhatkhande"
	case Tabla:
		return "Tabla"
	default:
		return "Unknown"
	}
}

// Parser is implemented by each pitch system's token table.
type Parser interface {
	// ParsePitch attempts a longest-match parse at the start of input.
	// It returns the matched pitch code and the number of bytes consumed;
	// ok is false if no token applies at position 0 (not an error — the
	// caller treats the input as Text).
	ParsePitch(input string) (code pitchcode.PitchCode, consumed int, ok bool)
}

var parsers = map[System]Parser{
	Number:     numberSystem{},
	Western:    westernSystem{},
	Sargam:     sargamSystem{},
	Bhatkhande: bhatkhandeSystem{},
	Tabla:      tablaSystem{},
}

// Dispatch returns the Parser implementation for system.
func Dispatch(system System) Parser {
	return parsers[system]
}

// Parse is a convenience wrapper around Dispatch(system).ParsePitch.
func Parse(system System, input string) (pitchcode.PitchCode, int, bool) {
	p := Dispatch(system)
	if p == nil {
		return 0, 0, false
	}
	return p.ParsePitch(input)
}

// token is one entry of an ordered longest-match table: a literal glyph and
// the pitch code it resolves to. Tables are built pre-sorted by descending
// token length so the first matching entry is always the longest match.
type token struct {
	text string
	code pitchcode.PitchCode
}

// longestMatch walks an ordered (longest-first) token table and returns the
// first one that is a prefix of input.
func longestMatch(tokens []token, input string) (pitchcode.PitchCode, int, bool) {
	for _, tk := range tokens {
		if len(input) >= len(tk.text) && input[:len(tk.text)] == tk.text {
			return tk.code, len(tk.text), true
		}
	}
	return 0, 0, false
}
