package docmodel

import (
	"github.com/leafo/notengine/internal/cell"
	"github.com/leafo/notengine/internal/coreerr"
)

// Command names one of the range operations a host can apply to a span of
// cells: toggling a slur, nudging a note's octave, or marking a span as an
// ornament attached to its neighboring host cell.
type Command int

const (
	CmdSlur Command = iota
	CmdLowerOctave
	CmdUpperOctave
	CmdMiddleOctave
	CmdLowestOctave
	CmdHighestOctave
	CmdOrnamentIndicator
)

// octaveTargets gives the octave each non-middle octave command sets a
// cell to. Applying a command to a note already at its target resets the
// note to the middle octave instead, so every octave command toggles.
var octaveTargets = map[Command]int8{
	CmdLowerOctave:   -1,
	CmdUpperOctave:   1,
	CmdLowestOctave:  -2,
	CmdHighestOctave: 2,
}

// ApplyCommand applies command to cells [start,end) of l, shifting nothing
// (unlike InsertChar/DeleteChar, a command never changes cell count).
func (l *Line) ApplyCommand(start, end int, command Command) error {
	if start < 0 || end > len(l.Cells) || start >= end {
		return coreerr.Wrap(coreerr.ErrValidation, coreerr.Context{Line: 0}, "apply_command: invalid range [%d,%d)", start, end)
	}

	switch command {
	case CmdSlur:
		return l.Annotations.Toggle(start, end)

	case CmdMiddleOctave:
		for i := start; i < end; i++ {
			if l.Cells[i].HasPitch {
				l.Cells[i].Octave = 0
			}
		}
		return nil

	case CmdLowerOctave, CmdUpperOctave, CmdLowestOctave, CmdHighestOctave:
		target := octaveTargets[command]
		for i := start; i < end; i++ {
			if !l.Cells[i].HasPitch {
				continue
			}
			if l.Cells[i].Octave == target {
				l.Cells[i].Octave = 0
			} else {
				l.Cells[i].Octave = target
			}
		}
		return nil

	case CmdOrnamentIndicator:
		return l.applyOrnamentIndicator(start, end)

	default:
		return coreerr.Wrap(coreerr.ErrValidation, coreerr.Context{}, "apply_command: unknown command %d", command)
	}
}

// applyOrnamentIndicator reattaches cells[start:end) as an ornament on the
// nearest host cell: the cell immediately preceding the span (placement
// After) if one exists, otherwise the cell immediately following it
// (placement Before). The ornament cells themselves are removed from the
// line's main rhythmic stream and live only inside the host's Ornament.
func (l *Line) applyOrnamentIndicator(start, end int) error {
	ornCells := make([]cell.Cell, end-start)
	copy(ornCells, l.Cells[start:end])

	var hostIdx int
	var placement cell.Placement
	switch {
	case start > 0:
		hostIdx = start - 1
		placement = cell.After
	case end < len(l.Cells):
		hostIdx = end
		placement = cell.Before
	default:
		return coreerr.Wrap(coreerr.ErrValidation, coreerr.Context{}, "apply_command: ornament span has no adjacent host cell")
	}

	l.Cells[hostIdx].Ornament = &cell.Ornament{Cells: ornCells, Placement: placement}

	kept := make([]cell.Cell, 0, len(l.Cells)-len(ornCells))
	kept = append(kept, l.Cells[:start]...)
	kept = append(kept, l.Cells[end:]...)
	l.Cells = kept

	for i := range l.Cells {
		l.Cells[i].Column = i
	}

	shift := end - start
	if start < end {
		l.Annotations.Delete(start)
		for k := 1; k < shift; k++ {
			l.Annotations.Delete(start)
		}
	}

	return nil
}
