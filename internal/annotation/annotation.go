// Package annotation implements a position-based slur layer that survives
// text edits without storing pointers between cells: a slur is a pair of
// text positions, shifted in response to inserts and deletes on the
// owning line.
package annotation

import "github.com/leafo/notengine/internal/coreerr"

// Slur is a half-open interval [Start, End) of cell-column positions on one
// line. End is exclusive so that inserting exactly at End never extends
// the slur.
type Slur struct {
	Start, End int
}

// Valid reports whether the slur spans at least two positions; a slur
// pinned to a single cell is rejected.
func (s Slur) Valid() bool {
	return s.End-s.Start >= 2 && s.Start >= 0
}

// Layer is the mutable slur set attached to one Line.
type Layer struct {
	Slurs []Slur
}

// Insert shifts every stored position in response to a character inserted
// at column p: every start >= p shifts right by one; every end > p shifts
// right by one (equality at end does not shift, because end is exclusive).
func (l *Layer) Insert(p int) {
	for i := range l.Slurs {
		if l.Slurs[i].Start >= p {
			l.Slurs[i].Start++
		}
		if l.Slurs[i].End > p {
			l.Slurs[i].End++
		}
	}
}

// Delete shifts every stored position strictly greater than p left by one,
// then drops any slur whose Start >= End as a result.
func (l *Layer) Delete(p int) {
	for i := range l.Slurs {
		if l.Slurs[i].Start > p {
			l.Slurs[i].Start--
		}
		if l.Slurs[i].End > p {
			l.Slurs[i].End--
		}
	}
	l.prune()
}

func (l *Layer) prune() {
	kept := l.Slurs[:0]
	for _, s := range l.Slurs {
		if s.Start < s.End {
			kept = append(kept, s)
		}
	}
	l.Slurs = kept
}

// Toggle flips a slur over [start,end): if the exact range already
// carries a slur, it is removed; otherwise a new one is added. Returns a
// ValidationError if the range spans fewer than two positions.
func (l *Layer) Toggle(start, end int) error {
	s := Slur{Start: start, End: end}
	if !s.Valid() {
		return coreerr.Wrap(coreerr.ErrValidation, coreerr.Context{}, "slur requires at least two cells, got [%d,%d)", start, end)
	}
	for i, existing := range l.Slurs {
		if existing == s {
			l.Slurs = append(l.Slurs[:i], l.Slurs[i+1:]...)
			return nil
		}
	}
	l.Slurs = append(l.Slurs, s)
	return nil
}

// At reports the slur indicator that should be shown on the cell at
// column: SlurStart if a slur begins there, SlurEnd if one ends there
// (i.e. column == End-1, the last covered cell), both are possible only
// for degenerate adjacent slurs and Start wins in that case.
type Indicator int

const (
	None Indicator = iota
	Start
	End
)

func (l *Layer) At(column int) Indicator {
	ind := None
	for _, s := range l.Slurs {
		if s.Start == column {
			return Start
		}
		if s.End-1 == column {
			ind = End
		}
	}
	return ind
}

// Covers reports whether column lies within any stored slur [Start, End).
func (l *Layer) Covers(column int) bool {
	for _, s := range l.Slurs {
		if column >= s.Start && column < s.End {
			return true
		}
	}
	return false
}
