package ir

import "github.com/leafo/notengine/internal/cell"

// liftOrnament splits a host cell's attached ornament into grace-note
// lists by placement: Before-placed ornament cells become short
// appoggiaturas (slash=true) played ahead of the host note; After-placed
// ones become long appoggiaturas (slash=false) played following it.
// Classifying a grace-note run as a trill or turn is a rendering decision
// specific to the LilyPond converter, not performed here.
func liftOrnament(o cell.Ornament) (before, after []GraceNote) {
	for _, c := range o.Cells {
		if !c.HasPitch {
			continue
		}
		gn := GraceNote{
			Pitch:     PitchInfo{Pitch: c.Pitch, Octave: c.Octave},
			Placement: Placement(o.Placement),
			Slash:     o.Placement == cell.Before,
		}
		if o.Placement == cell.Before {
			before = append(before, gn)
		} else {
			after = append(after, gn)
		}
	}
	return before, after
}
