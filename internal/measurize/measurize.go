// Package measurize aligns a system's independent voices — each already
// reduced to its own ExportMeasure sequence by package ir — onto one
// common measure grid, so a multi-staff system can be rendered bar for
// bar in lockstep.
package measurize

import (
	"sort"

	"github.com/leafo/notengine/internal/ir"
)

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func lcm(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}

// restMeasure is the whole-measure rest appended to pad a short voice out
// to the system's bar count.
func restMeasure() ir.ExportMeasure {
	return ir.ExportMeasure{
		Divisions: 1,
		Events:    []ir.ExportEvent{{Kind: ir.EventRest, Rest: &ir.RestData{Divisions: 1, Fraction: ir.NewFraction(1, 1)}}},
	}
}

// Align takes each part's independently built measure sequence and
// returns one MeasurizedPart per part_id, in part_id sort order:
//
//  1. every part is padded with whole-measure rests up to the system's
//     maximum bar count;
//  2. a single divisions value is computed as the LCM of every
//     measure's own divisions, across every part and every bar, and
//     every event's divisions is rescaled to it;
//  3. any same-indexed bar that already agreed on divisions but was
//     entered with fewer beats than its siblings is padded with
//     trailing rests, one per missing beat.
//
// The result satisfies the invariant that every part has the same
// number of bars, every bar shares the same divisions value, and every
// part's same-indexed bar spans the same number of beats.
func Align(parts map[string][]ir.ExportMeasure) []ir.MeasurizedPart {
	if len(parts) == 0 {
		return nil
	}

	ids := make([]string, 0, len(parts))
	maxBars := 0
	for id, bars := range parts {
		ids = append(ids, id)
		if len(bars) > maxBars {
			maxBars = len(bars)
		}
	}
	sort.Strings(ids)

	origLen := make(map[string]int, len(parts))
	padded := make(map[string][]ir.ExportMeasure, len(parts))
	for _, id := range ids {
		origLen[id] = len(parts[id])
		bars := append([]ir.ExportMeasure(nil), parts[id]...)
		for len(bars) < maxBars {
			bars = append(bars, restMeasure())
		}
		padded[id] = bars
	}

	globalDivisions := 1
	for _, bars := range padded {
		for _, bar := range bars {
			d := bar.Divisions
			if d == 0 {
				d = 1
			}
			globalDivisions = lcm(globalDivisions, d)
		}
	}

	rescaled := make(map[string][]ir.ExportMeasure, len(ids))
	for _, id := range ids {
		bars := padded[id]
		out := make([]ir.ExportMeasure, len(bars))
		for bi, bar := range bars {
			out[bi] = rescaleMeasure(bar, globalDivisions)
		}
		rescaled[id] = out
	}
	padBeats(rescaled, ids, maxBars, globalDivisions, origLen)

	result := make([]ir.MeasurizedPart, 0, len(ids))
	for _, id := range ids {
		result = append(result, ir.MeasurizedPart{
			PartID:          id,
			Bars:            rescaled[id],
			GlobalDivisions: globalDivisions,
		})
	}
	return result
}

// beatsIn reports how many beats bar is built from: one beat always
// contributes exactly bar.Divisions worth of event divisions to its
// measure regardless of how finely it subdivides internally, so the beat
// count is recoverable as the total event divisions over the bar's own
// divisions value.
func beatsIn(bar ir.ExportMeasure) int {
	d := bar.Divisions
	if d == 0 {
		d = 1
	}
	total := 0
	for _, ev := range bar.Events {
		switch ev.Kind {
		case ir.EventNote:
			total += ev.Note.Divisions
		case ir.EventRest:
			total += ev.Rest.Divisions
		}
	}
	return total / d
}

// padBeats equalizes beat counts across parts at each bar index. Bar count
// and divisions alignment alone leave a voice entered with fewer beats
// than its sibling voices (e.g. "5 6" against "1 2 3 4") summing to a
// smaller total than the others at the same bar position; this appends
// one trailing rest per missing beat so every part's same-indexed bar
// spans the same number of beats. origLen excludes whole-measure rests
// that restMeasure already added past a voice's own bar count from this
// pass: those stand for an entirely absent measure and are left as one
// whole rest rather than re-split per sibling beat.
func padBeats(rescaled map[string][]ir.ExportMeasure, ids []string, maxBars, globalDivisions int, origLen map[string]int) {
	for bi := 0; bi < maxBars; bi++ {
		maxBeats := 0
		for _, id := range ids {
			if bi >= origLen[id] {
				continue
			}
			if b := beatsIn(rescaled[id][bi]); b > maxBeats {
				maxBeats = b
			}
		}

		for _, id := range ids {
			if bi >= origLen[id] {
				continue
			}
			bar := rescaled[id][bi]
			missing := maxBeats - beatsIn(bar)
			for i := 0; i < missing; i++ {
				bar.Events = append(bar.Events, ir.ExportEvent{
					Kind: ir.EventRest,
					Rest: &ir.RestData{Divisions: globalDivisions, Fraction: ir.NewFraction(1, 1)},
				})
			}
			rescaled[id][bi] = bar
		}
	}
}

func rescaleMeasure(m ir.ExportMeasure, globalDivisions int) ir.ExportMeasure {
	voiceDivisions := m.Divisions
	if voiceDivisions == 0 {
		voiceDivisions = 1
	}
	scale := globalDivisions / voiceDivisions

	events := make([]ir.ExportEvent, len(m.Events))
	for i, ev := range m.Events {
		events[i] = rescaleEvent(ev, scale)
	}
	return ir.ExportMeasure{Divisions: globalDivisions, Events: events}
}

func rescaleEvent(ev ir.ExportEvent, scale int) ir.ExportEvent {
	switch ev.Kind {
	case ir.EventNote:
		nd := *ev.Note
		nd.Divisions *= scale
		return ir.ExportEvent{Kind: ir.EventNote, Note: &nd}
	case ir.EventRest:
		rd := *ev.Rest
		rd.Divisions *= scale
		return ir.ExportEvent{Kind: ir.EventRest, Rest: &rd}
	case ir.EventChord:
		cd := *ev.Chord
		return ir.ExportEvent{Kind: ir.EventChord, Chord: &cd}
	default:
		return ev
	}
}
