package ir

import (
	"github.com/leafo/notengine/internal/annotation"
	"github.com/leafo/notengine/internal/cell"
	"github.com/leafo/notengine/internal/rhythm"
)

// Build reduces one line's cells, its slur layer and its lyric text into
// a sequence of ExportMeasures: one per barline-delimited segment.
func Build(cells []cell.Cell, annotations annotation.Layer, lyrics string) []ExportMeasure {
	segments := splitByBarline(cells)

	var events []ExportEvent
	var measureOf []int
	var lyricEligible []bool
	divisionsOf := make([]int, len(segments))

	lastNoteIdx := -1

	for mi, seg := range segments {
		beats := rhythm.ExtractAllBeats(seg)

		if len(beats) == 0 {
			divisionsOf[mi] = 1
			events = append(events, ExportEvent{Kind: EventRest, Rest: &RestData{Divisions: 1, Fraction: NewFraction(1, 1)}})
			measureOf = append(measureOf, mi)
			lyricEligible = append(lyricEligible, false)
			lastNoteIdx = -1
			continue
		}

		nPrimes := make([]int, len(beats))
		for bi, b := range beats {
			_, nPrime := rhythm.ReduceSlots(elementCounts(b))
			nPrimes[bi] = nPrime
		}
		measureDivisions := lcmAll(nPrimes)
		divisionsOf[mi] = measureDivisions

		for _, b := range beats {
			for _, p := range buildProtoElements(seg, b, measureDivisions) {
				ev, eligible, continuesTie := buildEvent(p, events, lastNoteIdx, annotations)

				events = append(events, ev)
				measureOf = append(measureOf, mi)
				lyricEligible = append(lyricEligible, eligible)

				if continuesTie && lastNoteIdx != -1 {
					if events[lastNoteIdx].Note.Tie == TieStop {
						events[lastNoteIdx].Note.Tie = TieBoth
					} else {
						events[lastNoteIdx].Note.Tie = TieStart
					}
				}

				if ev.Kind == EventNote {
					lastNoteIdx = len(events) - 1
				} else {
					lastNoteIdx = -1
				}
			}
		}
	}

	DistributeLyrics(events, lyricEligible, lyrics)

	return groupIntoMeasures(events, measureOf, divisionsOf, len(segments))
}

// protoElement is a beat element reduced to export-ready fields, before
// tie propagation (which needs to see the already-built event stream) is
// resolved.
type protoElement struct {
	isRest          bool
	beatInitial     bool
	pitch           PitchInfo
	column          int
	divisions       int
	fraction        Fraction
	breathMarkAfter bool
	graceBefore     []GraceNote
	graceAfter      []GraceNote
	tuplet          *TupletInfo
}

func elementCounts(b rhythm.Beat) []int {
	counts := make([]int, len(b.Elements))
	for i, el := range b.Elements {
		counts[i] = el.Count
	}
	return counts
}

func buildProtoElements(segCells []cell.Cell, b rhythm.Beat, measureDivisions int) []protoElement {
	reduced, nPrime := rhythm.ReduceSlots(elementCounts(b))
	ratio, hasTuplet := rhythm.TupletFor(nPrime)

	protos := make([]protoElement, len(b.Elements))
	for i, el := range b.Elements {
		p := protoElement{
			isRest:          el.IsRest,
			beatInitial:     i == 0,
			breathMarkAfter: el.BreathMarkAfter,
			divisions:       measureDivisions * reduced[i] / nPrime,
			fraction:        NewFraction(reduced[i], nPrime),
		}

		head := segCells[el.CellIndices[0]]
		p.column = head.Column

		if !el.IsRest {
			p.pitch = PitchInfo{Pitch: head.Pitch, Octave: head.Octave}
			if head.Ornament != nil {
				p.graceBefore, p.graceAfter = liftOrnament(*head.Ornament)
			}
		}

		if hasTuplet {
			p.tuplet = &TupletInfo{ActualNotes: ratio.Actual, NormalNotes: ratio.Normal}
		}

		protos[i] = p
	}

	if hasTuplet && len(protos) > 0 {
		protos[0].tuplet.BracketStart = true
		protos[len(protos)-1].tuplet.BracketStop = true
	}

	return protos
}

// buildEvent turns one protoElement into its ExportEvent. continuesTie
// reports whether the preceding event (at events[lastNoteIdx]) must have
// its own Tie field updated to reflect this event tying back into it.
func buildEvent(p protoElement, events []ExportEvent, lastNoteIdx int, annotations annotation.Layer) (ev ExportEvent, lyricEligible bool, continuesTie bool) {
	tieContinuation := p.isRest && p.beatInitial && lastNoteIdx != -1 &&
		events[lastNoteIdx].Kind == EventNote && !events[lastNoteIdx].Note.BreathMarkAfter

	switch {
	case tieContinuation:
		nd := &NoteData{
			Pitch:           events[lastNoteIdx].Note.Pitch,
			Divisions:       p.divisions,
			Fraction:        p.fraction,
			Tie:             TieStop,
			BreathMarkAfter: p.breathMarkAfter,
		}
		return ExportEvent{Kind: EventNote, Note: nd}, false, true

	case p.isRest:
		return ExportEvent{Kind: EventRest, Rest: &RestData{Divisions: p.divisions, Fraction: p.fraction}}, false, false

	default:
		nd := &NoteData{
			Pitch:            p.pitch,
			Divisions:        p.divisions,
			Fraction:         p.fraction,
			BreathMarkAfter:  p.breathMarkAfter,
			GraceNotesBefore: p.graceBefore,
			GraceNotesAfter:  p.graceAfter,
			Tuplet:           p.tuplet,
		}
		if ind := annotations.At(p.column); ind != annotation.None {
			nd.Slur = &SlurMark{Start: ind == annotation.Start, Stop: ind == annotation.End}
		}
		return ExportEvent{Kind: EventNote, Note: nd}, true, false
	}
}

// splitByBarline divides cells at Barline cells (excluded from every
// segment), matching rhythm.ExtractBeats's own barline-flush boundary. A
// trailing barline with nothing after it closes the final measure rather
// than opening an empty one; a line with no cells at all yields one empty
// segment, which becomes a whole-measure rest.
func splitByBarline(cells []cell.Cell) [][]cell.Cell {
	var segments [][]cell.Cell
	start := 0
	sawBarline := false
	for i, c := range cells {
		if c.Kind == cell.Barline {
			segments = append(segments, cells[start:i])
			start = i + 1
			sawBarline = true
		}
	}
	if start < len(cells) || !sawBarline {
		segments = append(segments, cells[start:])
	}
	return segments
}

func groupIntoMeasures(events []ExportEvent, measureOf []int, divisionsOf []int, numMeasures int) []ExportMeasure {
	measures := make([]ExportMeasure, numMeasures)
	for mi := range measures {
		measures[mi].Divisions = divisionsOf[mi]
	}
	for i, ev := range events {
		mi := measureOf[i]
		measures[mi].Events = append(measures[mi].Events, ev)
	}
	return measures
}

func lcm(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}

func lcmAll(nums []int) int {
	result := 1
	for _, n := range nums {
		if n == 0 {
			continue
		}
		result = lcm(result, n)
	}
	return result
}
