// Package midiemit renders measurized IR to a Standard MIDI File, Format
// 1: one conductor track carrying tempo and time signature, one track
// per part. Each track is built the same way: accumulate absolute-time
// events, sort, then convert to the delta times SMF actually stores.
package midiemit

import (
	"fmt"
	"io"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/leafo/notengine/internal/ir"
)

const (
	DefaultTPQ      = 480
	DefaultTempo    = 120.0
	DefaultVelocity = 64
	DefaultProgram  = 0
)

// TrackMeta is the per-part rendering metadata the MIDI emitter needs
// that ir.MeasurizedPart doesn't carry.
type TrackMeta struct {
	Label   string
	Program uint8
	IsDrum  bool
}

// midiEvent is one absolute-tick SMF message, sorted and delta-encoded
// only once every track's events are known.
type midiEvent struct {
	Time    uint32
	Message smf.Message
}

// Emit builds a complete SMF Format 1 file: a conductor track (tempo
// plus a default 4/4 time signature) and one track per part, in
// part_id sort order, each on the channel ChannelFor assigns it.
func Emit(parts []ir.MeasurizedPart, meta map[string]TrackMeta, tpq uint16, tempoBPM float64) *smf.SMF {
	if tpq == 0 {
		tpq = DefaultTPQ
	}
	if tempoBPM == 0 {
		tempoBPM = DefaultTempo
	}

	sorted := append([]ir.MeasurizedPart(nil), parts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PartID < sorted[j].PartID })

	out := smf.NewSMF1()
	out.TimeFormat = smf.MetricTicks(tpq)
	out.Add(conductorTrack(tempoBPM))

	for i, p := range sorted {
		pm := meta[p.PartID]
		channel := ChannelFor(i, pm.IsDrum)
		out.Add(buildPartTrack(p, pm, channel, tpq))
	}

	return out
}

// WriteTo builds the SMF and writes it out in one call.
func WriteTo(parts []ir.MeasurizedPart, meta map[string]TrackMeta, tpq uint16, tempoBPM float64, w io.Writer) error {
	_, err := Emit(parts, meta, tpq, tempoBPM).WriteTo(w)
	if err != nil {
		return fmt.Errorf("midiemit: writing SMF: %w", err)
	}
	return nil
}

func conductorTrack(tempoBPM float64) smf.Track {
	track := smf.Track{}
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTrackSequenceName("Tempo"))})
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTempo(tempoBPM))})
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTimeSig(4, 4, 24, 8))})
	track = append(track, smf.Event{Delta: 0, Message: smf.EOT})
	return track
}

// graceTicks is the fixed duration stolen from a host note for each
// grace note attached to it: short enough to read as ornamental, long
// enough to have a distinct MIDI attack. A host shorter than its grace
// notes shrinks to zero length and the grace notes run past its end.
func graceTicks(tpq uint16) uint32 {
	return uint32(tpq) / 8
}

func buildPartTrack(part ir.MeasurizedPart, meta TrackMeta, channel uint8, tpq uint16) smf.Track {
	track := smf.Track{}
	name := meta.Label
	if name == "" {
		name = part.PartID
	}
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTrackSequenceName(name))})
	if channel != 9 {
		track = append(track, smf.Event{Delta: 0, Message: smf.Message(midi.ProgramChange(channel, meta.Program))})
	}

	var events []midiEvent
	var tick uint32
	var havePending bool
	var pendingPitch uint8

	open := func(pitch uint8) {
		events = append(events, midiEvent{Time: tick, Message: smf.Message(midi.NoteOn(channel, pitch, DefaultVelocity))})
		havePending = true
		pendingPitch = pitch
	}
	closeNote := func() {
		if havePending {
			events = append(events, midiEvent{Time: tick, Message: smf.Message(midi.NoteOff(channel, pendingPitch))})
			havePending = false
		}
	}
	emitGrace := func(gn ir.GraceNote) {
		g := graceTicks(tpq)
		pitch := PitchToMIDI(gn.Pitch)
		events = append(events, midiEvent{Time: tick, Message: smf.Message(midi.NoteOn(channel, pitch, DefaultVelocity))})
		tick += g
		events = append(events, midiEvent{Time: tick, Message: smf.Message(midi.NoteOff(channel, pitch))})
	}

	for _, bar := range part.Bars {
		for _, ev := range bar.Events {
			switch ev.Kind {
			case ir.EventRest:
				closeNote()
				tick += ticksForFraction(ev.Rest.Fraction, tpq)

			case ir.EventNote:
				nd := ev.Note
				continuesBack := nd.Tie == ir.TieStop || nd.Tie == ir.TieBoth
				continuesForward := nd.Tie == ir.TieStart || nd.Tie == ir.TieBoth
				dur := ticksForFraction(nd.Fraction, tpq)

				if !continuesBack {
					closeNote()
					start := tick
					for _, gn := range nd.GraceNotesBefore {
						emitGrace(gn)
					}
					dur -= min(dur, tick-start)
					open(PitchToMIDI(nd.Pitch))
				}

				var after uint32
				if !continuesForward {
					after = min(dur, graceTicks(tpq)*uint32(len(nd.GraceNotesAfter)))
				}
				tick += dur - after

				if !continuesForward {
					closeNote()
					for _, gn := range nd.GraceNotesAfter {
						emitGrace(gn)
					}
				}

			case ir.EventChord:
				// Simultaneous-voice detection isn't produced by the IR
				// builder yet; nothing to emit.
			}
		}
	}
	closeNote()

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		var ch, note, vel uint8
		iOff := events[i].Message.GetNoteOff(&ch, &note, &vel)
		jOn := events[j].Message.GetNoteOn(&ch, &note, &vel)
		return iOff && jOn
	})

	var lastTime uint32
	for _, e := range events {
		track = append(track, smf.Event{Delta: e.Time - lastTime, Message: e.Message})
		lastTime = e.Time
	}
	track = append(track, smf.Event{Delta: 0, Message: smf.EOT})
	return track
}
