package main

import (
	"github.com/leafo/notengine/internal/annotation"
	"github.com/leafo/notengine/internal/cell"
	"github.com/leafo/notengine/internal/docmodel"
	"github.com/leafo/notengine/internal/ir"
	"github.com/leafo/notengine/internal/measurize"
	"github.com/leafo/notengine/internal/midiemit"
	"github.com/leafo/notengine/internal/musicxml"
)

// buildExportLines reduces a document to one ir.ExportLine per part_id,
// concatenating every system's occurrence of that part (for a document
// with more than one system, a part's later occurrences continue its
// measure sequence) and taking its rendering metadata from the first
// occurrence.
func buildExportLines(doc *docmodel.Document) []ir.ExportLine {
	var out []ir.ExportLine
	for _, partID := range doc.PartIDs() {
		lines := doc.LinesForPart(partID)
		if len(lines) == 0 {
			continue
		}

		cells, layer, lyrics := mergeLines(lines)
		first := lines[0]

		out = append(out, ir.ExportLine{
			SystemID:      first.SystemID,
			PartID:        partID,
			StaffRole:     first.StaffRole.String(),
			Label:         first.Label,
			KeySignature:  first.KeySignature,
			TimeSignature: first.TimeSignature,
			Clef:          clefForRole(first.StaffRole),
			Lyrics:        lyrics,
			ShowBracket:   len(lines) > 1,
			Measures:      ir.Build(cells, layer, lyrics),
		})
	}
	return out
}

// mergeLines concatenates each line's cells into one sequence, offsetting
// every annotation position by the running cell count so slurs stay
// anchored to the same notes once lines are joined, and joins lyrics with
// a space so DistributeLyrics sees one continuous syllable stream.
func mergeLines(lines []*docmodel.Line) ([]cell.Cell, annotation.Layer, string) {
	var cells []cell.Cell
	var layer annotation.Layer
	var lyrics string

	offset := 0
	for i, l := range lines {
		cells = append(cells, l.Cells...)
		for _, s := range l.Annotations.Slurs {
			layer.Slurs = append(layer.Slurs, annotation.Slur{Start: s.Start + offset, End: s.End + offset})
		}
		offset += len(l.Cells)

		if l.Lyrics != "" {
			if i > 0 && lyrics != "" {
				lyrics += " "
			}
			lyrics += l.Lyrics
		}
	}
	return cells, layer, lyrics
}

func clefForRole(role docmodel.StaffRole) string {
	if role == docmodel.Bass {
		return "bass"
	}
	return "treble"
}

// buildMeasurizedParts reduces exportLines to their aligned, rest-padded
// bar sequence, the shared intermediate both the MusicXML and MIDI
// emitters render from.
func buildMeasurizedParts(lines []ir.ExportLine) []ir.MeasurizedPart {
	byPart := make(map[string][]ir.ExportMeasure, len(lines))
	for _, l := range lines {
		byPart[l.PartID] = l.Measures
	}
	return measurize.Align(byPart)
}

func buildPartMeta(lines []ir.ExportLine) map[string]musicxml.PartMeta {
	meta := make(map[string]musicxml.PartMeta, len(lines))
	for _, l := range lines {
		meta[l.PartID] = musicxml.PartMeta{
			SystemID:      l.SystemID,
			Label:         l.Label,
			KeySignature:  l.KeySignature,
			TimeSignature: l.TimeSignature,
			Clef:          l.Clef,
			ShowBracket:   l.ShowBracket,
		}
	}
	return meta
}

// gmProgram gives each staff role a plausible General MIDI program: an
// acoustic grand piano for melody lines, acoustic bass for bass lines.
// Drum lines ignore Program entirely (IsDrum routes them to channel 9).
func gmProgram(role string) uint8 {
	switch role {
	case "Bass":
		return 32
	default:
		return 0
	}
}

func buildTrackMeta(lines []ir.ExportLine) map[string]midiemit.TrackMeta {
	meta := make(map[string]midiemit.TrackMeta, len(lines))
	for _, l := range lines {
		meta[l.PartID] = midiemit.TrackMeta{
			Label:   l.Label,
			Program: gmProgram(l.StaffRole),
			IsDrum:  l.StaffRole == "Drum",
		}
	}
	return meta
}

// renderMusicXML runs the full parse -> IR -> measurize -> MusicXML
// pipeline over a loaded document.
func renderMusicXML(doc *docmodel.Document) (string, error) {
	exportLines := buildExportLines(doc)
	parts := buildMeasurizedParts(exportLines)
	return musicxml.Emit(parts, buildPartMeta(exportLines))
}
