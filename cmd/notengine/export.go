package main

import (
	"fmt"
	"os"

	"github.com/leafo/notengine/internal/docmodel"
	"github.com/leafo/notengine/internal/lilypond"
	"github.com/leafo/notengine/internal/midiemit"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	var (
		format   string
		tpq      uint16
		tempo    float64
		language string
		full     bool
	)

	cmd := &cobra.Command{
		Use:   "export <project-file> <output-file>",
		Short: "Render a project file to MusicXML, Standard MIDI, or LilyPond source",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			switch format {
			case "musicxml":
				return exportMusicXML(doc, args[1])
			case "midi":
				return exportMIDI(doc, args[1], tpq, tempo)
			case "lilypond":
				return exportLilyPond(doc, args[1], language, full)
			default:
				return fmt.Errorf("unknown export format %q (want musicxml, midi, or lilypond)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "musicxml", "output format: musicxml, midi, or lilypond")
	cmd.Flags().Uint16Var(&tpq, "tpq", midiemit.DefaultTPQ, "MIDI ticks per quarter note")
	cmd.Flags().Float64Var(&tempo, "tempo", midiemit.DefaultTempo, "MIDI tempo in beats per minute")
	cmd.Flags().StringVar(&language, "language", "nederlands", "LilyPond pitch-name language: nederlands, english, deutsch, or italiano")
	cmd.Flags().BoolVar(&full, "full-template", false, "use LilyPond's Scheme-embedding full document template instead of the safe one")
	return cmd
}

func exportMusicXML(doc *docmodel.Document, outputPath string) error {
	xmlOut, err := renderMusicXML(doc)
	if err != nil {
		return fmt.Errorf("rendering MusicXML: %w", err)
	}
	return os.WriteFile(outputPath, []byte(xmlOut), 0o644)
}

func exportMIDI(doc *docmodel.Document, outputPath string, tpq uint16, tempo float64) error {
	exportLines := buildExportLines(doc)
	parts := buildMeasurizedParts(exportLines)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := midiemit.WriteTo(parts, buildTrackMeta(exportLines), tpq, tempo, f); err != nil {
		return fmt.Errorf("rendering MIDI: %w", err)
	}
	return nil
}

func exportLilyPond(doc *docmodel.Document, outputPath string, language string, full bool) error {
	xmlOut, err := renderMusicXML(doc)
	if err != nil {
		return fmt.Errorf("rendering MusicXML: %w", err)
	}

	settings := lilypond.Settings{
		Language: parseLilyLanguage(language),
		Title:    doc.Title,
		Composer: doc.Composer,
	}
	if full {
		settings.TemplateFamily = lilypond.Full
	}

	lyOut, err := lilypond.Convert(xmlOut, settings)
	if err != nil {
		return fmt.Errorf("converting to LilyPond: %w", err)
	}
	return os.WriteFile(outputPath, []byte(lyOut), 0o644)
}

func parseLilyLanguage(s string) lilypond.PitchLanguage {
	switch s {
	case "english":
		return lilypond.English
	case "deutsch":
		return lilypond.Deutsch
	case "italiano":
		return lilypond.Italiano
	default:
		return lilypond.Nederlands
	}
}
