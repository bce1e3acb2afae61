package main

import (
	"fmt"
	"os"

	"github.com/leafo/notengine/internal/docmodel"
	"github.com/spf13/cobra"
)

func bundleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle <project-file> <output.zip>",
		Short: "Package a project's JSON snapshot and MusicXML export into one zip archive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}
			return writeBundle(doc, args[1])
		},
	}
	return cmd
}

func writeBundle(doc *docmodel.Document, outputPath string) error {
	xmlOut, err := renderMusicXML(doc)
	if err != nil {
		return fmt.Errorf("rendering MusicXML: %w", err)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := doc.SaveBundle(f, []byte(xmlOut)); err != nil {
		return fmt.Errorf("writing bundle: %w", err)
	}
	return nil
}
