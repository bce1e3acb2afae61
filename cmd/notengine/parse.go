package main

import (
	"fmt"

	"github.com/leafo/notengine/internal/docmodel"
	"github.com/spf13/cobra"
)

func parseCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "parse <project-file>",
		Short: "Parse a project file and print its document structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				data, err := doc.ToJSON()
				if err != nil {
					return fmt.Errorf("encoding document: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			printDocumentSummary(cmd, doc)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the document as JSON")
	return cmd
}

func printDocumentSummary(cmd *cobra.Command, doc *docmodel.Document) {
	out := cmd.OutOrStdout()
	if doc.Title != "" {
		fmt.Fprintf(out, "Title: %s\n", doc.Title)
	}
	if doc.Composer != "" {
		fmt.Fprintf(out, "Composer: %s\n", doc.Composer)
	}
	fmt.Fprintf(out, "Lines: %d\n", len(doc.Lines))
	fmt.Fprintf(out, "Parts: %d\n\n", len(doc.PartIDs()))

	for i, l := range doc.Lines {
		fmt.Fprintf(out, "[%d] system=%d part=%s role=%s system=%s\n", i, l.SystemID, l.PartID, l.StaffRole, l.System)
		if l.Label != "" {
			fmt.Fprintf(out, "    label: %s\n", l.Label)
		}
		fmt.Fprintf(out, "    text: %s\n", l.Text())
		if l.Lyrics != "" {
			fmt.Fprintf(out, "    lyrics: %s\n", l.Lyrics)
		}
	}
}
