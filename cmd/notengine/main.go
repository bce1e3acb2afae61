// Command notengine loads a text notation project, reduces it through the
// parse -> IR -> measurize pipeline, and exports the result as MusicXML,
// Standard MIDI, or LilyPond source.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "notengine",
		Short: "notengine reads text notation projects and exports engraving formats",
	}

	root.AddCommand(parseCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(bundleCmd())

	return root
}
