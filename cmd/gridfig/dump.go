// Dump command writes a figure as a portable JSON document.
package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gridfig/gridfig/internal/render"
)

var dumpOutput string

var dumpCmd = &cobra.Command{
	Use:   "dump <figure>",
	Short: "Write a figure's state as JSON",
	Long: `Dump writes the figure document (grid, style, timestamps) as JSON to
stdout, or atomically to a file with -o. The document is accepted back by
load. Blob contents are not included; cells keep their blob references.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _, fig, err := loadFigure(args[0])
		if err != nil {
			return err
		}
		defer backend.Detach()

		doc, err := json.MarshalIndent(fig, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal figure: %w", err)
		}
		doc = append(doc, '\n')

		if dumpOutput == "" {
			fmt.Print(string(doc))
			return nil
		}

		err = render.WriteFileAtomic(dumpOutput, func(w io.Writer) error {
			_, werr := w.Write(doc)
			return werr
		})
		if err != nil {
			return err
		}
		fmt.Printf("Dumped %q to %s\n", fig.Name, dumpOutput)
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "write to file instead of stdout")
}
