// Caption command sets a column caption.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var captionCmd = &cobra.Command{
	Use:   "caption <figure> <col> <text>",
	Short: "Set a column caption",
	Long: `Caption sets the text drawn under the given column. An empty text
clears the caption.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		col, err := parseIndex("col", args[1])
		if err != nil {
			return err
		}

		backend, figures, fig, err := loadFigure(args[0])
		if err != nil {
			return err
		}
		defer backend.Detach()

		if err := fig.Grid.SetCaption(col, args[2]); err != nil {
			return err
		}
		if err := saveFigure(figures, fig); err != nil {
			return err
		}

		if flagJSON {
			return printJSON(fig)
		}
		if args[2] == "" {
			fmt.Printf("Cleared caption %d of %q\n", col, fig.Name)
		} else {
			fmt.Printf("Set caption %d of %q to %q\n", col, fig.Name, args[2])
		}
		return nil
	},
}
