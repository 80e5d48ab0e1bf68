// Clear command empties a grid cell.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear <figure> <row> <col>",
	Short: "Remove the image reference from a grid cell",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		row, err := parseIndex("row", args[1])
		if err != nil {
			return err
		}
		col, err := parseIndex("col", args[2])
		if err != nil {
			return err
		}

		backend, figures, fig, err := loadFigure(args[0])
		if err != nil {
			return err
		}
		defer backend.Detach()

		if err := fig.Grid.ClearCell(row, col); err != nil {
			return err
		}
		if err := saveFigure(figures, fig); err != nil {
			return err
		}

		if flagJSON {
			return printJSON(fig)
		}
		fmt.Printf("Cleared (%d,%d) of %q\n", row, col, fig.Name)
		return nil
	},
}
