// Resize command replaces a figure's grid with an empty one.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resizeCmd = &cobra.Command{
	Use:   "resize <figure> <rows> <cols>",
	Short: "Reset a figure's grid to new dimensions",
	Long: `Resize discards all cell references and captions and replaces the
grid with an empty one of the given dimensions. Use row/col add and rm to
change dimensions while keeping content.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rows, err := parseIndex("rows", args[1])
		if err != nil {
			return err
		}
		cols, err := parseIndex("cols", args[2])
		if err != nil {
			return err
		}

		backend, figures, fig, err := loadFigure(args[0])
		if err != nil {
			return err
		}
		defer backend.Detach()

		if err := fig.Grid.Resize(rows, cols); err != nil {
			return err
		}
		if err := saveFigure(figures, fig); err != nil {
			return err
		}

		if flagJSON {
			return printJSON(fig)
		}
		fmt.Printf("Resized %q to %dx%d (grid cleared)\n", fig.Name, rows, cols)
		return nil
	},
}
