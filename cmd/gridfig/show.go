// Show command prints a figure's layout.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <figure>",
	Short: "Show a figure's grid layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _, fig, err := loadFigure(args[0])
		if err != nil {
			return err
		}
		defer backend.Detach()

		if flagJSON {
			return printJSON(fig)
		}

		fmt.Printf("%s (%dx%d)\n", fig.Name, fig.Grid.Rows, fig.Grid.Cols)
		fmt.Printf("  id: %s\n", fig.FigureID)
		for row := 0; row < fig.Grid.Rows; row++ {
			for col := 0; col < fig.Grid.Cols; col++ {
				ref, ok := fig.Grid.Cell(row, col)
				if !ok {
					continue
				}
				label := ref.Name
				if label == "" {
					label = ref.BlobID
				}
				fmt.Printf("  (%d,%d) %s\n", row, col, label)
			}
		}
		for col := 0; col < fig.Grid.Cols; col++ {
			caption, err := fig.Grid.Caption(col)
			if err != nil {
				return err
			}
			if caption != "" {
				fmt.Printf("  caption[%d] %q\n", col, caption)
			}
		}
		return nil
	},
}
