// New command creates an empty figure.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridfig/gridfig/pkg/grid"
	"github.com/gridfig/gridfig/pkg/types"
)

var (
	newRows int
	newCols int
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new figure",
	Long: `New creates an empty figure with the given grid dimensions and the
default style from config.yaml. Figure names are unique within the library.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := grid.New(newRows, newCols)
		if err != nil {
			return err
		}

		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		figures, err := backend.GetTable(types.TableFigures)
		if err != nil {
			return err
		}

		fig := &types.Figure{
			Name:  args[0],
			Grid:  *g,
			Style: defaultStyle,
		}
		id, err := figures.Set("", fig)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(fig)
		}
		fmt.Printf("Created figure %q (%dx%d): %s\n", fig.Name, newRows, newCols, id)
		return nil
	},
}

func init() {
	newCmd.Flags().IntVar(&newRows, "rows", 2, "number of grid rows")
	newCmd.Flags().IntVar(&newCols, "cols", 2, "number of grid columns")
}
