// List command enumerates figures in the library.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridfig/gridfig/pkg/types"
)

var (
	listLimit  int
	listOffset int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List figures in the library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		figures, err := backend.GetTable(types.TableFigures)
		if err != nil {
			return err
		}

		filter := types.Filter{}
		if cmd.Flags().Changed("limit") {
			filter["limit"] = listLimit
		}
		if cmd.Flags().Changed("offset") {
			filter["offset"] = listOffset
		}

		results, err := figures.Fetch(filter)
		if err != nil {
			return err
		}

		if flagJSON {
			return printJSON(results)
		}

		if len(results) == 0 {
			fmt.Println("No figures")
			return nil
		}
		for _, r := range results {
			fig, ok := r.(*types.Figure)
			if !ok {
				continue
			}
			fmt.Printf("%-24s %dx%d  %d cells  updated %s\n",
				fig.Name, fig.Grid.Rows, fig.Grid.Cols, fig.Grid.Occupied(),
				fig.UpdatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of figures to list")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "number of figures to skip")
}
