// Col commands insert and delete grid columns.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var colCmd = &cobra.Command{
	Use:   "col",
	Short: "Insert or delete grid columns",
}

var colAddCmd = &cobra.Command{
	Use:   "add <figure> <index>",
	Short: "Insert an empty column at the given index",
	Long: `Col add inserts an empty column before the given index and splices an
empty caption in at the same position. Cells at or right of the index shift
right by one. An index equal to the column count appends.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex("index", args[1])
		if err != nil {
			return err
		}

		backend, figures, fig, err := loadFigure(args[0])
		if err != nil {
			return err
		}
		defer backend.Detach()

		if err := fig.Grid.InsertColumn(index); err != nil {
			return err
		}
		if err := saveFigure(figures, fig); err != nil {
			return err
		}

		if flagJSON {
			return printJSON(fig)
		}
		fmt.Printf("Inserted column %d in %q (now %dx%d)\n", index, fig.Name, fig.Grid.Rows, fig.Grid.Cols)
		return nil
	},
}

var colRmCmd = &cobra.Command{
	Use:   "rm <figure> <index>",
	Short: "Delete the column at the given index",
	Long: `Col rm removes the column, its cells, and its caption. Cells to the
right shift left by one. Deleting the last remaining column is skipped with a
notice.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex("index", args[1])
		if err != nil {
			return err
		}

		backend, figures, fig, err := loadFigure(args[0])
		if err != nil {
			return err
		}
		defer backend.Detach()

		before := fig.Grid.Cols
		if err := fig.Grid.DeleteColumn(index); err != nil {
			return err
		}
		if fig.Grid.Cols == before {
			fmt.Printf("Figure %q has only one column; nothing deleted\n", fig.Name)
			return nil
		}
		if err := saveFigure(figures, fig); err != nil {
			return err
		}

		if flagJSON {
			return printJSON(fig)
		}
		fmt.Printf("Deleted column %d from %q (now %dx%d)\n", index, fig.Name, fig.Grid.Rows, fig.Grid.Cols)
		return nil
	},
}

func init() {
	colCmd.AddCommand(colAddCmd)
	colCmd.AddCommand(colRmCmd)
}
