// Row commands insert and delete grid rows.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rowCmd = &cobra.Command{
	Use:   "row",
	Short: "Insert or delete grid rows",
}

var rowAddCmd = &cobra.Command{
	Use:   "add <figure> <index>",
	Short: "Insert an empty row at the given index",
	Long: `Row add inserts an empty row before the given index. Cells at or
below the index shift down by one. An index equal to the row count appends.`,
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

		if err := fig.Grid.InsertRow(index); err != nil {
			return err
		}
		if err := saveFigure(figures, fig); err != nil {
			return err
		}

		if flagJSON {
			return printJSON(fig)
		}
		fmt.Printf("Inserted row %d in %q (now %dx%d)\n", index, fig.Name, fig.Grid.Rows, fig.Grid.Cols)
		return nil
	},
}

var rowRmCmd = &cobra.Command{
	Use:   "rm <figure> <index>",
	Short: "Delete the row at the given index",
	Long: `Row rm removes the row and every cell in it. Cells below shift up by
one. Deleting the last remaining row is skipped with a notice.`,
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

		before := fig.Grid.Rows
		if err := fig.Grid.DeleteRow(index); err != nil {
			return err
		}
		if fig.Grid.Rows == before {
			fmt.Printf("Figure %q has only one row; nothing deleted\n", fig.Name)
			return nil
		}
		if err := saveFigure(figures, fig); err != nil {
			return err
		}

		if flagJSON {
			return printJSON(fig)
		}
		fmt.Printf("Deleted row %d from %q (now %dx%d)\n", index, fig.Name, fig.Grid.Rows, fig.Grid.Cols)
		return nil
	},
}

func init() {
	rowCmd.AddCommand(rowAddCmd)
	rowCmd.AddCommand(rowRmCmd)
}
