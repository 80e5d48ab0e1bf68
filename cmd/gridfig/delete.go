// Delete command removes a figure from the library.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <figure>",
	Short: "Delete a figure",
	Long: `Delete removes the figure, its snapshots, and any blobs no other
figure or snapshot references.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, figures, fig, err := loadFigure(args[0])
		if err != nil {
			return err
		}
		defer backend.Detach()

		if err := figures.Delete(fig.FigureID); err != nil {
			return err
		}

		fmt.Printf("Deleted figure %q\n", fig.Name)
		return nil
	},
}
