// Set command places an image in a grid cell.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gridfig/gridfig/pkg/grid"
	"github.com/gridfig/gridfig/pkg/types"
)

var setName string

var setCmd = &cobra.Command{
	Use:   "set <figure> <row> <col> <image-file>",
	Short: "Place an image in a grid cell",
	Long: `Set stores the image file as a blob in the library and references it
from the given cell. Setting an occupied cell replaces its reference; the
previous blob stays in the library until nothing references it.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		row, err := parseIndex("row", args[1])
		if err != nil {
			return err
		}
		col, err := parseIndex("col", args[2])
		if err != nil {
			return err
		}

		imagePath := args[3]
		content, err := os.ReadFile(imagePath)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}

		name := setName
		if name == "" {
			name = filepath.Base(imagePath)
		}

		backend, figures, fig, err := loadFigure(args[0])
		if err != nil {
			return err
		}
		defer backend.Detach()

		blobs, err := backend.GetTable(types.TableBlobs)
		if err != nil {
			return err
		}

		blob := &types.Blob{Name: name, Content: content}
		blobID, err := blobs.Set("", blob)
		if err != nil {
			return err
		}

		if err := fig.Grid.SetCell(row, col, grid.CellRef{BlobID: blobID, Name: name}); err != nil {
			return err
		}
		if err := saveFigure(figures, fig); err != nil {
			return err
		}

		if flagJSON {
			return printJSON(fig)
		}
		fmt.Printf("Set (%d,%d) of %q to %s\n", row, col, fig.Name, name)
		return nil
	},
}

func init() {
	setCmd.Flags().StringVar(&setName, "name", "", "display name for the cell (default: image file name)")
}
