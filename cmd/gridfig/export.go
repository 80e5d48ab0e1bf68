// Export command renders a figure to a PNG file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridfig/gridfig/internal/render"
	"github.com/gridfig/gridfig/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export <figure> <output.png>",
	Short: "Render a figure and write it as PNG",
	Long: `Export rasterizes the figure under its style: referenced images are
scaled into their cells, empty cells get a placeholder fill, and captions are
drawn below the bottom row. The output file is written atomically.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, _, fig, err := loadFigure(args[0])
		if err != nil {
			return err
		}
		defer backend.Detach()

		blobs, err := backend.GetTable(types.TableBlobs)
		if err != nil {
			return err
		}

		renderer := render.New(blobs, logger)
		img, err := renderer.Render(cmd.Context(), &fig.Grid, fig.Style)
		if err != nil {
			return fmt.Errorf("render %q: %w", fig.Name, err)
		}

		if err := render.ExportPNG(args[1], img); err != nil {
			return err
		}

		b := img.Bounds()
		fmt.Printf("Exported %q to %s (%dx%d px)\n", fig.Name, args[1], b.Dx(), b.Dy())
		return nil
	},
}
