// Style command adjusts a figure's render parameters.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	styleCellWidth     int
	styleCellHeight    int
	styleMargin        int
	styleGutter        int
	styleCaptionHeight int
	styleBackground    string
)

var styleCmd = &cobra.Command{
	Use:   "style <figure>",
	Short: "Adjust a figure's render style",
	Long: `Style updates the given render parameters on a figure. Only flags
that are set change; without flags the current style is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, figures, fig, err := loadFigure(args[0])
		if err != nil {
			return err
		}
		defer backend.Detach()

		changed := false
		s := fig.Style
		if cmd.Flags().Changed("cell-width") {
			s.CellWidth = styleCellWidth
			changed = true
		}
		if cmd.Flags().Changed("cell-height") {
			s.CellHeight = styleCellHeight
			changed = true
		}
		if cmd.Flags().Changed("margin") {
			s.Margin = styleMargin
			changed = true
		}
		if cmd.Flags().Changed("gutter") {
			s.Gutter = styleGutter
			changed = true
		}
		if cmd.Flags().Changed("caption-height") {
			s.CaptionHeight = styleCaptionHeight
			changed = true
		}
		if cmd.Flags().Changed("background") {
			s.Background = styleBackground
			changed = true
		}

		if changed {
			if err := s.Validate(); err != nil {
				return err
			}
			fig.Style = s
			if err := saveFigure(figures, fig); err != nil {
				return err
			}
		}

		if flagJSON {
			return printJSON(fig.Style)
		}
		fmt.Printf("%s style: cell %dx%d, margin %d, gutter %d, caption height %d, background %s\n",
			fig.Name, fig.Style.CellWidth, fig.Style.CellHeight, fig.Style.Margin,
			fig.Style.Gutter, fig.Style.CaptionHeight, fig.Style.Background)
		return nil
	},
}

func init() {
	styleCmd.Flags().IntVar(&styleCellWidth, "cell-width", 0, "cell width in pixels")
	styleCmd.Flags().IntVar(&styleCellHeight, "cell-height", 0, "cell height in pixels")
	styleCmd.Flags().IntVar(&styleMargin, "margin", 0, "outer margin in pixels")
	styleCmd.Flags().IntVar(&styleGutter, "gutter", 0, "spacing between cells in pixels")
	styleCmd.Flags().IntVar(&styleCaptionHeight, "caption-height", 0, "caption strip height in pixels (0 disables captions)")
	styleCmd.Flags().StringVar(&styleBackground, "background", "", "canvas background as #rrggbb")
}
