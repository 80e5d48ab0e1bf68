// Package render rasterizes a figure grid into a PNG artifact: cells are
// drawn scale-to-fit inside a fixed geometry computed from the figure's
// style, with a caption strip below the grid.
package render

import (
	"image"

	"github.com/gridfig/gridfig/pkg/types"
)

// Layout maps grid coordinates to pixel rectangles for a given style.
type Layout struct {
	rows  int
	cols  int
	style types.Style
}

// NewLayout computes the geometry for a rows x cols grid under style.
func NewLayout(rows, cols int, style types.Style) Layout {
	return Layout{rows: rows, cols: cols, style: style}
}

// Width returns the canvas width in pixels.
func (l Layout) Width() int {
	return 2*l.style.Margin + l.cols*l.style.CellWidth + (l.cols-1)*l.style.Gutter
}

// Height returns the canvas height in pixels, caption strip included.
func (l Layout) Height() int {
	h := 2*l.style.Margin + l.rows*l.style.CellHeight + (l.rows-1)*l.style.Gutter
	if l.style.CaptionHeight > 0 {
		h += l.style.Gutter + l.style.CaptionHeight
	}
	return h
}

// Canvas returns the full canvas rectangle.
func (l Layout) Canvas() image.Rectangle {
	return image.Rect(0, 0, l.Width(), l.Height())
}

// CellRect returns the pixel rectangle for the cell at (row, col).
func (l Layout) CellRect(row, col int) image.Rectangle {
	x0 := l.style.Margin + col*(l.style.CellWidth+l.style.Gutter)
	y0 := l.style.Margin + row*(l.style.CellHeight+l.style.Gutter)
	return image.Rect(x0, y0, x0+l.style.CellWidth, y0+l.style.CellHeight)
}

// CaptionRect returns the pixel rectangle for the caption of col, directly
// below the last row. The zero rectangle is returned when the style has no
// caption strip.
func (l Layout) CaptionRect(col int) image.Rectangle {
	if l.style.CaptionHeight <= 0 {
		return image.Rectangle{}
	}
	x0 := l.style.Margin + col*(l.style.CellWidth+l.style.Gutter)
	// One gutter below the bottom row of cells.
	y0 := l.style.Margin + l.rows*(l.style.CellHeight+l.style.Gutter)
	return image.Rect(x0, y0, x0+l.style.CellWidth, y0+l.style.CaptionHeight)
}

// fitRect centers a w x h image inside bounds, scaled down (or up) to the
// largest size that preserves the aspect ratio.
func fitRect(bounds image.Rectangle, w, h int) image.Rectangle {
	if w <= 0 || h <= 0 {
		return bounds
	}
	bw, bh := bounds.Dx(), bounds.Dy()

	// Compare aspect ratios without division: w/h vs bw/bh.
	var fw, fh int
	if w*bh >= h*bw {
		fw = bw
		fh = h * bw / w
	} else {
		fh = bh
		fw = w * bh / h
	}
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}

	x0 := bounds.Min.X + (bw-fw)/2
	y0 := bounds.Min.Y + (bh-fh)/2
	return image.Rect(x0, y0, x0+fw, y0+fh)
}
