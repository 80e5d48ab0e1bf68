package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/sync/errgroup"

	"github.com/gridfig/gridfig/pkg/grid"
	"github.com/gridfig/gridfig/pkg/types"
)

// placeholderGray fills cells that hold no image.
var placeholderGray = color.RGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff}

// captionInk is the caption text color.
var captionInk = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

// BlobSource supplies blob records by ID. The backend's blobs table
// satisfies it.
type BlobSource interface {
	Get(id string) (any, error)
}

// Renderer rasterizes grids against a blob source.
type Renderer struct {
	blobs BlobSource
	log   *zap.Logger
}

// New creates a Renderer. A nil logger disables logging.
func New(blobs BlobSource, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{blobs: blobs, log: logger}
}

// Render draws the grid under the given style and returns the canvas.
// Referenced blobs are fetched and decoded concurrently; a missing or
// undecodable blob fails the render with the offending coordinate in the
// error.
func (r *Renderer) Render(ctx context.Context, g *grid.Grid, style types.Style) (*image.RGBA, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := style.Validate(); err != nil {
		return nil, err
	}
	bg, err := parseHexColor(style.Background)
	if err != nil {
		return nil, err
	}

	images, err := r.fetchCellImages(ctx, g)
	if err != nil {
		return nil, err
	}

	layout := NewLayout(g.Rows, g.Cols, style)
	canvas := image.NewRGBA(layout.Canvas())
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			cell := layout.CellRect(row, col)
			img, ok := images[grid.Coord{Row: row, Col: col}]
			if !ok {
				draw.Draw(canvas, cell, image.NewUniform(placeholderGray), image.Point{}, draw.Src)
				continue
			}
			b := img.Bounds()
			dst := fitRect(cell, b.Dx(), b.Dy())
			xdraw.ApproxBiLinear.Scale(canvas, dst, img, b, draw.Over, nil)
		}
	}

	if style.CaptionHeight > 0 {
		for col := 0; col < g.Cols; col++ {
			caption, err := g.Caption(col)
			if err != nil {
				return nil, err
			}
			if caption == "" {
				continue
			}
			drawCaption(canvas, layout.CaptionRect(col), caption)
		}
	}

	r.log.Debug("grid rendered",
		zap.Int("rows", g.Rows),
		zap.Int("cols", g.Cols),
		zap.Int("cells", g.Occupied()),
		zap.Int("width", layout.Width()),
		zap.Int("height", layout.Height()))

	return canvas, nil
}

// fetchCellImages loads and decodes every referenced blob concurrently.
func (r *Renderer) fetchCellImages(ctx context.Context, g *grid.Grid) (map[grid.Coord]image.Image, error) {
	images := make(map[grid.Coord]image.Image, len(g.Cells))
	var mu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	for c, ref := range g.Cells {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			raw, err := r.blobs.Get(ref.BlobID)
			if err != nil {
				return fmt.Errorf("cell (%d,%d): blob %s: %w", c.Row, c.Col, ref.BlobID, err)
			}
			blob, ok := raw.(*types.Blob)
			if !ok {
				return fmt.Errorf("cell (%d,%d): blob %s: %w", c.Row, c.Col, ref.BlobID, types.ErrInvalidData)
			}
			img, _, err := image.Decode(bytes.NewReader(blob.Content))
			if err != nil {
				return fmt.Errorf("cell (%d,%d): decoding %s: %w", c.Row, c.Col, ref.BlobID, err)
			}
			mu.Lock()
			images[c] = img
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return images, nil
}

// drawCaption centers text horizontally inside rect and vertically on the
// face baseline. Text wider than the rect is drawn as-is and clipped by
// the canvas bounds only.
func drawCaption(dst *image.RGBA, rect image.Rectangle, text string) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(captionInk),
		Face: face,
	}
	width := d.MeasureString(text).Ceil()
	x := rect.Min.X + (rect.Dx()-width)/2
	y := rect.Min.Y + (rect.Dy()+face.Ascent)/2
	d.Dot = fixed.P(x, y)
	d.DrawString(text)
}

// parseHexColor converts a #rrggbb string to a color.
func parseHexColor(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, types.ErrBackgroundInvalid
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexVal(s[1+2*i])
		lo, ok2 := hexVal(s[2+2*i])
		if !ok1 || !ok2 {
			return color.RGBA{}, types.ErrBackgroundInvalid
		}
		rgb[i] = hi<<4 | lo
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
}

func hexVal(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
