// Package grid implements the figure grid model: dimensions, a sparse
// mapping from cell coordinate to an image reference, and per-column
// captions. The model is a plain value holder mutated by synchronous
// operations; image bytes live in the blob store and are never touched here.
package grid

import "errors"

// Grid model errors.
var (
	ErrOutOfRange    = errors.New("coordinate or index out of range")
	ErrInvalidSize   = errors.New("grid must be at least 1x1")
	ErrCaptionCount  = errors.New("caption count must equal column count")
	ErrDuplicateCell = errors.New("duplicate cell coordinate")
)

// Coord addresses one cell. Rows and columns are zero-based.
type Coord struct {
	Row int
	Col int
}

// CellRef is an opaque reference to image content held by the blob store,
// plus a display name. Grid operations only relocate or drop it; they never
// inspect or alter the referenced content.
type CellRef struct {
	BlobID string
	Name   string
}

// Grid holds a figure layout. Cells is sparse: an absent entry is an empty
// cell. len(Captions) always equals Cols.
type Grid struct {
	Rows     int
	Cols     int
	Cells    map[Coord]CellRef
	Captions []string
}

// New creates an empty grid with the given dimensions.
// Returns ErrInvalidSize unless rows and cols are both at least 1.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidSize
	}
	return &Grid{
		Rows:     rows,
		Cols:     cols,
		Cells:    make(map[Coord]CellRef),
		Captions: make([]string, cols),
	}, nil
}

// Cell returns the reference at (row, col) and whether the cell is occupied.
// Out-of-range coordinates report an empty cell.
func (g *Grid) Cell(row, col int) (CellRef, bool) {
	ref, ok := g.Cells[Coord{Row: row, Col: col}]
	return ref, ok
}

// SetCell assigns ref to the cell at (row, col).
// Returns ErrOutOfRange if the coordinate is outside the current bounds.
func (g *Grid) SetCell(row, col int, ref CellRef) error {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return ErrOutOfRange
	}
	if g.Cells == nil {
		g.Cells = make(map[Coord]CellRef)
	}
	g.Cells[Coord{Row: row, Col: col}] = ref
	return nil
}

// ClearCell removes the mapping entry at (row, col). Clearing an already
// empty cell succeeds. Returns ErrOutOfRange for coordinates outside bounds.
func (g *Grid) ClearCell(row, col int) error {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return ErrOutOfRange
	}
	delete(g.Cells, Coord{Row: row, Col: col})
	return nil
}

// SetCaption sets the caption for the given column.
// Returns ErrOutOfRange if col is outside the current bounds.
func (g *Grid) SetCaption(col int, text string) error {
	if col < 0 || col >= g.Cols {
		return ErrOutOfRange
	}
	g.Captions[col] = text
	return nil
}

// Caption returns the caption for the given column.
func (g *Grid) Caption(col int) (string, error) {
	if col < 0 || col >= g.Cols {
		return "", ErrOutOfRange
	}
	return g.Captions[col], nil
}

// Occupied returns the number of cells holding a reference.
func (g *Grid) Occupied() int {
	return len(g.Cells)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make(map[Coord]CellRef, len(g.Cells))
	for k, v := range g.Cells {
		cells[k] = v
	}
	captions := make([]string, len(g.Captions))
	copy(captions, g.Captions)
	return &Grid{
		Rows:     g.Rows,
		Cols:     g.Cols,
		Cells:    cells,
		Captions: captions,
	}
}

// Validate checks the structural invariants: dimensions at least 1x1, one
// caption per column, and every cell coordinate within bounds. A grid
// restored from storage must pass Validate before use.
func (g *Grid) Validate() error {
	if g.Rows < 1 || g.Cols < 1 {
		return ErrInvalidSize
	}
	if len(g.Captions) != g.Cols {
		return ErrCaptionCount
	}
	for c := range g.Cells {
		if c.Row < 0 || c.Row >= g.Rows || c.Col < 0 || c.Col >= g.Cols {
			return ErrOutOfRange
		}
	}
	return nil
}
