// Structural grid operations: row/column insertion and deletion with index
// remapping, and whole-grid resize. Insertion and deletion relocate or drop
// mapping entries only; they never fabricate or alter a CellRef. Deleting
// the last remaining row or column is a silent no-op.
package grid

// InsertRow inserts an empty row before atIndex. atIndex may equal Rows,
// which appends a row at the bottom. Every entry at row >= atIndex moves
// down by one; captions are unaffected.
func (g *Grid) InsertRow(atIndex int) error {
	if atIndex < 0 || atIndex > g.Rows {
		return ErrOutOfRange
	}
	cells := make(map[Coord]CellRef, len(g.Cells))
	for c, ref := range g.Cells {
		if c.Row >= atIndex {
			c.Row++
		}
		cells[c] = ref
	}
	g.Cells = cells
	g.Rows++
	return nil
}

// DeleteRow removes the row at atIndex. Entries in that row are dropped and
// every entry below it moves up by one. Deleting when only one row remains
// is a no-op.
func (g *Grid) DeleteRow(atIndex int) error {
	if atIndex < 0 || atIndex >= g.Rows {
		return ErrOutOfRange
	}
	if g.Rows <= 1 {
		return nil
	}
	cells := make(map[Coord]CellRef, len(g.Cells))
	for c, ref := range g.Cells {
		switch {
		case c.Row == atIndex:
			continue
		case c.Row > atIndex:
			c.Row--
		}
		cells[c] = ref
	}
	g.Cells = cells
	g.Rows--
	return nil
}

// InsertColumn inserts an empty column before atIndex. atIndex may equal
// Cols, which appends a column on the right. Every entry at col >= atIndex
// moves right by one, and an empty caption is spliced in at atIndex.
func (g *Grid) InsertColumn(atIndex int) error {
	if atIndex < 0 || atIndex > g.Cols {
		return ErrOutOfRange
	}
	cells := make(map[Coord]CellRef, len(g.Cells))
	for c, ref := range g.Cells {
		if c.Col >= atIndex {
			c.Col++
		}
		cells[c] = ref
	}
	captions := make([]string, 0, len(g.Captions)+1)
	captions = append(captions, g.Captions[:atIndex]...)
	captions = append(captions, "")
	captions = append(captions, g.Captions[atIndex:]...)

	g.Cells = cells
	g.Captions = captions
	g.Cols++
	return nil
}

// DeleteColumn removes the column at atIndex, its caption included. Entries
// in that column are dropped and every entry to the right moves left by one.
// Deleting when only one column remains is a no-op.
func (g *Grid) DeleteColumn(atIndex int) error {
	if atIndex < 0 || atIndex >= g.Cols {
		return ErrOutOfRange
	}
	if g.Cols <= 1 {
		return nil
	}
	cells := make(map[Coord]CellRef, len(g.Cells))
	for c, ref := range g.Cells {
		switch {
		case c.Col == atIndex:
			continue
		case c.Col > atIndex:
			c.Col--
		}
		cells[c] = ref
	}
	captions := make([]string, 0, len(g.Captions)-1)
	captions = append(captions, g.Captions[:atIndex]...)
	captions = append(captions, g.Captions[atIndex+1:]...)

	g.Cells = cells
	g.Captions = captions
	g.Cols--
	return nil
}

// Resize regenerates the layout at the new dimensions. All cell contents
// and captions are discarded; this is a full reset, not a remap. Use
// InsertRow/InsertColumn and their delete counterparts to change dimensions
// while preserving content.
func (g *Grid) Resize(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrInvalidSize
	}
	g.Rows = rows
	g.Cols = cols
	g.Cells = make(map[Coord]CellRef)
	g.Captions = make([]string, cols)
	return nil
}
