package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		wantErr error
	}{
		{name: "1x1 minimum", rows: 1, cols: 1},
		{name: "typical 2x3", rows: 2, cols: 3},
		{name: "zero rows rejected", rows: 0, cols: 3, wantErr: ErrInvalidSize},
		{name: "zero cols rejected", rows: 3, cols: 0, wantErr: ErrInvalidSize},
		{name: "negative rejected", rows: -1, cols: 2, wantErr: ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.rows, tt.cols)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rows, g.Rows)
			assert.Equal(t, tt.cols, g.Cols)
			assert.Empty(t, g.Cells)
			assert.Len(t, g.Captions, tt.cols)
			assert.NoError(t, g.Validate())
		})
	}
}

func TestSetCell(t *testing.T) {
	tests := []struct {
		name    string
		row     int
		col     int
		wantErr error
	}{
		{name: "top left", row: 0, col: 0},
		{name: "bottom right", row: 1, col: 2},
		{name: "row out of range", row: 2, col: 0, wantErr: ErrOutOfRange},
		{name: "col out of range", row: 0, col: 3, wantErr: ErrOutOfRange},
		{name: "negative row", row: -1, col: 0, wantErr: ErrOutOfRange},
		{name: "negative col", row: 0, col: -1, wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(2, 3)
			require.NoError(t, err)

			ref := CellRef{BlobID: "blob-1", Name: "panel.png"}
			err = g.SetCell(tt.row, tt.col, ref)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, g.Cells, "state must not change on error")
				return
			}
			require.NoError(t, err)
			got, ok := g.Cell(tt.row, tt.col)
			assert.True(t, ok)
			assert.Equal(t, ref, got)
		})
	}
}

func TestSetCellOverwrite(t *testing.T) {
	g, err := New(1, 1)
	require.NoError(t, err)

	require.NoError(t, g.SetCell(0, 0, CellRef{BlobID: "old"}))
	require.NoError(t, g.SetCell(0, 0, CellRef{BlobID: "new"}))

	got, ok := g.Cell(0, 0)
	assert.True(t, ok)
	assert.Equal(t, "new", got.BlobID)
	assert.Equal(t, 1, g.Occupied())
}

func TestSetCellNilMap(t *testing.T) {
	// A zero-value grid with valid dimensions but no map yet.
	g := &Grid{Rows: 1, Cols: 1, Captions: []string{""}}

	err := g.SetCell(0, 0, CellRef{BlobID: "b"})
	require.NoError(t, err)
	_, ok := g.Cell(0, 0)
	assert.True(t, ok)
}

func TestClearCell(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetCell(1, 1, CellRef{BlobID: "b"}))

	assert.NoError(t, g.ClearCell(1, 1))
	_, ok := g.Cell(1, 1)
	assert.False(t, ok)

	// Clearing an already empty cell succeeds.
	assert.NoError(t, g.ClearCell(1, 1))

	assert.ErrorIs(t, g.ClearCell(2, 0), ErrOutOfRange)
	assert.ErrorIs(t, g.ClearCell(0, 2), ErrOutOfRange)
}

func TestCaptions(t *testing.T) {
	g, err := New(1, 2)
	require.NoError(t, err)

	require.NoError(t, g.SetCaption(0, "left"))
	require.NoError(t, g.SetCaption(1, "right"))

	got, err := g.Caption(0)
	require.NoError(t, err)
	assert.Equal(t, "left", got)

	assert.ErrorIs(t, g.SetCaption(2, "x"), ErrOutOfRange)
	assert.ErrorIs(t, g.SetCaption(-1, "x"), ErrOutOfRange)
	_, err = g.Caption(2)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestClone(t *testing.T) {
	g, err := New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetCell(0, 1, CellRef{BlobID: "a", Name: "a.png"}))
	require.NoError(t, g.SetCaption(1, "B"))

	c := g.Clone()
	assert.Equal(t, g, c)

	// Mutating the clone must not affect the original.
	require.NoError(t, c.SetCell(1, 0, CellRef{BlobID: "x"}))
	require.NoError(t, c.SetCaption(0, "changed"))
	_, ok := g.Cell(1, 0)
	assert.False(t, ok)
	orig, err := g.Caption(0)
	require.NoError(t, err)
	assert.Equal(t, "", orig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		grid    Grid
		wantErr error
	}{
		{
			name: "valid",
			grid: Grid{Rows: 1, Cols: 1, Captions: []string{""}},
		},
		{
			name:    "zero rows",
			grid:    Grid{Rows: 0, Cols: 1, Captions: []string{""}},
			wantErr: ErrInvalidSize,
		},
		{
			name:    "caption count mismatch",
			grid:    Grid{Rows: 1, Cols: 2, Captions: []string{""}},
			wantErr: ErrCaptionCount,
		},
		{
			name: "cell out of bounds",
			grid: Grid{
				Rows:     1,
				Cols:     1,
				Captions: []string{""},
				Cells:    map[Coord]CellRef{{Row: 1, Col: 0}: {BlobID: "b"}},
			},
			wantErr: ErrOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.grid.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
