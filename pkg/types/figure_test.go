package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridfig/gridfig/pkg/grid"
)

func newTestFigure(t *testing.T) *Figure {
	t.Helper()
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.SetCell(0, 0, grid.CellRef{BlobID: "blob-a", Name: "a.png"}))
	require.NoError(t, g.SetCaption(0, "control"))
	return &Figure{
		FigureID:  "fig-1",
		Name:      "western blots",
		Grid:      *g,
		Style:     DefaultStyle(),
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
}

func TestFigureRename(t *testing.T) {
	f := newTestFigure(t)
	before := f.UpdatedAt

	err := f.Rename("figure 2")
	require.NoError(t, err)
	assert.Equal(t, "figure 2", f.Name)
	assert.True(t, f.UpdatedAt.After(before), "UpdatedAt should advance")

	err = f.Rename("")
	assert.ErrorIs(t, err, ErrInvalidName)
	assert.Equal(t, "figure 2", f.Name, "name should not change on error")
}

func TestFigureSnapshotIsDetachedCopy(t *testing.T) {
	f := newTestFigure(t)

	s := f.Snapshot("before review")
	assert.Empty(t, s.SnapshotID, "ID is assigned by the backend")
	assert.Equal(t, f.FigureID, s.FigureID)
	assert.Equal(t, "before review", s.Label)
	assert.Equal(t, f.Grid, s.Grid)
	assert.Equal(t, f.Style, s.Style)

	// Mutating the figure afterwards must not leak into the snapshot.
	require.NoError(t, f.Grid.SetCell(1, 1, grid.CellRef{BlobID: "later"}))
	_, ok := s.Grid.Cell(1, 1)
	assert.False(t, ok)
}

func TestFigureRestore(t *testing.T) {
	f := newTestFigure(t)
	s := f.Snapshot("checkpoint")

	// Diverge from the snapshot.
	require.NoError(t, f.Grid.InsertColumn(0))
	require.NoError(t, f.Grid.SetCell(0, 0, grid.CellRef{BlobID: "new"}))
	f.Style.Gutter = 99
	before := f.UpdatedAt

	err := f.Restore(s)
	require.NoError(t, err)
	assert.Equal(t, s.Grid, f.Grid)
	assert.Equal(t, s.Style, f.Style)
	assert.True(t, f.UpdatedAt.After(before) || f.UpdatedAt.Equal(before))

	// Restore hands the figure its own copy.
	require.NoError(t, f.Grid.SetCell(1, 1, grid.CellRef{BlobID: "post"}))
	_, ok := s.Grid.Cell(1, 1)
	assert.False(t, ok)
}

func TestFigureRestoreRejectsWrongFigure(t *testing.T) {
	f := newTestFigure(t)
	s := f.Snapshot("checkpoint")
	s.FigureID = "someone-else"
	want := f.Grid.Clone()

	err := f.Restore(s)
	assert.ErrorIs(t, err, ErrSnapshotMismatch)
	assert.Equal(t, *want, f.Grid, "figure unchanged on error")
}

func TestFigureRestoreRejectsCorruptState(t *testing.T) {
	f := newTestFigure(t)

	s := f.Snapshot("bad grid")
	s.Grid.Captions = nil
	err := f.Restore(s)
	assert.ErrorIs(t, err, grid.ErrCaptionCount)

	s = f.Snapshot("bad style")
	s.Style.CellWidth = 0
	err = f.Restore(s)
	assert.ErrorIs(t, err, ErrCellSizeInvalid)
}
