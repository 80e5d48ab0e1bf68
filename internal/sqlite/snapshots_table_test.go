package sqlite

import (
	"errors"
	"testing"

	"github.com/gridfig/gridfig/pkg/grid"
	"github.com/gridfig/gridfig/pkg/types"
)

func snapshotsTableFor(t *testing.T, b *Backend) types.Table {
	t.Helper()
	tbl, err := b.GetTable(types.TableSnapshots)
	if err != nil {
		t.Fatalf("GetTable(snapshots) failed: %v", err)
	}
	return tbl
}

// persistedFigure stores a fresh figure and returns it with its ID set.
func persistedFigure(t *testing.T, b *Backend, name string) *types.Figure {
	t.Helper()
	figures := figuresTableFor(t, b)
	fig := testFigure(t, name)
	if _, err := figures.Set("", fig); err != nil {
		t.Fatalf("figure Set failed: %v", err)
	}
	return fig
}

func TestSnapshotSaveAndRestore(t *testing.T) {
	b := attachTestBackend(t)
	figures := figuresTableFor(t, b)
	snapshots := snapshotsTableFor(t, b)

	fig := persistedFigure(t, b, "with history")

	snapID, err := snapshots.Set("", fig.Snapshot("v1"))
	if err != nil {
		t.Fatalf("snapshot Set failed: %v", err)
	}

	// Mutate and persist the figure past the snapshot.
	if err := fig.Grid.DeleteColumn(1); err != nil {
		t.Fatalf("DeleteColumn failed: %v", err)
	}
	if _, err := figures.Set(fig.FigureID, fig); err != nil {
		t.Fatalf("figure update failed: %v", err)
	}

	// Restore from the stored snapshot.
	got, err := snapshots.Get(snapID)
	if err != nil {
		t.Fatalf("snapshot Get failed: %v", err)
	}
	snap := got.(*types.Snapshot)
	if snap.Label != "v1" {
		t.Errorf("label = %q, want v1", snap.Label)
	}

	if err := fig.Restore(snap); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if fig.Grid.Cols != 3 {
		t.Errorf("cols = %d, want 3 after restore", fig.Grid.Cols)
	}
	if ref, ok := fig.Grid.Cell(0, 1); !ok || ref.BlobID != "blob-a" {
		t.Errorf("cell (0,1) = %+v, %v; want blob-a restored", ref, ok)
	}
	if err := fig.Grid.Validate(); err != nil {
		t.Errorf("restored grid violates invariants: %v", err)
	}

	if _, err := figures.Set(fig.FigureID, fig); err != nil {
		t.Fatalf("persisting restored figure failed: %v", err)
	}
}

func TestSnapshotSetRequiresFigure(t *testing.T) {
	b := attachTestBackend(t)
	snapshots := snapshotsTableFor(t, b)

	orphan := &types.Snapshot{FigureID: "no-such-figure"}
	g, _ := grid.New(1, 1)
	orphan.Grid = *g
	orphan.Style = types.DefaultStyle()

	if _, err := snapshots.Set("", orphan); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing figure, got %v", err)
	}

	noFigure := &types.Snapshot{}
	if _, err := snapshots.Set("", noFigure); !errors.Is(err, types.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID for empty figure ID, got %v", err)
	}

	if _, err := snapshots.Set("", "nope"); !errors.Is(err, types.ErrInvalidData) {
		t.Errorf("expected ErrInvalidData, got %v", err)
	}
}

func TestSnapshotSetValidatesState(t *testing.T) {
	b := attachTestBackend(t)
	snapshots := snapshotsTableFor(t, b)
	fig := persistedFigure(t, b, "validated")

	snap := fig.Snapshot("bad")
	snap.Grid.Rows = 0
	if _, err := snapshots.Set("", snap); !errors.Is(err, grid.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestSnapshotDelete(t *testing.T) {
	b := attachTestBackend(t)
	snapshots := snapshotsTableFor(t, b)
	fig := persistedFigure(t, b, "pruned")

	id, err := snapshots.Set("", fig.Snapshot(""))
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if err := snapshots.Delete(id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := snapshots.Delete(id); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSnapshotFetchByFigure(t *testing.T) {
	b := attachTestBackend(t)
	snapshots := snapshotsTableFor(t, b)

	first := persistedFigure(t, b, "first")
	second := persistedFigure(t, b, "second")

	for i := 0; i < 3; i++ {
		if _, err := snapshots.Set("", first.Snapshot("")); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}
	if _, err := snapshots.Set("", second.Snapshot("")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	firsts, err := snapshots.Fetch(types.Filter{"figure_id": first.FigureID})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(firsts) != 3 {
		t.Errorf("Fetch returned %d snapshots, want 3", len(firsts))
	}
	for _, s := range firsts {
		if s.(*types.Snapshot).FigureID != first.FigureID {
			t.Errorf("snapshot for wrong figure: %+v", s)
		}
	}

	all, err := snapshots.Fetch(nil)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("Fetch returned %d snapshots, want 4", len(all))
	}

	if _, err := snapshots.Fetch(types.Filter{"figure_id": 7}); !errors.Is(err, types.ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter, got %v", err)
	}
}
