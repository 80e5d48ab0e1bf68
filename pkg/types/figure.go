package types

import (
	"time"

	"github.com/gridfig/gridfig/pkg/grid"
)

// Figure is a named, persisted grid layout together with its render
// parameters.
type Figure struct {
	FigureID  string    `json:"figure_id"`
	Name      string    `json:"name"`
	Grid      grid.Grid `json:"grid"`
	Style     Style     `json:"style"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Rename sets the figure name. Returns ErrInvalidName if name is empty.
// Uniqueness across the library is enforced by the backend on Set.
func (f *Figure) Rename(name string) error {
	if name == "" {
		return ErrInvalidName
	}
	f.Name = name
	f.UpdatedAt = time.Now()
	return nil
}

// Snapshot captures the figure's current grid and style as a point-in-time
// copy. The returned snapshot has no ID; the backend assigns one on Set.
func (f *Figure) Snapshot(label string) *Snapshot {
	return &Snapshot{
		FigureID: f.FigureID,
		Label:    label,
		Grid:     *f.Grid.Clone(),
		Style:    f.Style,
	}
}

// Restore replaces the figure's grid and style with the snapshot's state.
// Returns ErrSnapshotMismatch if the snapshot was taken from a different
// figure, or the grid's validation error if the stored state is corrupt.
// On error the figure is unchanged.
func (f *Figure) Restore(s *Snapshot) error {
	if s.FigureID != f.FigureID {
		return ErrSnapshotMismatch
	}
	if err := s.Grid.Validate(); err != nil {
		return err
	}
	if err := s.Style.Validate(); err != nil {
		return err
	}
	f.Grid = *s.Grid.Clone()
	f.Style = s.Style
	f.UpdatedAt = time.Now()
	return nil
}
