package types

import (
	"time"

	"github.com/gridfig/gridfig/pkg/grid"
)

// Snapshot is a complete, serializable copy of a figure's grid and style at
// a point in time, used for history and restore.
type Snapshot struct {
	SnapshotID string    `json:"snapshot_id"`
	FigureID   string    `json:"figure_id"`
	Label      string    `json:"label,omitempty"`
	Grid       grid.Grid `json:"grid"`
	Style      Style     `json:"style"`
	CreatedAt  time.Time `json:"created_at"`
}
