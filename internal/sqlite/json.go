// JSON helpers shared by the table accessors: the snapshot state envelope
// and blob-reference extraction used by orphan cleanup.
package sqlite

import (
	"encoding/json"

	"github.com/gridfig/gridfig/pkg/grid"
	"github.com/gridfig/gridfig/pkg/types"
)

// snapshotState is the JSON envelope stored in the snapshots.state column.
type snapshotState struct {
	Grid  grid.Grid   `json:"grid"`
	Style types.Style `json:"style"`
}

// blobIDsFromGridJSON returns the blob IDs referenced by a serialized grid.
func blobIDsFromGridJSON(raw string) ([]string, error) {
	var g grid.Grid
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		return nil, err
	}
	return blobIDsFromGrid(&g), nil
}

// blobIDsFromStateJSON returns the blob IDs referenced by a serialized
// snapshot state.
func blobIDsFromStateJSON(raw string) ([]string, error) {
	var st snapshotState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, err
	}
	return blobIDsFromGrid(&st.Grid), nil
}

func blobIDsFromGrid(g *grid.Grid) []string {
	ids := make([]string, 0, len(g.Cells))
	for _, ref := range g.Cells {
		if ref.BlobID != "" {
			ids = append(ids, ref.BlobID)
		}
	}
	return ids
}
