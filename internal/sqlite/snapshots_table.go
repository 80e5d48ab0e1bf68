// Snapshots table accessor. A snapshot row carries the full grid and style
// of its figure at save time in a single JSON state column.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gridfig/gridfig/pkg/types"
)

// Compile-time interface check: snapshotsTable must implement Table.
var _ types.Table = (*snapshotsTable)(nil)

type snapshotsTable struct {
	backend *Backend
}

// Get retrieves a snapshot by ID.
func (st *snapshotsTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	db, err := st.backend.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		"SELECT snapshot_id, figure_id, label, state, created_at FROM snapshots WHERE snapshot_id = ?",
		id,
	)
	snap, err := hydrateSnapshot(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting snapshot %s: %w", id, err)
	}
	return snap, nil
}

// Set persists a snapshot. If id is empty, generates a UUID v7. The
// snapshot's figure must exist; its grid and style must validate.
// Returns the actual ID used.
func (st *snapshotsTable) Set(id string, data any) (string, error) {
	snap, ok := data.(*types.Snapshot)
	if !ok {
		return "", types.ErrInvalidData
	}
	if snap.FigureID == "" {
		return "", types.ErrInvalidID
	}
	if err := snap.Grid.Validate(); err != nil {
		return "", err
	}
	if err := snap.Style.Validate(); err != nil {
		return "", err
	}
	db, err := st.backend.handle()
	if err != nil {
		return "", err
	}

	var figureExists bool
	err = db.QueryRow("SELECT 1 FROM figures WHERE figure_id = ?", snap.FigureID).Scan(&figureExists)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", types.ErrNotFound
		}
		return "", fmt.Errorf("checking snapshot figure: %w", err)
	}

	if id == "" {
		snap.SnapshotID = generateUUID()
		snap.CreatedAt = time.Now().UTC()
		id = snap.SnapshotID
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().UTC()
	}

	stateJSON, err := json.Marshal(&snapshotState{Grid: snap.Grid, Style: snap.Style})
	if err != nil {
		return "", fmt.Errorf("marshaling snapshot state: %w", err)
	}

	var exists bool
	err = db.QueryRow("SELECT 1 FROM snapshots WHERE snapshot_id = ?", id).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("checking snapshot existence: %w", err)
	}

	if exists {
		_, err = db.Exec(
			"UPDATE snapshots SET figure_id = ?, label = ?, state = ? WHERE snapshot_id = ?",
			snap.FigureID, snap.Label, string(stateJSON), id,
		)
	} else {
		_, err = db.Exec(
			"INSERT INTO snapshots (snapshot_id, figure_id, label, state, created_at) VALUES (?, ?, ?, ?, ?)",
			id, snap.FigureID, snap.Label, string(stateJSON),
			snap.CreatedAt.Format(time.RFC3339),
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting snapshot: %w", err)
	}

	st.backend.log.Debug("snapshot persisted",
		zap.String("snapshot_id", id),
		zap.String("figure_id", snap.FigureID))

	return id, nil
}

// Delete removes a snapshot by ID.
func (st *snapshotsTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	db, err := st.backend.handle()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM snapshots WHERE snapshot_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch queries snapshots matching the filter, ordered by created_at DESC.
// Supported filter keys: "figure_id" (string), "limit" (int), "offset" (int).
func (st *snapshotsTable) Fetch(filter types.Filter) ([]any, error) {
	db, err := st.backend.handle()
	if err != nil {
		return nil, err
	}

	query := "SELECT snapshot_id, figure_id, label, state, created_at FROM snapshots"
	var conditions []string
	var args []any

	if filter != nil {
		if v, ok := filter["figure_id"]; ok {
			figID, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "figure_id = ?")
			args = append(args, figID)
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, snapshot_id DESC"

	query, err = applyLimitOffset(query, filter)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching snapshots: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		snap, err := hydrateSnapshot(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating snapshot: %w", err)
		}
		results = append(results, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}
	return results, nil
}

// hydrateSnapshot converts one snapshots row into a *types.Snapshot.
func hydrateSnapshot(scan func(dest ...any) error) (*types.Snapshot, error) {
	var s types.Snapshot
	var stateJSON, createdAt string
	if err := scan(&s.SnapshotID, &s.FigureID, &s.Label, &stateJSON, &createdAt); err != nil {
		return nil, err
	}
	var state snapshotState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		return nil, fmt.Errorf("parsing state: %w", err)
	}
	s.Grid = state.Grid
	s.Style = state.Style
	var err error
	s.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &s, nil
}
