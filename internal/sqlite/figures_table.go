// Figures table accessor. Each operation hydrates/dehydrates between SQLite
// rows and *types.Figure structs; the grid and style columns carry the JSON
// form, which re-validates the grid invariants on every read.
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

// Compile-time interface check: figuresTable must implement Table.
var _ types.Table = (*figuresTable)(nil)

type figuresTable struct {
	backend *Backend
}

// Get retrieves a figure by ID.
func (ft *figuresTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	db, err := ft.backend.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		"SELECT figure_id, name, grid, style, created_at, updated_at FROM figures WHERE figure_id = ?",
		id,
	)
	fig, err := hydrateFigure(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting figure %s: %w", id, err)
	}
	return fig, nil
}

// Set persists a figure. If id is empty, generates a UUID v7 and creates
// the figure; otherwise updates the existing row. The figure name must be
// unique across the library. Returns the actual ID used.
func (ft *figuresTable) Set(id string, data any) (string, error) {
	fig, ok := data.(*types.Figure)
	if !ok {
		return "", types.ErrInvalidData
	}
	if fig.Name == "" {
		return "", types.ErrInvalidName
	}
	if err := fig.Grid.Validate(); err != nil {
		return "", err
	}
	if err := fig.Style.Validate(); err != nil {
		return "", err
	}
	db, err := ft.backend.handle()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()

	if id == "" {
		fig.FigureID = generateUUID()
		fig.CreatedAt = now
		id = fig.FigureID
	}
	fig.UpdatedAt = now

	// The UNIQUE constraint would also catch this, but checking up front
	// yields the sentinel error instead of a driver error string.
	var takenBy string
	err = db.QueryRow(
		"SELECT figure_id FROM figures WHERE name = ? AND figure_id != ?",
		fig.Name, id,
	).Scan(&takenBy)
	if err == nil {
		return "", types.ErrNameTaken
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("checking figure name: %w", err)
	}

	var exists bool
	err = db.QueryRow("SELECT 1 FROM figures WHERE figure_id = ?", id).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("checking figure existence: %w", err)
	}

	gridJSON, err := json.Marshal(&fig.Grid)
	if err != nil {
		return "", fmt.Errorf("marshaling grid: %w", err)
	}
	styleJSON, err := json.Marshal(fig.Style)
	if err != nil {
		return "", fmt.Errorf("marshaling style: %w", err)
	}

	if exists {
		_, err = db.Exec(
			"UPDATE figures SET name = ?, grid = ?, style = ?, updated_at = ? WHERE figure_id = ?",
			fig.Name, string(gridJSON), string(styleJSON), fig.UpdatedAt.Format(time.RFC3339), id,
		)
	} else {
		if fig.CreatedAt.IsZero() {
			fig.CreatedAt = now
		}
		_, err = db.Exec(
			"INSERT INTO figures (figure_id, name, grid, style, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			id, fig.Name, string(gridJSON), string(styleJSON),
			fig.CreatedAt.Format(time.RFC3339), fig.UpdatedAt.Format(time.RFC3339),
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting figure: %w", err)
	}

	ft.backend.log.Debug("figure persisted",
		zap.String("figure_id", id),
		zap.String("name", fig.Name),
		zap.Int("rows", fig.Grid.Rows),
		zap.Int("cols", fig.Grid.Cols))

	return id, nil
}

// Delete removes a figure, cascades to its snapshots, and drops blobs no
// longer referenced by any remaining figure or snapshot.
func (ft *figuresTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	db, err := ft.backend.handle()
	if err != nil {
		return err
	}

	var exists bool
	err = db.QueryRow("SELECT 1 FROM figures WHERE figure_id = ?", id).Scan(&exists)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		return fmt.Errorf("checking figure existence: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM snapshots WHERE figure_id = ?", id); err != nil {
		return fmt.Errorf("deleting figure snapshots: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM figures WHERE figure_id = ?", id); err != nil {
		return fmt.Errorf("deleting figure: %w", err)
	}

	dropped, err := deleteUnreferencedBlobs(tx)
	if err != nil {
		return fmt.Errorf("collecting unreferenced blobs: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing figure deletion: %w", err)
	}

	ft.backend.log.Debug("figure deleted",
		zap.String("figure_id", id),
		zap.Int("blobs_dropped", dropped))

	return nil
}

// Fetch queries figures matching the filter, ordered by created_at DESC.
// Supported filter keys: "name" (string, exact), "limit" (int),
// "offset" (int).
func (ft *figuresTable) Fetch(filter types.Filter) ([]any, error) {
	db, err := ft.backend.handle()
	if err != nil {
		return nil, err
	}

	query := "SELECT figure_id, name, grid, style, created_at, updated_at FROM figures"
	var conditions []string
	var args []any

	if filter != nil {
		if v, ok := filter["name"]; ok {
			name, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "name = ?")
			args = append(args, name)
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, figure_id DESC"

	query, err = applyLimitOffset(query, filter)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching figures: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		fig, err := hydrateFigure(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating figure: %w", err)
		}
		results = append(results, fig)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating figures: %w", err)
	}
	return results, nil
}

// hydrateFigure converts one figures row into a *types.Figure. The scan
// argument abstracts over sql.Row and sql.Rows.
func hydrateFigure(scan func(dest ...any) error) (*types.Figure, error) {
	var f types.Figure
	var gridJSON, styleJSON, createdAt, updatedAt string
	if err := scan(&f.FigureID, &f.Name, &gridJSON, &styleJSON, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(gridJSON), &f.Grid); err != nil {
		return nil, fmt.Errorf("parsing grid: %w", err)
	}
	if err := json.Unmarshal([]byte(styleJSON), &f.Style); err != nil {
		return nil, fmt.Errorf("parsing style: %w", err)
	}
	var err error
	f.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	f.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &f, nil
}

// applyLimitOffset appends LIMIT/OFFSET clauses from the filter, if present.
func applyLimitOffset(query string, filter types.Filter) (string, error) {
	if filter == nil {
		return query, nil
	}
	hasLimit := false
	if v, ok := filter["limit"]; ok {
		limit, ok := v.(int)
		if !ok {
			return "", types.ErrInvalidFilter
		}
		if limit > 0 {
			query += fmt.Sprintf(" LIMIT %d", limit)
			hasLimit = true
		}
	}
	if v, ok := filter["offset"]; ok {
		offset, ok := v.(int)
		if !ok {
			return "", types.ErrInvalidFilter
		}
		if offset > 0 {
			// SQLite requires a LIMIT clause before OFFSET; -1 means no cap.
			if !hasLimit {
				query += " LIMIT -1"
			}
			query += fmt.Sprintf(" OFFSET %d", offset)
		}
	}
	return query, nil
}
