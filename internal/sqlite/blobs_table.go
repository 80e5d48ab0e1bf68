// Blobs table accessor: the put/get contract the grid model's CellRefs
// point into. Content bytes are stored verbatim; the media type is sniffed
// on write when the caller does not provide one.
package sqlite

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gridfig/gridfig/pkg/types"
)

// Compile-time interface check: blobsTable must implement Table.
var _ types.Table = (*blobsTable)(nil)

type blobsTable struct {
	backend *Backend
}

// Get retrieves a blob by ID, content included.
func (bt *blobsTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	db, err := bt.backend.handle()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		"SELECT blob_id, name, media_type, content, created_at FROM blobs WHERE blob_id = ?",
		id,
	)
	blob, err := hydrateBlob(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting blob %s: %w", id, err)
	}
	return blob, nil
}

// Set persists a blob. If id is empty, generates a UUID v7. An empty media
// type is detected from the content bytes. Returns the actual ID used.
func (bt *blobsTable) Set(id string, data any) (string, error) {
	blob, ok := data.(*types.Blob)
	if !ok {
		return "", types.ErrInvalidData
	}
	if err := blob.Validate(); err != nil {
		return "", err
	}
	db, err := bt.backend.handle()
	if err != nil {
		return "", err
	}

	if id == "" {
		blob.BlobID = generateUUID()
		blob.CreatedAt = time.Now().UTC()
		id = blob.BlobID
	}
	if blob.MediaType == "" {
		blob.MediaType = http.DetectContentType(blob.Content)
	}
	if blob.CreatedAt.IsZero() {
		blob.CreatedAt = time.Now().UTC()
	}

	var exists bool
	err = db.QueryRow("SELECT 1 FROM blobs WHERE blob_id = ?", id).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("checking blob existence: %w", err)
	}

	if exists {
		_, err = db.Exec(
			"UPDATE blobs SET name = ?, media_type = ?, content = ? WHERE blob_id = ?",
			blob.Name, blob.MediaType, blob.Content, id,
		)
	} else {
		_, err = db.Exec(
			"INSERT INTO blobs (blob_id, name, media_type, content, created_at) VALUES (?, ?, ?, ?, ?)",
			id, blob.Name, blob.MediaType, blob.Content,
			blob.CreatedAt.Format(time.RFC3339),
		)
	}
	if err != nil {
		return "", fmt.Errorf("persisting blob: %w", err)
	}

	bt.backend.log.Debug("blob persisted",
		zap.String("blob_id", id),
		zap.String("media_type", blob.MediaType),
		zap.Int("bytes", len(blob.Content)))

	return id, nil
}

// Delete removes a blob by ID.
func (bt *blobsTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	db, err := bt.backend.handle()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM blobs WHERE blob_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting blob: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting blob: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Fetch queries blobs matching the filter, ordered by created_at DESC.
// Supported filter keys: "media_type" (string, exact), "limit" (int),
// "offset" (int).
func (bt *blobsTable) Fetch(filter types.Filter) ([]any, error) {
	db, err := bt.backend.handle()
	if err != nil {
		return nil, err
	}

	query := "SELECT blob_id, name, media_type, content, created_at FROM blobs"
	var conditions []string
	var args []any

	if filter != nil {
		if v, ok := filter["media_type"]; ok {
			mt, ok := v.(string)
			if !ok {
				return nil, types.ErrInvalidFilter
			}
			conditions = append(conditions, "media_type = ?")
			args = append(args, mt)
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, blob_id DESC"

	query, err = applyLimitOffset(query, filter)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("fetching blobs: %w", err)
	}
	defer rows.Close()

	results := []any{}
	for rows.Next() {
		blob, err := hydrateBlob(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("hydrating blob: %w", err)
		}
		results = append(results, blob)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating blobs: %w", err)
	}
	return results, nil
}

// hydrateBlob converts one blobs row into a *types.Blob.
func hydrateBlob(scan func(dest ...any) error) (*types.Blob, error) {
	var b types.Blob
	var createdAt string
	if err := scan(&b.BlobID, &b.Name, &b.MediaType, &b.Content, &createdAt); err != nil {
		return nil, err
	}
	var err error
	b.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &b, nil
}

// deleteUnreferencedBlobs removes every blob whose ID appears in no figure
// grid and no snapshot state. Runs inside the caller's transaction; returns
// the number of blobs dropped.
func deleteUnreferencedBlobs(tx *sql.Tx) (int, error) {
	referenced, err := collectReferencedBlobIDs(tx)
	if err != nil {
		return 0, err
	}

	rows, err := tx.Query("SELECT blob_id FROM blobs")
	if err != nil {
		return 0, fmt.Errorf("querying blob ids: %w", err)
	}
	var orphans []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scanning blob id: %w", err)
		}
		if !referenced[id] {
			orphans = append(orphans, id)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterating blob ids: %w", err)
	}

	for _, id := range orphans {
		if _, err := tx.Exec("DELETE FROM blobs WHERE blob_id = ?", id); err != nil {
			return 0, fmt.Errorf("deleting orphan blob %s: %w", id, err)
		}
	}
	return len(orphans), nil
}

// collectReferencedBlobIDs walks every persisted grid (figures and snapshot
// states) and returns the set of blob IDs still in use.
func collectReferencedBlobIDs(tx *sql.Tx) (map[string]bool, error) {
	referenced := make(map[string]bool)

	gather := func(query string, decode func(raw string) error) error {
		rows, err := tx.Query(query)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var raw string
			if err := rows.Scan(&raw); err != nil {
				return err
			}
			if err := decode(raw); err != nil {
				return err
			}
		}
		return rows.Err()
	}

	if err := gather("SELECT grid FROM figures", func(raw string) error {
		ids, err := blobIDsFromGridJSON(raw)
		if err != nil {
			return err
		}
		for _, id := range ids {
			referenced[id] = true
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("walking figure grids: %w", err)
	}

	if err := gather("SELECT state FROM snapshots", func(raw string) error {
		ids, err := blobIDsFromStateJSON(raw)
		if err != nil {
			return err
		}
		for _, id := range ids {
			referenced[id] = true
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("walking snapshot states: %w", err)
	}

	return referenced, nil
}
