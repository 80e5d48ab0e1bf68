// Package sqlite implements the SQLite storage backend for the gridfig
// library: figures, snapshots, and image blobs in a single durable database
// file under the data directory.
package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/gridfig/gridfig/pkg/types"
)

// dbFileName is the database file created inside the data directory.
const dbFileName = "gridfig.db"

// Compile-time interface check: Backend must implement Library.
var _ types.Library = (*Backend)(nil)

// Backend implements the Library interface using SQLite as the store of
// record.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	tables   map[string]types.Table
	log      *zap.Logger
}

// NewBackend creates a new SQLite backend instance. A nil logger disables
// logging. The backend is not attached; call Attach with a Config to
// initialize.
func NewBackend(logger *zap.Logger) *Backend {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Backend{
		tables: make(map[string]types.Table),
		log:    logger,
	}
}

// GetTable returns a Table interface for the specified table name.
// Returns ErrTableNotFound if the table name is not recognized.
// Returns ErrLibraryDetached if the backend is not attached.
func (b *Backend) GetTable(name string) (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrLibraryDetached
	}

	table, ok := b.tables[name]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	return table, nil
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist, opens (or creates) the database file,
// ensures the schema, and creates table accessors.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return err
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return err
		}
	}

	b.db = db
	b.config = config
	b.attached = true

	b.tables[types.TableFigures] = &figuresTable{backend: b}
	b.tables[types.TableSnapshots] = &snapshotsTable{backend: b}
	b.tables[types.TableBlobs] = &blobsTable{backend: b}

	b.log.Debug("backend attached",
		zap.String("data_dir", dataDir),
		zap.String("db", dbPath))

	return nil
}

// Detach releases all resources held by the backend. Closes the SQLite
// connection. After Detach, all operations return ErrLibraryDetached.
// Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	b.tables = make(map[string]types.Table)

	b.log.Debug("backend detached")
	return nil
}

// handle returns the open database handle, or ErrLibraryDetached when the
// backend has been detached. Table accessors obtained before Detach must
// not dereference a closed handle.
func (b *Backend) handle() (*sql.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached || b.db == nil {
		return nil, types.ErrLibraryDetached
	}
	return b.db, nil
}

// generateUUID generates a new UUID v7 for entity IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
