package types

import "errors"

// Standard table names.
const (
	TableFigures   = "figures"
	TableSnapshots = "snapshots"
	TableBlobs     = "blobs"
)

// Library defines the interface for backend-agnostic storage access.
// Callers attach to a backend, access tables by name, and detach when done.
type Library interface {
	// GetTable returns the Table for the given name.
	// Returns ErrTableNotFound if the name is not a standard table.
	GetTable(name string) (Table, error)

	// Attach connects the Library to the backend described by config.
	// Creates the DataDir if it does not exist. Idempotent on first call;
	// returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, operations on tables return ErrLibraryDetached.
	Detach() error
}

// Library lifecycle errors.
var (
	ErrLibraryDetached = errors.New("library is detached")
	ErrAlreadyAttached = errors.New("library is already attached")
	ErrTableNotFound   = errors.New("table not found")
)
