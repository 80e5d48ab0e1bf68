// Package main provides the gridfig CLI: compose labeled figure grids from
// image files, keep their history as snapshots, and export them as PNG.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gridfig/gridfig/pkg/grid"
	"github.com/gridfig/gridfig/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// userErrors are rejected inputs, not system failures.
var userErrors = []error{
	types.ErrNotFound,
	types.ErrInvalidID,
	types.ErrInvalidName,
	types.ErrNameTaken,
	types.ErrEmptyContent,
	types.ErrSnapshotMismatch,
	types.ErrInvalidFilter,
	types.ErrCellSizeInvalid,
	types.ErrSpacingInvalid,
	types.ErrBackgroundInvalid,
	grid.ErrOutOfRange,
	grid.ErrInvalidSize,
	grid.ErrCaptionCount,
	grid.ErrDuplicateCell,
	errBadArgument,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps an error to the CLI exit code.
func exitCodeFor(err error) int {
	for _, ue := range userErrors {
		if errors.Is(err, ue) {
			return exitUserError
		}
	}
	return exitSysError
}
