// Shared helpers for gridfig CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gridfig/gridfig/internal/sqlite"
	"github.com/gridfig/gridfig/pkg/types"
)

// errBadArgument marks malformed positional arguments so they map to the
// user-error exit code.
var errBadArgument = errors.New("invalid argument")

// attachBackend resolves the data directory, creates a SQLite backend, and
// attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend(logger)
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// figureByName looks up a figure by its unique name.
func figureByName(figures types.Table, name string) (*types.Figure, error) {
	results, err := figures.Fetch(types.Filter{"name": name})
	if err != nil {
		return nil, fmt.Errorf("fetch figure: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("figure %q: %w", name, types.ErrNotFound)
	}
	fig, ok := results[0].(*types.Figure)
	if !ok {
		return nil, types.ErrInvalidData
	}
	return fig, nil
}

// loadFigure attaches the backend and fetches the named figure. The caller
// must defer backend.Detach().
func loadFigure(name string) (*sqlite.Backend, types.Table, *types.Figure, error) {
	backend, err := attachBackend()
	if err != nil {
		return nil, nil, nil, err
	}

	figures, err := backend.GetTable(types.TableFigures)
	if err != nil {
		backend.Detach()
		return nil, nil, nil, err
	}

	fig, err := figureByName(figures, name)
	if err != nil {
		backend.Detach()
		return nil, nil, nil, err
	}

	return backend, figures, fig, nil
}

// saveFigure persists an updated figure under its existing ID.
func saveFigure(figures types.Table, fig *types.Figure) error {
	if _, err := figures.Set(fig.FigureID, fig); err != nil {
		return fmt.Errorf("save figure: %w", err)
	}
	return nil
}

// parseIndex converts a positional argument to an integer index.
func parseIndex(label, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not an integer: %w", label, s, errBadArgument)
	}
	return n, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
