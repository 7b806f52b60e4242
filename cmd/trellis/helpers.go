// Shared helpers for trellis commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/verdantlabs/trellis/pkg/sqlite"
	"github.com/verdantlabs/trellis/pkg/types"
)

// attachStore resolves the data directory and returns an attached store.
// The caller is responsible for calling Detach.
func attachStore() (types.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	store := sqlite.NewStore()
	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return store, nil
}

// detachStore detaches the store, logging any error to stderr. Used in
// defers where the command's primary error takes precedence.
func detachStore(store types.Store) {
	if err := store.Detach(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: detach store: %v\n", err)
	}
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTabWriter returns a tabwriter on stdout with the standard column
// settings used by list commands.
func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// formatLifespan renders a variety's productive lifespan for display.
func formatLifespan(v types.Variety) string {
	if !v.Everbearing {
		return "-"
	}
	if v.ProductiveLifespan == nil {
		return "unbounded"
	}
	return fmt.Sprintf("%d days", *v.ProductiveLifespan)
}
