// Init command creates the data directory and seeds the variety catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the trellis data store",
	Long: `Init creates the data directory, initializes the database schema,
and seeds the built-in variety catalog on first run.

Example:
  trellis init
  trellis init --data-dir ~/garden/.trellis-db`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	store, err := attachStore()
	if err != nil {
		return err
	}
	defer detachStore(store)

	varieties, err := store.ListVarieties(cmd.Context())
	if err != nil {
		return fmt.Errorf("list varieties: %w", err)
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{
			"data_dir":  dataDir,
			"varieties": len(varieties),
		})
	}

	fmt.Printf("Initialized data store at %s (%d varieties)\n", dataDir, len(varieties))
	return nil
}
