// Package sqlite exposes the public constructor for the SQLite store
// while keeping the implementation internal.
package sqlite

import (
	"github.com/verdantlabs/trellis/internal/sqlite"
	"github.com/verdantlabs/trellis/pkg/types"
)

// NewStore creates a new SQLite store. The store is not attached; call
// Attach with a Config to open the database and seed the variety catalog.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".trellis-db",
//	})
//	defer store.Detach()
func NewStore() types.Store {
	return sqlite.NewStore()
}
