// Package sqlite provides the public API for the SQLite entity store.
// It exposes the factory function while keeping the implementation
// internal.
package sqlite

import (
	"github.com/bookfold/circdesk/internal/sqlite"
	"github.com/bookfold/circdesk/pkg/types"
)

// NewStore creates a new SQLite store instance.
// The store is not open; call Open with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".circdesk-db",
//	})
//	defer store.Close()
func NewStore() types.Store {
	return sqlite.NewStore()
}
