// Package sqlite implements the SQLite entity store for the circdesk
// lending registry. It owns the durable representation of books, users,
// and loans, and exposes atomic units of work through Store.Transact.
package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/bookfold/circdesk/pkg/types"
)

// dbFileName is the SQLite database file created inside DataDir.
const dbFileName = "circdesk.db"

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// Store implements types.Store on a single SQLite database file.
// A single connection serializes transactions, so each Transact call is an
// all-or-nothing unit of work even under concurrent callers.
type Store struct {
	mu     sync.RWMutex
	open   bool
	config types.Config
	db     *sqlx.DB
}

// NewStore creates a new SQLite store instance.
// The store is not open; call Open with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Open connects the store to the SQLite database under config.DataDir,
// creating the directory if needed. Returns ErrAlreadyOpen if the store
// is already open.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return types.ErrAlreadyOpen
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	dsn := "file:" + dbPath + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("opening sqlite: %w", err)
	}

	// One connection keeps every transaction serialized on a single
	// writer, which is what makes concurrent lend calls safe.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("pinging sqlite: %w", err)
	}

	s.db = db
	s.config = config
	s.open = true

	return nil
}

// Close releases the SQLite connection. After Close, all operations
// return ErrStoreClosed. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil // idempotent
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("closing sqlite: %w", err)
		}
		s.db = nil
	}

	s.open = false
	return nil
}

// CreateSchema ensures the books, users, and loans tables and their
// indexes exist. Safe to call repeatedly.
func (s *Store) CreateSchema() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return types.ErrStoreClosed
	}

	for _, ddl := range schemaDDL {
		if _, err := s.db.Exec(ddl); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	for _, ddl := range indexDDL {
		if _, err := s.db.Exec(ddl); err != nil {
			return fmt.Errorf("creating indexes: %w", err)
		}
	}
	return nil
}

// Transact runs fn inside a single transaction. The transaction is rolled
// back on any error from fn and committed otherwise; either way the
// database is left in a consistent state.
func (s *Store) Transact(fn func(tx types.Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return types.ErrStoreClosed
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&Tx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", mapError(err))
	}
	return nil
}
