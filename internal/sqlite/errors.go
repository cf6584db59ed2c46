package sqlite

import (
	"database/sql"
	"errors"

	sqlitelib "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/bookfold/circdesk/pkg/types"
)

// mapError translates driver-level failures into the registry's error
// values: uniqueness violations become ErrConflict, other constraint
// failures become ErrConstraint, and a missing row becomes ErrNotFound.
// Anything else passes through unchanged.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return types.ErrNotFound
	}

	var se *sqlitelib.Error
	if !errors.As(err, &se) {
		return err
	}

	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return types.ErrConflict
	}
	// The primary result code masks the extended constraint codes
	// (NOT NULL, FK, CHECK).
	if se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return types.ErrConstraint
	}
	return err
}
