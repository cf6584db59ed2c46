package sqlite

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/bookfold/circdesk/pkg/types"
)

// Compile-time interface check: Tx must implement types.Tx.
var _ types.Tx = (*Tx)(nil)

// Tx wraps one sqlx transaction and implements the record operations of
// types.Tx. Instances live only for the duration of a Transact call.
type Tx struct {
	tx *sqlx.Tx
}

// nullString maps the empty string to NULL so NOT NULL columns reject
// unset values at the schema level.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// nullInt maps zero to NULL for optional integer columns.
func nullInt(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: n != 0}
}
