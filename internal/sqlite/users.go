// User record operations for the SQLite entity store.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/bookfold/circdesk/pkg/types"
)

// userRow mirrors the users table for sqlx scanning.
type userRow struct {
	ID        int64          `db:"id"`
	FirstName sql.NullString `db:"first_name"`
	LastName  sql.NullString `db:"last_name"`
	Age       int            `db:"age"`
	Gender    string         `db:"gender"`
	Email     string         `db:"email"`
}

func (r userRow) hydrate() *types.User {
	return &types.User{
		ID:        r.ID,
		FirstName: r.FirstName.String,
		LastName:  r.LastName.String,
		Age:       r.Age,
		Gender:    r.Gender,
		Email:     r.Email,
	}
}

const userColumns = "id, first_name, last_name, age, gender, email"

// InsertUser inserts a user row and assigns u.ID. A duplicate email
// surfaces as ErrConflict; missing required fields as ErrConstraint.
func (t *Tx) InsertUser(u *types.User) (int64, error) {
	res, err := t.tx.Exec(
		"INSERT INTO users (first_name, last_name, age, gender, email) VALUES (?, ?, ?, ?, ?)",
		nullString(u.FirstName), nullString(u.LastName), u.Age, nullString(u.Gender), nullString(u.Email),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting user: %w", mapError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading user id: %w", err)
	}
	u.ID = id
	return id, nil
}

// UpdateUser writes the full row for u.ID and returns the number of rows
// affected.
func (t *Tx) UpdateUser(u *types.User) (int64, error) {
	res, err := t.tx.Exec(
		"UPDATE users SET first_name = ?, last_name = ?, age = ?, gender = ?, email = ? WHERE id = ?",
		nullString(u.FirstName), nullString(u.LastName), u.Age, nullString(u.Gender), nullString(u.Email), u.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("updating user: %w", mapError(err))
	}
	return res.RowsAffected()
}

// GetUser retrieves a user by ID. Returns ErrNotFound if absent.
func (t *Tx) GetUser(id int64) (*types.User, error) {
	var row userRow
	err := t.tx.Get(&row, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}
	return row.hydrate(), nil
}

// FindUserByEmail retrieves a user by exact email match.
// Returns ErrNotFound if no row matches.
func (t *Tx) FindUserByEmail(email string) (*types.User, error) {
	var row userRow
	err := t.tx.Get(&row, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("finding user by email: %w", err)
	}
	return row.hydrate(), nil
}

// DeleteUser removes a user by ID and returns the number of rows affected.
func (t *Tx) DeleteUser(id int64) (int64, error) {
	res, err := t.tx.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("deleting user %d: %w", id, mapError(err))
	}
	return res.RowsAffected()
}
