// Loan record operations for the SQLite entity store. Loan rows are
// created and deleted, never updated in place.
package sqlite

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/bookfold/circdesk/pkg/types"
)

// newReference generates a UUID v7 receipt reference for a loan.
func newReference() string {
	return uuid.Must(uuid.NewV7()).String()
}

// InsertLoan inserts a loan row, assigning l.ID and, when unset,
// l.Reference. A second loan of the same (book, user) pair violates the
// unique index and surfaces as ErrConflict; a dangling book or user
// reference surfaces as ErrConstraint.
func (t *Tx) InsertLoan(l *types.Loan) (int64, error) {
	if l.Reference == "" {
		l.Reference = newReference()
	}
	res, err := t.tx.Exec(
		"INSERT INTO loans (reference, book_id, user_id) VALUES (?, ?, ?)",
		l.Reference, l.BookID, l.UserID,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting loan: %w", mapError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading loan id: %w", err)
	}
	l.ID = id
	return id, nil
}

// DeleteLoan removes the loan matching (bookID, userID) and returns the
// number of rows affected. Zero rows means the pair was never lent.
func (t *Tx) DeleteLoan(bookID, userID int64) (int64, error) {
	res, err := t.tx.Exec(
		"DELETE FROM loans WHERE book_id = ? AND user_id = ?",
		bookID, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting loan: %w", mapError(err))
	}
	return res.RowsAffected()
}

// CountUserLoans returns the number of active loans held by a user.
func (t *Tx) CountUserLoans(userID int64) (int, error) {
	var n int
	if err := t.tx.Get(&n, "SELECT COUNT(*) FROM loans WHERE user_id = ?", userID); err != nil {
		return 0, fmt.Errorf("counting loans for user %d: %w", userID, err)
	}
	return n, nil
}

// CountBookLoans returns the number of active loans of a book.
func (t *Tx) CountBookLoans(bookID int64) (int, error) {
	var n int
	if err := t.tx.Get(&n, "SELECT COUNT(*) FROM loans WHERE book_id = ?", bookID); err != nil {
		return 0, fmt.Errorf("counting loans for book %d: %w", bookID, err)
	}
	return n, nil
}
