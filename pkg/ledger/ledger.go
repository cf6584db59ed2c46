// Package ledger implements the lend/return state machine over the entity
// store. A (book, user) pair is either not-borrowed or borrowed; Lend is
// the only forward transition and Return the only reverse one. Each call
// is a single transaction, so the precondition gates and the writes they
// guard commit or roll back together. The ledger itself holds no state
// between calls.
package ledger

import (
	"fmt"

	"github.com/bookfold/circdesk/pkg/types"
)

// Ledger runs lend and return transitions against an entity store.
type Ledger struct {
	store    types.Store
	maxLoans int
}

// New creates a Ledger backed by the given store, taking the per-borrower
// loan limit from config.
func New(store types.Store, config types.Config) *Ledger {
	return &Ledger{
		store:    store,
		maxLoans: config.GetMaxLoansPerUser(),
	}
}

// Lend lends one copy of a book to a user and returns the created loan.
// The gates run in order inside one transaction, and the first failure
// aborts the whole operation with no side effect:
//
//  1. the user already holds the maximum number of loans → ErrLoanLimit
//  2. the book does not exist → ErrNotFound
//  3. no copies are available → ErrUnavailable
//
// When all gates pass, the loan row and the lent-copies increment commit
// together.
func (l *Ledger) Lend(bookID, userID int64) (*types.Loan, error) {
	loan := &types.Loan{BookID: bookID, UserID: userID}
	err := l.store.Transact(func(tx types.Tx) error {
		held, err := tx.CountUserLoans(userID)
		if err != nil {
			return err
		}
		if held >= l.maxLoans {
			return fmt.Errorf("user %d holds %d loans: %w", userID, held, types.ErrLoanLimit)
		}

		book, err := tx.GetBook(bookID)
		if err != nil {
			return err
		}
		if !book.Available() {
			return fmt.Errorf("book %d: %w", bookID, types.ErrUnavailable)
		}

		if _, err := tx.InsertLoan(loan); err != nil {
			return err
		}
		if _, err := tx.AdjustLentCopies(bookID, 1); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loan, nil
}

// Return ends the loan matching (bookID, userID). If no such loan exists
// the operation is a no-op reported as ErrNotFound; otherwise the loan
// row is deleted and the book's lent-copies count decremented in the same
// transaction. The count never drops below zero.
func (l *Ledger) Return(bookID, userID int64) error {
	return l.store.Transact(func(tx types.Tx) error {
		n, err := tx.DeleteLoan(bookID, userID)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("user %d did not borrow book %d: %w", userID, bookID, types.ErrNotFound)
		}
		_, err = tx.AdjustLentCopies(bookID, -1)
		return err
	})
}
