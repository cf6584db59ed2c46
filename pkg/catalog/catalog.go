// Package catalog implements validated create, lookup, and delete
// operations for the Book and User entities. The catalog validates input
// before touching the store and translates store failures into the error
// values of pkg/types; it never holds entity state between calls.
package catalog

import (
	"fmt"

	"github.com/bookfold/circdesk/pkg/types"
)

// Catalog manages books and users through an entity store.
type Catalog struct {
	store types.Store
}

// New creates a Catalog backed by the given store.
func New(store types.Store) *Catalog {
	return &Catalog{store: store}
}

// SaveBook inserts the book when it has no identity and otherwise updates
// the full row. On insert the assigned ID is written back to b, and an
// unset TotalCopies defaults to one. Updating a book nobody knows returns
// ErrNotFound.
func (c *Catalog) SaveBook(b *types.Book) error {
	if err := b.Validate(); err != nil {
		return err
	}
	return c.store.Transact(func(tx types.Tx) error {
		if b.ID == 0 {
			if b.TotalCopies == 0 {
				b.TotalCopies = 1
			}
			_, err := tx.InsertBook(b)
			return err
		}
		n, err := tx.UpdateBook(b)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("book %d: %w", b.ID, types.ErrNotFound)
		}
		return nil
	})
}

// GetBook looks up a book by case-insensitive partial match on title or
// author, OR-combined. When several rows match, which one is returned is
// unspecified. Supplying neither predicate fails with ErrNoPredicate; no
// match fails with ErrNotFound.
func (c *Catalog) GetBook(title, author string) (*types.Book, error) {
	if title == "" && author == "" {
		return nil, types.ErrNoPredicate
	}
	var book *types.Book
	err := c.store.Transact(func(tx types.Tx) error {
		var err error
		book, err = tx.FindBook(title, author)
		return err
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// DeleteBook removes a book by identity. Returns ErrNotFound if the ID
// does not exist and ErrConflict while active loans still reference it.
func (c *Catalog) DeleteBook(id int64) error {
	return c.store.Transact(func(tx types.Tx) error {
		active, err := tx.CountBookLoans(id)
		if err != nil {
			return err
		}
		if active > 0 {
			return fmt.Errorf("book %d has %d active loans: %w", id, active, types.ErrConflict)
		}
		n, err := tx.DeleteBook(id)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("book %d: %w", id, types.ErrNotFound)
		}
		return nil
	})
}

// SaveUser inserts the user when it has no identity and otherwise updates
// the full row. The minimum-age rule runs on every save, before any
// write; a duplicate email surfaces as ErrConflict with the original row
// untouched.
func (c *Catalog) SaveUser(u *types.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	return c.store.Transact(func(tx types.Tx) error {
		if u.ID == 0 {
			_, err := tx.InsertUser(u)
			return err
		}
		n, err := tx.UpdateUser(u)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("user %d: %w", u.ID, types.ErrNotFound)
		}
		return nil
	})
}

// GetUser looks up a user by exact email. Returns ErrNotFound if no row
// matches.
func (c *Catalog) GetUser(email string) (*types.User, error) {
	var user *types.User
	err := c.store.Transact(func(tx types.Tx) error {
		var err error
		user, err = tx.FindUserByEmail(email)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user by identity. Returns ErrNotFound if the ID
// does not exist and ErrConflict while the user still holds loans.
func (c *Catalog) DeleteUser(id int64) error {
	return c.store.Transact(func(tx types.Tx) error {
		active, err := tx.CountUserLoans(id)
		if err != nil {
			return err
		}
		if active > 0 {
			return fmt.Errorf("user %d holds %d active loans: %w", id, active, types.ErrConflict)
		}
		n, err := tx.DeleteUser(id)
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("user %d: %w", id, types.ErrNotFound)
		}
		return nil
	})
}
