package types

import (
	"errors"
	"fmt"
)

// Column width limits for book text fields.
const (
	MaxTitleLen  = 127
	MaxAuthorLen = 255
)

// Book field errors.
var (
	ErrAuthorEmpty = errors.New("author must not be empty")
)

// Book represents one title in the catalog. Copies are tracked as counts,
// not as individually identified items. A zero Title or Year means the
// field is unset and is stored as NULL.
type Book struct {
	ID          int64  `json:"id"`
	Title       string `json:"title,omitempty"`
	Author      string `json:"author"`
	Year        int    `json:"year,omitempty"`
	TotalCopies int    `json:"total_copies"`
	LentCopies  int    `json:"lent_copies"`
}

// Validate checks the book's fields against the column constraints.
// It does not touch the store.
func (b *Book) Validate() error {
	if b.Author == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrAuthorEmpty)
	}
	if len(b.Title) > MaxTitleLen {
		return fmt.Errorf("%w: title exceeds %d characters", ErrValidation, MaxTitleLen)
	}
	if len(b.Author) > MaxAuthorLen {
		return fmt.Errorf("%w: author exceeds %d characters", ErrValidation, MaxAuthorLen)
	}
	if b.TotalCopies < 0 || b.LentCopies < 0 {
		return fmt.Errorf("%w: copy counts must not be negative", ErrValidation)
	}
	return nil
}

// Available reports whether at least one copy is free to lend.
func (b *Book) Available() bool {
	return b.LentCopies < b.TotalCopies
}
