// Book record operations for the SQLite entity store. Each operation
// hydrates between SQLite rows and *types.Book values.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/bookfold/circdesk/pkg/types"
)

// bookRow mirrors the books table for sqlx scanning. Nullable columns use
// sql.Null types and collapse to Go zero values on hydration.
type bookRow struct {
	ID          int64          `db:"id"`
	Title       sql.NullString `db:"title"`
	Author      string         `db:"author"`
	Year        sql.NullInt64  `db:"year"`
	TotalCopies int            `db:"total_copies"`
	LentCopies  int            `db:"lent_copies"`
}

// hydrate converts a scanned row into the entity value.
func (r bookRow) hydrate() *types.Book {
	return &types.Book{
		ID:          r.ID,
		Title:       r.Title.String,
		Author:      r.Author,
		Year:        int(r.Year.Int64),
		TotalCopies: r.TotalCopies,
		LentCopies:  r.LentCopies,
	}
}

const bookColumns = "id, title, author, year, total_copies, lent_copies"

// InsertBook inserts a book row and assigns b.ID.
func (t *Tx) InsertBook(b *types.Book) (int64, error) {
	res, err := t.tx.Exec(
		"INSERT INTO books (title, author, year, total_copies, lent_copies) VALUES (?, ?, ?, ?, ?)",
		nullString(b.Title), nullString(b.Author), nullInt(b.Year), b.TotalCopies, b.LentCopies,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting book: %w", mapError(err))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading book id: %w", err)
	}
	b.ID = id
	return id, nil
}

// UpdateBook writes the full row for b.ID and returns the number of rows
// affected. Zero rows means no book has that ID.
func (t *Tx) UpdateBook(b *types.Book) (int64, error) {
	res, err := t.tx.Exec(
		"UPDATE books SET title = ?, author = ?, year = ?, total_copies = ?, lent_copies = ? WHERE id = ?",
		nullString(b.Title), nullString(b.Author), nullInt(b.Year), b.TotalCopies, b.LentCopies, b.ID,
	)
	if err != nil {
		return 0, fmt.Errorf("updating book: %w", mapError(err))
	}
	return res.RowsAffected()
}

// GetBook retrieves a book by ID. Returns ErrNotFound if absent.
func (t *Tx) GetBook(id int64) (*types.Book, error) {
	var row bookRow
	err := t.tx.Get(&row, "SELECT "+bookColumns+" FROM books WHERE id = ?", id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting book %d: %w", id, err)
	}
	return row.hydrate(), nil
}

// FindBook returns the first book whose title or author contains the given
// fragment, case-insensitively. Conditions are OR-combined; when several
// rows match, which one is returned is unspecified.
func (t *Tx) FindBook(title, author string) (*types.Book, error) {
	var conditions []string
	var args []any
	if title != "" {
		conditions = append(conditions, "title LIKE '%' || ? || '%'")
		args = append(args, title)
	}
	if author != "" {
		conditions = append(conditions, "author LIKE '%' || ? || '%'")
		args = append(args, author)
	}
	if len(conditions) == 0 {
		return nil, types.ErrNotFound
	}

	query := "SELECT " + bookColumns + " FROM books WHERE " +
		strings.Join(conditions, " OR ") + " LIMIT 1"

	var row bookRow
	err := t.tx.Get(&row, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("finding book: %w", err)
	}
	return row.hydrate(), nil
}

// DeleteBook removes a book by ID and returns the number of rows affected.
func (t *Tx) DeleteBook(id int64) (int64, error) {
	res, err := t.tx.Exec("DELETE FROM books WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("deleting book %d: %w", id, mapError(err))
	}
	return res.RowsAffected()
}

// AdjustLentCopies adds delta to a book's lent copy count, clamped at
// zero. Raising the count past total_copies fails the table check and
// surfaces as ErrConstraint.
func (t *Tx) AdjustLentCopies(bookID int64, delta int) (int64, error) {
	res, err := t.tx.Exec(
		"UPDATE books SET lent_copies = MAX(lent_copies + ?, 0) WHERE id = ?",
		delta, bookID,
	)
	if err != nil {
		return 0, fmt.Errorf("adjusting lent copies for book %d: %w", bookID, mapError(err))
	}
	return res.RowsAffected()
}
