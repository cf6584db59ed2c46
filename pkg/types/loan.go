package types

// Loan asserts that a specific user currently holds a specific book.
// A loan exists from lend to return and is never updated in place; its
// existence is the sole source of truth for "user holds book".
// Reference is a UUID v7 receipt identifier assigned on lend.
type Loan struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	BookID    int64  `json:"book_id"`
	UserID    int64  `json:"user_id"`
}
