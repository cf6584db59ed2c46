package types

// Store is the persistent entity store backing the catalog and the loan
// ledger. Callers open the store with a Config, run atomic units of work
// through Transact, and close the store when done.
type Store interface {
	// Open connects the store to the backend described by config and
	// creates the data directory if it does not exist.
	// Returns ErrAlreadyOpen if called while already open.
	Open(config Config) error

	// Close releases backend resources. Idempotent: multiple calls
	// succeed. After Close, operations return ErrStoreClosed.
	Close() error

	// CreateSchema ensures the books, users, and loans tables exist with
	// their constraints. Safe to call repeatedly.
	CreateSchema() error

	// Transact runs fn inside a single transaction. If fn returns an
	// error the transaction is rolled back and no write is visible;
	// otherwise every write commits together.
	Transact(fn func(tx Tx) error) error
}

// Tx exposes the record operations available inside a transaction.
// Update and delete operations return the number of rows affected; zero
// rows is not an error, the caller decides whether absence is exceptional.
type Tx interface {
	// InsertBook inserts a book and returns its assigned ID.
	InsertBook(b *Book) (int64, error)
	// UpdateBook writes the full row for b.ID.
	UpdateBook(b *Book) (int64, error)
	// GetBook retrieves a book by ID. Returns ErrNotFound if absent.
	GetBook(id int64) (*Book, error)
	// FindBook returns the first book whose title or author contains the
	// given fragment, case-insensitively. Empty fragments are ignored.
	// Returns ErrNotFound if no row matches.
	FindBook(title, author string) (*Book, error)
	// DeleteBook removes a book by ID.
	DeleteBook(id int64) (int64, error)

	// InsertUser inserts a user and returns its assigned ID.
	InsertUser(u *User) (int64, error)
	// UpdateUser writes the full row for u.ID.
	UpdateUser(u *User) (int64, error)
	// GetUser retrieves a user by ID. Returns ErrNotFound if absent.
	GetUser(id int64) (*User, error)
	// FindUserByEmail retrieves a user by exact email.
	// Returns ErrNotFound if no row matches.
	FindUserByEmail(email string) (*User, error)
	// DeleteUser removes a user by ID.
	DeleteUser(id int64) (int64, error)

	// InsertLoan inserts a loan row, assigning ID and Reference.
	InsertLoan(l *Loan) (int64, error)
	// DeleteLoan removes the loan matching (bookID, userID).
	DeleteLoan(bookID, userID int64) (int64, error)
	// CountUserLoans returns the number of active loans held by a user.
	CountUserLoans(userID int64) (int, error)
	// CountBookLoans returns the number of active loans of a book.
	CountBookLoans(bookID int64) (int, error)
	// AdjustLentCopies adds delta to a book's lent copy count. The count
	// is clamped at zero; the schema rejects counts above total_copies.
	AdjustLentCopies(bookID int64, delta int) (int64, error)
}
