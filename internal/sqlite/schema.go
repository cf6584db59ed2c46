package sqlite

// Schema DDL for the three collections. Every statement is idempotent so
// CreateSchema can run on every startup.
const (
	createBooks = `CREATE TABLE IF NOT EXISTS books (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT,
    author TEXT NOT NULL,
    year INTEGER,
    total_copies INTEGER NOT NULL DEFAULT 1,
    lent_copies INTEGER NOT NULL DEFAULT 0,
    CHECK (total_copies >= 0),
    CHECK (lent_copies >= 0 AND lent_copies <= total_copies)
);`

	createUsers = `CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT,
    last_name TEXT,
    age INTEGER NOT NULL,
    gender TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE
);`

	createLoans = `CREATE TABLE IF NOT EXISTS loans (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    reference TEXT NOT NULL UNIQUE,
    book_id INTEGER NOT NULL,
    user_id INTEGER NOT NULL,
    FOREIGN KEY (book_id) REFERENCES books(id),
    FOREIGN KEY (user_id) REFERENCES users(id)
);`
)

// Index DDL for common queries. The unique (book_id, user_id) index keeps
// a borrower from holding the same title twice.
const (
	idxLoansPair = `CREATE UNIQUE INDEX IF NOT EXISTS idx_loans_book_user ON loans(book_id, user_id);`
	idxLoansUser = `CREATE INDEX IF NOT EXISTS idx_loans_user ON loans(user_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createBooks,
	createUsers,
	createLoans,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxLoansPair,
	idxLoansUser,
}
