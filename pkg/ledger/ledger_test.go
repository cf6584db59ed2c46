package ledger

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookfold/circdesk/pkg/catalog"
	"github.com/bookfold/circdesk/pkg/sqlite"
	"github.com/bookfold/circdesk/pkg/types"
)

// testRegistry bundles the store, catalog, and ledger over one temp
// database.
type testRegistry struct {
	store   types.Store
	catalog *catalog.Catalog
	ledger  *Ledger
}

// setupRegistry creates a fresh registry. The zero config keeps the
// default loan limit of two.
func setupRegistry(t *testing.T, config types.Config) *testRegistry {
	t.Helper()
	config.Backend = types.BackendSQLite
	config.DataDir = t.TempDir()

	store := sqlite.NewStore()
	require.NoError(t, store.Open(config))
	require.NoError(t, store.CreateSchema())
	t.Cleanup(func() { store.Close() })

	return &testRegistry{
		store:   store,
		catalog: catalog.New(store),
		ledger:  New(store, config),
	}
}

// addBook seeds a book with the given copy counts and returns its ID.
func (r *testRegistry) addBook(t *testing.T, total, lent int) int64 {
	t.Helper()
	book := &types.Book{Author: "George Orwell", TotalCopies: total, LentCopies: lent}
	require.NoError(t, r.catalog.SaveBook(book))
	return book.ID
}

// addUser seeds a user with a unique email and returns its ID.
func (r *testRegistry) addUser(t *testing.T, email string) int64 {
	t.Helper()
	user := &types.User{Age: 20, Gender: "Male", Email: email}
	require.NoError(t, r.catalog.SaveUser(user))
	return user.ID
}

// lentCopies reads the current lent count of a book.
func (r *testRegistry) lentCopies(t *testing.T, bookID int64) int {
	t.Helper()
	var book *types.Book
	require.NoError(t, r.store.Transact(func(tx types.Tx) error {
		var err error
		book, err = tx.GetBook(bookID)
		return err
	}))
	return book.LentCopies
}

// userLoans reads the number of loans a user currently holds.
func (r *testRegistry) userLoans(t *testing.T, userID int64) int {
	t.Helper()
	var n int
	require.NoError(t, r.store.Transact(func(tx types.Tx) error {
		var err error
		n, err = tx.CountUserLoans(userID)
		return err
	}))
	return n
}

func TestLend(t *testing.T) {
	t.Run("lend increments the lent count", func(t *testing.T) {
		r := setupRegistry(t, types.Config{})
		bookID := r.addBook(t, 3, 0)
		userID := r.addUser(t, "ali@example.com")

		loan, err := r.ledger.Lend(bookID, userID)
		require.NoError(t, err)
		assert.Positive(t, loan.ID)
		assert.NotEmpty(t, loan.Reference)
		assert.Equal(t, 1, r.lentCopies(t, bookID))
	})

	t.Run("no copies available", func(t *testing.T) {
		r := setupRegistry(t, types.Config{})
		bookID := r.addBook(t, 1, 1)
		userID := r.addUser(t, "ali@example.com")

		_, err := r.ledger.Lend(bookID, userID)
		assert.ErrorIs(t, err, types.ErrUnavailable)

		// No partial write.
		assert.Equal(t, 1, r.lentCopies(t, bookID))
		assert.Equal(t, 0, r.userLoans(t, userID))
	})

	t.Run("loan limit blocks the third loan", func(t *testing.T) {
		r := setupRegistry(t, types.Config{})
		userID := r.addUser(t, "ali@example.com")
		first := r.addBook(t, 1, 0)
		second := r.addBook(t, 1, 0)
		third := r.addBook(t, 1, 0)

		_, err := r.ledger.Lend(first, userID)
		require.NoError(t, err)
		_, err = r.ledger.Lend(second, userID)
		require.NoError(t, err)

		_, err = r.ledger.Lend(third, userID)
		assert.ErrorIs(t, err, types.ErrLoanLimit)
		assert.Equal(t, 0, r.lentCopies(t, third))
		assert.Equal(t, 2, r.userLoans(t, userID))
	})

	t.Run("unknown book", func(t *testing.T) {
		r := setupRegistry(t, types.Config{})
		userID := r.addUser(t, "ali@example.com")

		_, err := r.ledger.Lend(404, userID)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("limit gate runs before the book lookup", func(t *testing.T) {
		r := setupRegistry(t, types.Config{})
		userID := r.addUser(t, "ali@example.com")
		first := r.addBook(t, 1, 0)
		second := r.addBook(t, 1, 0)

		_, err := r.ledger.Lend(first, userID)
		require.NoError(t, err)
		_, err = r.ledger.Lend(second, userID)
		require.NoError(t, err)

		_, err = r.ledger.Lend(404, userID)
		assert.ErrorIs(t, err, types.ErrLoanLimit)
	})

	t.Run("same pair cannot be lent twice", func(t *testing.T) {
		r := setupRegistry(t, types.Config{})
		bookID := r.addBook(t, 3, 0)
		userID := r.addUser(t, "ali@example.com")

		_, err := r.ledger.Lend(bookID, userID)
		require.NoError(t, err)

		_, err = r.ledger.Lend(bookID, userID)
		assert.ErrorIs(t, err, types.ErrConflict)
		assert.Equal(t, 1, r.lentCopies(t, bookID))
	})

	t.Run("configured loan limit", func(t *testing.T) {
		r := setupRegistry(t, types.Config{MaxLoansPerUser: 1})
		userID := r.addUser(t, "ali@example.com")
		first := r.addBook(t, 1, 0)
		second := r.addBook(t, 1, 0)

		_, err := r.ledger.Lend(first, userID)
		require.NoError(t, err)

		_, err = r.ledger.Lend(second, userID)
		assert.ErrorIs(t, err, types.ErrLoanLimit)
	})
}

func TestReturn(t *testing.T) {
	t.Run("round-trip restores the pre-lend state", func(t *testing.T) {
		r := setupRegistry(t, types.Config{})
		bookID := r.addBook(t, 3, 0)
		userID := r.addUser(t, "ali@example.com")

		_, err := r.ledger.Lend(bookID, userID)
		require.NoError(t, err)
		require.NoError(t, r.ledger.Return(bookID, userID))

		assert.Equal(t, 0, r.lentCopies(t, bookID))
		assert.Equal(t, 0, r.userLoans(t, userID))
	})

	t.Run("returning a never-lent pair is a reported no-op", func(t *testing.T) {
		r := setupRegistry(t, types.Config{})
		bookID := r.addBook(t, 3, 1)
		userID := r.addUser(t, "ali@example.com")

		err := r.ledger.Return(bookID, userID)
		assert.ErrorIs(t, err, types.ErrNotFound)
		assert.Equal(t, 1, r.lentCopies(t, bookID))
	})

	t.Run("lend again after return", func(t *testing.T) {
		r := setupRegistry(t, types.Config{})
		bookID := r.addBook(t, 1, 0)
		userID := r.addUser(t, "ali@example.com")

		_, err := r.ledger.Lend(bookID, userID)
		require.NoError(t, err)
		require.NoError(t, r.ledger.Return(bookID, userID))

		_, err = r.ledger.Lend(bookID, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, r.lentCopies(t, bookID))
	})
}

func TestConcurrentLend(t *testing.T) {
	// Two callers race for the last copy: exactly one wins and the lent
	// count rises by exactly one.
	r := setupRegistry(t, types.Config{})
	bookID := r.addBook(t, 1, 0)
	userA := r.addUser(t, "a@example.com")
	userB := r.addUser(t, "b@example.com")

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, userID := range []int64{userA, userB} {
		wg.Add(1)
		go func(uid int64) {
			defer wg.Done()
			_, err := r.ledger.Lend(bookID, uid)
			errs <- err
		}(userID)
	}
	wg.Wait()
	close(errs)

	var succeeded, unavailable int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, types.ErrUnavailable)
			unavailable++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one lend wins the last copy")
	assert.Equal(t, 1, unavailable)
	assert.Equal(t, 1, r.lentCopies(t, bookID))
}

func TestInvariantsUnderMixedLoad(t *testing.T) {
	// Hammer one small catalog with lends and returns, then check the
	// copy and per-user invariants on the final state.
	r := setupRegistry(t, types.Config{})
	books := []int64{r.addBook(t, 2, 0), r.addBook(t, 1, 0)}
	users := make([]int64, 4)
	for i := range users {
		users[i] = r.addUser(t, fmt.Sprintf("user%d@example.com", i))
	}

	var wg sync.WaitGroup
	for _, userID := range users {
		for _, bookID := range books {
			wg.Add(1)
			go func(b, u int64) {
				defer wg.Done()
				if _, err := r.ledger.Lend(b, u); err != nil {
					return
				}
				_ = r.ledger.Return(b, u)
			}(bookID, userID)
		}
	}
	wg.Wait()

	require.NoError(t, r.store.Transact(func(tx types.Tx) error {
		for _, bookID := range books {
			book, err := tx.GetBook(bookID)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, book.LentCopies, 0)
			assert.LessOrEqual(t, book.LentCopies, book.TotalCopies)

			active, err := tx.CountBookLoans(bookID)
			require.NoError(t, err)
			assert.Equal(t, book.LentCopies, active,
				"loan rows and lent_copies must agree for book %d", bookID)
		}
		for _, userID := range users {
			held, err := tx.CountUserLoans(userID)
			require.NoError(t, err)
			assert.LessOrEqual(t, held, types.DefaultMaxLoansPerUser)
		}
		return nil
	}))
}
