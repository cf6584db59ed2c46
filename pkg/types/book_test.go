package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookValidate(t *testing.T) {
	t.Run("author only is enough", func(t *testing.T) {
		book := Book{Author: "George Orwell"}
		assert.NoError(t, book.Validate())
	})

	t.Run("empty author", func(t *testing.T) {
		book := Book{Title: "1984"}
		err := book.Validate()
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, ErrAuthorEmpty)
	})

	t.Run("title too long", func(t *testing.T) {
		book := Book{Author: "George Orwell", Title: strings.Repeat("x", MaxTitleLen+1)}
		assert.ErrorIs(t, book.Validate(), ErrValidation)
	})

	t.Run("author too long", func(t *testing.T) {
		book := Book{Author: strings.Repeat("x", MaxAuthorLen+1)}
		assert.ErrorIs(t, book.Validate(), ErrValidation)
	})

	t.Run("negative copy counts", func(t *testing.T) {
		book := Book{Author: "George Orwell", TotalCopies: -1}
		assert.ErrorIs(t, book.Validate(), ErrValidation)
	})
}

func TestBookAvailable(t *testing.T) {
	assert.True(t, (&Book{TotalCopies: 3, LentCopies: 2}).Available())
	assert.False(t, (&Book{TotalCopies: 3, LentCopies: 3}).Available())
	assert.False(t, (&Book{}).Available())
}
