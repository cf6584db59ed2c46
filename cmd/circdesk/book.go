// Book commands for the circdesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookfold/circdesk/pkg/catalog"
	"github.com/bookfold/circdesk/pkg/types"
)

var (
	bookAddTitle  string
	bookAddAuthor string
	bookAddYear   int
	bookAddCopies int

	bookGetTitle  string
	bookGetAuthor string
)

var bookCmd = &cobra.Command{
	Use:   "book",
	Short: "Manage the book catalog",
}

var bookAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fail("book add", err)
		}
		defer store.Close()

		book := &types.Book{
			Title:       bookAddTitle,
			Author:      bookAddAuthor,
			Year:        bookAddYear,
			TotalCopies: bookAddCopies,
		}
		if err := catalog.New(store).SaveBook(book); err != nil {
			fail("book add", err)
		}

		printEntity(book, fmt.Sprintf("Added book %d: %s", book.ID, book.Title))
		return nil
	},
}

var bookGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Find a book by title or author fragment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fail("book get", err)
		}
		defer store.Close()

		book, err := catalog.New(store).GetBook(bookGetTitle, bookGetAuthor)
		if err != nil {
			fail("book get", err)
		}

		printEntity(book, fmt.Sprintf("Book %d: %s by %s (%d of %d copies lent)",
			book.ID, book.Title, book.Author, book.LentCopies, book.TotalCopies))
		return nil
	},
}

var bookRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a book from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			fail("book rm", err)
		}

		store, _, err := openStore()
		if err != nil {
			fail("book rm", err)
		}
		defer store.Close()

		if err := catalog.New(store).DeleteBook(id); err != nil {
			fail("book rm", err)
		}

		fmt.Printf("Removed book %d\n", id)
		return nil
	},
}

func init() {
	bookAddCmd.Flags().StringVar(&bookAddTitle, "title", "", "book title")
	bookAddCmd.Flags().StringVar(&bookAddAuthor, "author", "", "book author (required)")
	bookAddCmd.Flags().IntVar(&bookAddYear, "year", 0, "publication year")
	bookAddCmd.Flags().IntVar(&bookAddCopies, "copies", 1, "total copies")
	bookAddCmd.MarkFlagRequired("author")

	bookGetCmd.Flags().StringVar(&bookGetTitle, "title", "", "title fragment")
	bookGetCmd.Flags().StringVar(&bookGetAuthor, "author", "", "author fragment")

	bookCmd.AddCommand(bookAddCmd)
	bookCmd.AddCommand(bookGetCmd)
	bookCmd.AddCommand(bookRmCmd)
}
