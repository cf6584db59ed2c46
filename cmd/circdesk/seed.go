// Seed command populates the registry with a small sample catalog.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookfold/circdesk/pkg/catalog"
	"github.com/bookfold/circdesk/pkg/types"
)

// Sample rows inserted by the seed command.
var (
	seedBooks = []types.Book{
		{Title: "The Little Prince", Author: "Antoine de Saint-Exupéry", Year: 1943, TotalCopies: 3},
		{Title: "1984", Author: "George Orwell", Year: 1949, TotalCopies: 2},
	}
	seedUsers = []types.User{
		{FirstName: "Ali", LastName: "Rezaei", Age: 20, Gender: "Male", Email: "ali@example.com"},
		{FirstName: "Reza", LastName: "Mohammadi", Age: 25, Gender: "Male", Email: "reza@example.com"},
	}
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the registry with sample books and borrowers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fail("seed", err)
		}
		defer store.Close()

		c := catalog.New(store)
		for i := range seedBooks {
			book := seedBooks[i]
			if err := c.SaveBook(&book); err != nil {
				fail("seed book", err)
			}
			fmt.Printf("Added book %d: %s\n", book.ID, book.Title)
		}
		for i := range seedUsers {
			user := seedUsers[i]
			if err := c.SaveUser(&user); err != nil {
				fail("seed user", err)
			}
			fmt.Printf("Added user %d: %s\n", user.ID, user.Email)
		}

		return nil
	},
}
