// Lend command for the circdesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookfold/circdesk/pkg/ledger"
)

var lendCmd = &cobra.Command{
	Use:   "lend <book-id> <user-id>",
	Short: "Lend a book to a borrower",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseID(args[0])
		if err != nil {
			fail("lend", err)
		}
		userID, err := parseID(args[1])
		if err != nil {
			fail("lend", err)
		}

		store, cfg, err := openStore()
		if err != nil {
			fail("lend", err)
		}
		defer store.Close()

		loan, err := ledger.New(store, cfg).Lend(bookID, userID)
		if err != nil {
			fail("lend", err)
		}

		printEntity(loan, fmt.Sprintf("Lent book %d to user %d (receipt %s)",
			loan.BookID, loan.UserID, loan.Reference))
		return nil
	},
}
