// Return command for the circdesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookfold/circdesk/pkg/ledger"
)

var returnCmd = &cobra.Command{
	Use:   "return <book-id> <user-id>",
	Short: "Return a borrowed book",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bookID, err := parseID(args[0])
		if err != nil {
			fail("return", err)
		}
		userID, err := parseID(args[1])
		if err != nil {
			fail("return", err)
		}

		store, cfg, err := openStore()
		if err != nil {
			fail("return", err)
		}
		defer store.Close()

		if err := ledger.New(store, cfg).Return(bookID, userID); err != nil {
			fail("return", err)
		}

		fmt.Printf("Book %d returned by user %d\n", bookID, userID)
		return nil
	},
}
