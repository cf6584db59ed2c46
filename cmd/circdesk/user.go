// User commands for the circdesk CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bookfold/circdesk/pkg/catalog"
	"github.com/bookfold/circdesk/pkg/types"
)

var (
	userAddFirstName string
	userAddLastName  string
	userAddAge       int
	userAddGender    string
	userAddEmail     string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage the borrower roster",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a borrower",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fail("user add", err)
		}
		defer store.Close()

		user := &types.User{
			FirstName: userAddFirstName,
			LastName:  userAddLastName,
			Age:       userAddAge,
			Gender:    userAddGender,
			Email:     userAddEmail,
		}
		if err := catalog.New(store).SaveUser(user); err != nil {
			fail("user add", err)
		}

		printEntity(user, fmt.Sprintf("Added user %d: %s", user.ID, user.Email))
		return nil
	},
}

var userGetCmd = &cobra.Command{
	Use:   "get <email>",
	Short: "Find a borrower by email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fail("user get", err)
		}
		defer store.Close()

		user, err := catalog.New(store).GetUser(args[0])
		if err != nil {
			fail("user get", err)
		}

		printEntity(user, fmt.Sprintf("User %d: %s %s <%s>",
			user.ID, user.FirstName, user.LastName, user.Email))
		return nil
	},
}

var userRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a borrower from the roster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			fail("user rm", err)
		}

		store, _, err := openStore()
		if err != nil {
			fail("user rm", err)
		}
		defer store.Close()

		if err := catalog.New(store).DeleteUser(id); err != nil {
			fail("user rm", err)
		}

		fmt.Printf("Removed user %d\n", id)
		return nil
	},
}

func init() {
	userAddCmd.Flags().StringVar(&userAddFirstName, "first-name", "", "first name")
	userAddCmd.Flags().StringVar(&userAddLastName, "last-name", "", "last name")
	userAddCmd.Flags().IntVar(&userAddAge, "age", 0, "age (required, 15 or older)")
	userAddCmd.Flags().StringVar(&userAddGender, "gender", "", "gender (required)")
	userAddCmd.Flags().StringVar(&userAddEmail, "email", "", "email (required, unique)")
	userAddCmd.MarkFlagRequired("age")
	userAddCmd.MarkFlagRequired("gender")
	userAddCmd.MarkFlagRequired("email")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userGetCmd)
	userCmd.AddCommand(userRmCmd)
}
