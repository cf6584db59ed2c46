// Init command creates the registry schema.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the registry storage",
	Long:  `Initialize the registry storage backend using configuration from file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openStore()
		if err != nil {
			fail("init", err)
		}
		defer store.Close()

		fmt.Println("Registry initialized successfully")
		return nil
	},
}
