package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete a key",
	Long: `Delete a key and its value from the data file.

Example:
  bplustree-cli delete mykey`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromContext(cmd)
		tr, err := openTree(cfg)
		if err != nil {
			return fmt.Errorf("failed to open data file: %w", err)
		}

		if !tr.Erase([]byte(args[0])) {
			return fmt.Errorf("key %q not found", args[0])
		}

		if err := saveTree(cfg, tr); err != nil {
			return fmt.Errorf("failed to save data file: %w", err)
		}
		fmt.Printf("deleted key %q\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
