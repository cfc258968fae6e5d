package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// getCmd represents the get command.
var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get the value for a key",
	Long: `Get the value stored under a key in the data file.

Example:
  bplustree-cli get mykey`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromContext(cmd)
		tr, err := openTree(cfg)
		if err != nil {
			return fmt.Errorf("failed to open data file: %w", err)
		}

		value, ok := tr.Get([]byte(args[0]))
		if !ok {
			return fmt.Errorf("key %q not found", args[0])
		}
		fmt.Println(string(value))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
