package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// putCmd represents the put command.
var putCmd = &cobra.Command{
	Use:   "put <key> <value>",
	Short: "Put a key-value pair",
	Long: `Put a key-value pair into the data file.

Example:
  bplustree-cli put mykey myvalue`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromContext(cmd)
		tr, err := openTree(cfg)
		if err != nil {
			return fmt.Errorf("failed to open data file: %w", err)
		}

		tr.Put([]byte(args[0]), []byte(args[1]))

		if err := saveTree(cfg, tr); err != nil {
			return fmt.Errorf("failed to save data file: %w", err)
		}
		fmt.Printf("put key %q\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(putCmd)
}
