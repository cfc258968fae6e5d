package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bplustree/codec"
)

// saveCmd represents the save command.
var saveCmd = &cobra.Command{
	Use:   "save <path>",
	Short: "Copy the data file to another path",
	Long: `Load the configured data file and write it back out at path,
rebuilding the on-disk layout via Save. Useful for compacting a file after
many scattered deletes.

Example:
  bplustree-cli save ./backup.dat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromContext(cmd)
		tr, err := openTree(cfg)
		if err != nil {
			return fmt.Errorf("failed to open data file: %w", err)
		}

		if err := tr.Save(args[0], codec.Bytes(), codec.Bytes()); err != nil {
			return fmt.Errorf("failed to save to %s: %w", args[0], err)
		}
		fmt.Printf("saved %d entries to %s\n", tr.Len(), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
