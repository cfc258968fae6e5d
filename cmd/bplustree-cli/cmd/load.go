package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bplustree"
	"bplustree/codec"
)

// loadCmd represents the load command.
var loadCmd = &cobra.Command{
	Use:   "load <path>",
	Short: "Replace the data file's contents from another file",
	Long: `Bulk-load path and write the result out as the configured data
file, replacing whatever it previously held. path must be in the same
(key, value) pair format Save produces.

Example:
  bplustree-cli load ./backup.dat`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromContext(cmd)
		tr := bplustree.New[[]byte, []byte](bytesLess,
			bplustree.WithLeafCap(cfg.LeafCap),
			bplustree.WithInnerCap(cfg.InnerCap))

		if err := tr.Load(args[0], codec.Bytes(), codec.Bytes()); err != nil {
			return fmt.Errorf("failed to load %s: %w", args[0], err)
		}
		if err := saveTree(cfg, tr); err != nil {
			return fmt.Errorf("failed to save data file: %w", err)
		}
		fmt.Printf("loaded %d entries from %s\n", tr.Len(), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}
