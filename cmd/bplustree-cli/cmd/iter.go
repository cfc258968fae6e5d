package cmd

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"bplustree"
)

var iterReverse bool
var iterFrom string

// iterCmd represents the iter command.
var iterCmd = &cobra.Command{
	Use:   "iter",
	Short: "Iterate over key-value pairs in order",
	Long: `Iterate over every (key, value) pair in the data file in
ascending key order, or descending with --reverse. With --from, iteration
starts at the first key >= that value (or the first key <= it, in
reverse).

Example:
  bplustree-cli iter --from m --reverse`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromContext(cmd)
		tr, err := openTree(cfg)
		if err != nil {
			return fmt.Errorf("failed to open data file: %w", err)
		}

		if iterReverse {
			for c := startReverse(tr, iterFrom); c.Valid(); c.Prev() {
				fmt.Printf("%s\t%s\n", c.Key(), c.Value())
			}
			return nil
		}
		for c := startForward(tr, iterFrom); c.Valid(); c.Next() {
			fmt.Printf("%s\t%s\n", c.Key(), c.Value())
		}
		return nil
	},
}

func startForward(tr *bplustree.Tree[[]byte, []byte], from string) bplustree.MapCursor[[]byte, []byte] {
	if from == "" {
		return tr.Begin()
	}
	return tr.Find([]byte(from))
}

// startReverse positions at the last key <= from, or at Last() when from
// is empty or greater than every stored key.
func startReverse(tr *bplustree.Tree[[]byte, []byte], from string) bplustree.MapCursor[[]byte, []byte] {
	if from == "" {
		return tr.Last()
	}
	c := tr.Find([]byte(from))
	if !c.Valid() {
		return tr.Last()
	}
	if !bytes.Equal(c.Key(), []byte(from)) {
		c.Prev()
	}
	return c
}

func init() {
	rootCmd.AddCommand(iterCmd)
	iterCmd.Flags().BoolVar(&iterReverse, "reverse", false, "iterate in descending key order")
	iterCmd.Flags().StringVar(&iterFrom, "from", "", "start iteration at this key")
}
