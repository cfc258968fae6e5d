package cmd

import (
	"bytes"

	"bplustree"
	"bplustree/codec"
	"bplustree/internal/config"
)

func bytesLess(a, b []byte) bool { return bytes.Compare(a, b) < 0 }

// openTree loads the tree stored at cfg.DataFile, or returns an empty one
// if the file does not yet exist (per Load's file-system contract).
func openTree(cfg *config.Config) (*bplustree.Tree[[]byte, []byte], error) {
	tr := bplustree.New[[]byte, []byte](bytesLess,
		bplustree.WithLeafCap(cfg.LeafCap),
		bplustree.WithInnerCap(cfg.InnerCap))
	if err := tr.Load(cfg.DataFile, codec.Bytes(), codec.Bytes()); err != nil {
		return nil, err
	}
	return tr, nil
}

func saveTree(cfg *config.Config, tr *bplustree.Tree[[]byte, []byte]) error {
	return tr.Save(cfg.DataFile, codec.Bytes(), codec.Bytes())
}
