package bplustree

import (
	"bufio"
	"os"

	"bplustree/codec"
)

// Save writes every (key, value) entry to path in ascending-key order, as
// a flat sequence of codec-framed pairs with no header, magic, version,
// or trailer — a reader must rely on end-of-stream to know when to stop.
// path is truncated/created as needed. If it cannot be opened for
// writing, Save is a silent no-op (matching Load's file-system contract).
func (t *Tree[K, V]) Save(path string, kc codec.Codec[K], vc codec.Codec[V]) error {
	f, err := os.Create(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for leaf := t.firstLeaf(); leaf != nil; leaf = leaf.next {
		for i := range leaf.keys {
			if _, err := kc.Encode(w, leaf.keys[i]); err != nil {
				return err
			}
			if _, err := vc.Encode(w, leaf.values[i]); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

// Load replaces the tree's contents by bulk-building from the (key,
// value) pairs stored at path, in the same format Save produces. If path
// does not name an existing regular file, Load silently leaves the tree
// unchanged. An empty file produces an empty tree. A mid-stream decode
// error discards any nodes already built for this call and leaves the
// tree empty.
func (t *Tree[K, V]) Load(path string, kc codec.Codec[K], vc codec.Codec[V]) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	leaves, err := t.buildLeaves(bufio.NewReader(f), kc, vc)
	if err != nil {
		t.root = nil
		return err
	}
	t.root = buildFromLeaves(leaves, t.innerCap)
	return nil
}
