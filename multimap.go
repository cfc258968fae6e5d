package bplustree

import "bplustree/codec"

// Equal reports whether a and b are the same value; MultiValuedTree needs
// it only for per-entry Erase.
type Equal[V any] func(a, b V) bool

// MultiValuedTree is an ordered multi-valued map: each key holds an
// ordered list of values, in insertion order. It is a thin layer over a
// Tree[K, []V], mirroring the original source's Multimap<K, V> (itself
// Map<K, std::vector<V>> plus a wrapper).
type MultiValuedTree[K any, V any] struct {
	tree  *Tree[K, []V]
	equal Equal[V]
}

// NewMultiValuedTree constructs an empty MultiValuedTree ordered by less.
// equal is used only by EraseValue to find a matching value within a key's
// list.
func NewMultiValuedTree[K any, V any](less Less[K], equal Equal[V], opts ...Option) *MultiValuedTree[K, V] {
	return &MultiValuedTree[K, V]{tree: New[K, []V](less, opts...), equal: equal}
}

// Clear removes every entry.
func (m *MultiValuedTree[K, V]) Clear() { m.tree.Clear() }

// Len reports the number of distinct keys (not the total value count).
func (m *MultiValuedTree[K, V]) Len() int { return m.tree.Len() }

// Contains reports whether key has at least one value.
func (m *MultiValuedTree[K, V]) Contains(key K) bool { return m.tree.Contains(key) }

// Get returns the full ordered value list for key, and whether key is
// present at all.
func (m *MultiValuedTree[K, V]) Get(key K) ([]V, bool) {
	return m.tree.Get(key)
}

// Put appends value to key's list, creating the list if key is new.
func (m *MultiValuedTree[K, V]) Put(key K, value V) {
	leaf, idx, found := m.tree.locate(key)
	if found {
		leaf.values[idx] = append(leaf.values[idx], value)
		return
	}
	m.tree.Put(key, []V{value})
}

// Erase removes key and its entire value list. Reports whether key was
// present.
func (m *MultiValuedTree[K, V]) Erase(key K) bool {
	return m.tree.Erase(key)
}

// EraseValue removes the first value under key equal to value. If that
// was the list's only element, the key itself is removed. Reports
// whether anything was removed.
func (m *MultiValuedTree[K, V]) EraseValue(key K, value V) bool {
	leaf, idx, found := m.tree.locate(key)
	if !found {
		return false
	}
	list := leaf.values[idx]
	if len(list) == 1 {
		if !m.equal(list[0], value) {
			return false
		}
		return m.tree.Erase(key)
	}
	for i, v := range list {
		if m.equal(v, value) {
			leaf.values[idx] = append(list[:i], list[i+1:]...)
			return true
		}
	}
	return false
}

// Find positions a MultiCursor at the first value stored under key, or
// at End if key is absent.
func (m *MultiValuedTree[K, V]) Find(key K) MultiCursor[K, V] {
	leaf, idx, found := m.tree.locate(key)
	if !found {
		return MultiCursor[K, V]{}
	}
	return MultiCursor[K, V]{node: leaf, idx: idx, subIdx: 0}
}

// Begin positions a cursor at the first (key, value) pair in ascending
// key order (and insertion order within a key), or at End if empty.
func (m *MultiValuedTree[K, V]) Begin() MultiCursor[K, V] {
	leaf := m.tree.firstLeaf()
	if leaf == nil || len(leaf.keys) == 0 {
		return MultiCursor[K, V]{}
	}
	return MultiCursor[K, V]{node: leaf, idx: 0, subIdx: 0}
}

// End returns the sentinel "past the last entry" cursor.
func (m *MultiValuedTree[K, V]) End() MultiCursor[K, V] {
	return MultiCursor[K, V]{}
}

// Save persists the tree via tree.Save, wrapping vc in a length-prefixed
// Slice codec so each key's value list round-trips in insertion order.
func (m *MultiValuedTree[K, V]) Save(path string, kc codec.Codec[K], vc codec.Codec[V]) error {
	return m.tree.Save(path, kc, codec.Slice(vc))
}

// Load replaces the tree's contents via tree.Load, using the same
// Slice-wrapped codec Save produces.
func (m *MultiValuedTree[K, V]) Load(path string, kc codec.Codec[K], vc codec.Codec[V]) error {
	return m.tree.Load(path, kc, codec.Slice(vc))
}

// MultiCursor is an external position into a MultiValuedTree: a leaf
// reference, an intra-leaf key index, and a sub-index into that key's
// value list.
type MultiCursor[K any, V any] struct {
	node   *node[K, []V]
	idx    int
	subIdx int
}

// Valid reports whether the cursor refers to a real value.
func (c MultiCursor[K, V]) Valid() bool {
	return c.node != nil && c.idx >= 0 && c.idx < len(c.node.keys) &&
		c.subIdx >= 0 && c.subIdx < len(c.node.values[c.idx])
}

// Key returns the key at the cursor's position. Zero value if invalid.
func (c MultiCursor[K, V]) Key() K {
	if !c.Valid() {
		var zero K
		return zero
	}
	return c.node.keys[c.idx]
}

// Value returns the single value at the cursor's position (the list
// entry at subIdx, not the whole list). Zero value if invalid.
func (c MultiCursor[K, V]) Value() V {
	if !c.Valid() {
		var zero V
		return zero
	}
	return c.node.values[c.idx][c.subIdx]
}

// Next advances to the next value: within the current key's list first,
// then to the next key, then to the next leaf. A no-op once invalid.
func (c *MultiCursor[K, V]) Next() {
	if !c.Valid() {
		return
	}
	list := c.node.values[c.idx]
	if c.subIdx+1 < len(list) {
		c.subIdx++
		return
	}
	if c.idx+1 < len(c.node.keys) {
		c.idx++
		c.subIdx = 0
		return
	}
	if c.node.next != nil {
		c.node = c.node.next
		c.idx = 0
		c.subIdx = 0
		return
	}
	c.node = nil
	c.idx, c.subIdx = 0, 0
}

// Prev moves to the previous value, symmetric to Next. A no-op once
// invalid.
func (c *MultiCursor[K, V]) Prev() {
	if !c.Valid() {
		return
	}
	if c.subIdx > 0 {
		c.subIdx--
		return
	}
	if c.idx > 0 {
		c.idx--
		c.subIdx = len(c.node.values[c.idx]) - 1
		return
	}
	if c.node.prev != nil {
		c.node = c.node.prev
		c.idx = len(c.node.keys) - 1
		c.subIdx = len(c.node.values[c.idx]) - 1
		return
	}
	c.node = nil
	c.idx, c.subIdx = 0, 0
}

// Equal reports whether two cursors refer to the same position.
func (c MultiCursor[K, V]) Equal(other MultiCursor[K, V]) bool {
	if !c.Valid() && !other.Valid() {
		return true
	}
	return c.node == other.node && c.idx == other.idx && c.subIdx == other.subIdx
}
