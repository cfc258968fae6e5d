package bplustree

import (
	"errors"
	"io"

	"bplustree/codec"
)

// kvPair is one pending (key, value) entry in the bulk-load read-ahead
// buffer — the Go equivalent of the original source's
// std::deque<std::pair<K, V>>.
type kvPair[K any, V any] struct {
	key   K
	value V
}

// chooseDegree picks how many entries the next bulk-built node should
// take: the preferred (comfortably mid-range) size when plenty remains,
// an even half-split when taking the preferred amount would leave too
// small a remainder, or everything left when it already fits. This is
// what guarantees Load never produces a sparse node.
func chooseDegree(available, preferred, maxAllowed int) int {
	switch {
	case available >= 2*preferred:
		return preferred
	case available > maxAllowed:
		return available / 2
	default:
		return available
	}
}

// decodePair reads one (key, value) pair from r. ok is false with a nil
// error exactly at a clean end of stream (no bytes consumed for the key);
// any other error is a genuine mid-stream decode failure.
func decodePair[K any, V any](r io.Reader, kc codec.Codec[K], vc codec.Codec[V]) (key K, value V, ok bool, err error) {
	key, _, err = kc.Decode(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return key, value, false, nil
		}
		return key, value, false, err
	}
	value, _, err = vc.Decode(r)
	if err != nil {
		return key, value, false, err
	}
	return key, value, true, nil
}

// buildLeaves runs the leaf pass of bulk load: refill a read-ahead buffer
// of up to 2*PREF_LEAF pairs, then repeatedly consume a chosen degree's
// worth into a fresh leaf linked into the chain, until the stream and
// buffer are both exhausted.
func (t *Tree[K, V]) buildLeaves(r io.Reader, kc codec.Codec[K], vc codec.Codec[V]) ([]*node[K, V], error) {
	prefLeaf := t.leafCap * 3 / 4
	if prefLeaf < 1 {
		prefLeaf = 1
	}

	var buffer []kvPair[K, V]
	var leaves []*node[K, V]
	var prev *node[K, V]
	eof := false

	for !eof || len(buffer) > 0 {
		for !eof && len(buffer) < 2*prefLeaf {
			key, value, ok, err := decodePair(r, kc, vc)
			if err != nil {
				return nil, err
			}
			if !ok {
				eof = true
				break
			}
			buffer = append(buffer, kvPair[K, V]{key: key, value: value})
		}
		if len(buffer) == 0 {
			break
		}

		degree := chooseDegree(len(buffer), prefLeaf, t.leafCap)
		leaf := newLeaf[K, V]()
		leaf.keys = make([]K, degree)
		leaf.values = make([]V, degree)
		for i := 0; i < degree; i++ {
			leaf.keys[i] = buffer[i].key
			leaf.values[i] = buffer[i].value
		}
		buffer = buffer[degree:]

		if prev != nil {
			prev.next = leaf
			leaf.prev = prev
		}
		prev = leaf
		leaves = append(leaves, leaf)
	}
	return leaves, nil
}

// buildFromLeaves runs the inner passes of bulk load: repeatedly group a
// level of nodes into parents until exactly one remains, which becomes
// the root.
func buildFromLeaves[K any, V any](leaves []*node[K, V], innerCap int) *node[K, V] {
	if len(leaves) == 0 {
		return nil
	}
	level := make([]*node[K, V], len(leaves))
	copy(level, leaves)

	prefInner := innerCap * 3 / 4
	if prefInner < 1 {
		prefInner = 1
	}
	for len(level) > 1 {
		level = buildInnerLevel(level, prefInner, innerCap)
	}
	level[0].parent = nil
	return level[0]
}

// buildInnerLevel groups one level of nodes into parents for the level
// above. A lone leftover node is promoted directly into the next level
// rather than wrapped in a degenerate, separator-less parent — the fix
// for the original source's FindDegree(1, ...) == 1 bug (see spec's
// known-buggy-behaviors note).
func buildInnerLevel[K any, V any](level []*node[K, V], prefInner, innerCap int) []*node[K, V] {
	var next []*node[K, V]
	i := 0
	for i < len(level) {
		remaining := len(level) - i
		if remaining == 1 {
			next = append(next, level[i])
			i++
			continue
		}

		degree := chooseDegree(remaining, prefInner+1, innerCap+1)
		if degree < 2 {
			degree = 2
		}
		if degree > remaining {
			degree = remaining
		}

		parent := newInner[K, V]()
		parent.children = append(parent.children, level[i])
		for j := 1; j < degree; j++ {
			child := level[i+j]
			parent.keys = append(parent.keys, firstKey(child))
			parent.children = append(parent.children, child)
		}
		for _, c := range parent.children {
			c.parent = parent
		}
		i += degree
		next = append(next, parent)
	}
	return next
}

func firstKey[K any, V any](n *node[K, V]) K {
	for !n.isLeaf() {
		n = n.children[0]
	}
	return n.keys[0]
}
