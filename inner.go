package bplustree

// innerChildIndex returns child's position among n's children, or -1 if
// not found. Mirrors the teacher's getChildIndexFromParentChildren.
func innerChildIndex[K any, V any](n, child *node[K, V]) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// innerKeyIndex returns the position of a separator exactly equal to key,
// or (-1, false) if none exists.
func innerKeyIndex[K any, V any](n *node[K, V], key K, less Less[K]) (int, bool) {
	for i, k := range n.keys {
		if !less(k, key) && !less(key, k) {
			return i, true
		}
	}
	return -1, false
}

// descend returns the child n would route key into: the first child whose
// separator is strictly greater than key, or the last child if none is.
// Mirrors the teacher's traverseRightOrLeft.
func descend[K any, V any](n *node[K, V], key K, less Less[K]) *node[K, V] {
	for i, k := range n.keys {
		if less(key, k) {
			return n.children[i]
		}
	}
	return n.children[len(n.keys)]
}

// innerInsert records that child left has just split into (left, sep,
// right): seeds an empty node with both children, or inserts sep/right
// immediately after left's existing position. Sets both children's parent
// to n. Mirrors the teacher's insertKeyInNodeInPlace plus its root-seeding
// special case (InnerNode::Insert in the original source).
func innerInsert[K any, V any](n *node[K, V], left *node[K, V], sep K, right *node[K, V]) {
	left.parent = n
	right.parent = n

	if len(n.children) == 0 {
		n.children = append(n.children, left, right)
		n.keys = append(n.keys, sep)
		return
	}

	pos := innerChildIndex(n, left)
	n.keys = append(n.keys, sep)
	copy(n.keys[pos+1:], n.keys[pos:])
	n.keys[pos] = sep

	n.children = append(n.children, nil)
	copy(n.children[pos+2:], n.children[pos+1:])
	n.children[pos+1] = right
}

// innerErase removes key and the specified child reference. Their
// positions are located independently; if either is absent the call is a
// no-op, matching InnerNode::Erase in the original source.
func innerErase[K any, V any](n *node[K, V], key K, child *node[K, V], less Less[K]) {
	keyIdx, found := innerKeyIndex(n, key, less)
	if !found {
		return
	}
	childIdx := innerChildIndex(n, child)
	if childIdx == -1 {
		return
	}
	n.keys = append(n.keys[:keyIdx], n.keys[keyIdx+1:]...)
	n.children = append(n.children[:childIdx], n.children[childIdx+1:]...)
}

// innerSplit splits an inner node that has just overflowed (len(keys) ==
// innerCap+1). The median key moves up and is returned as upKey; it is
// *not* kept in either side. The upper half of keys/children moves to a
// new sibling, whose children have their parent reassigned.
func innerSplit[K any, V any](n *node[K, V]) (sibling *node[K, V], upKey K) {
	total := len(n.keys)
	left := total / 2
	upKey = n.keys[left]

	sibling = newInner[K, V]()
	sibling.keys = append(sibling.keys, n.keys[left+1:]...)
	sibling.children = append(sibling.children, n.children[left+1:]...)

	n.keys = n.keys[:left]
	n.children = n.children[:left+1]

	for _, c := range sibling.children {
		c.parent = sibling
	}
	sibling.parent = n.parent
	return sibling, upKey
}

// innerRedistribute rotates one separator/child through the parent between
// n and sibling (n's immediate right neighbor), provided one side has at
// least two more keys than the other. Mirrors
// InnerNode<K,V>::Redistribute in the original source.
func innerRedistribute[K any, V any](n, sibling *node[K, V]) bool {
	sepIdx := n.siblingIndex()
	parent := n.parent
	switch {
	case len(sibling.keys) >= len(n.keys)+2:
		sep := parent.keys[sepIdx]
		n.keys = append(n.keys, sep)
		movedChild := sibling.children[0]
		sibling.children = sibling.children[1:]
		movedChild.parent = n
		n.children = append(n.children, movedChild)

		parent.keys[sepIdx] = sibling.keys[0]
		sibling.keys = sibling.keys[1:]
		return true
	case len(n.keys) >= len(sibling.keys)+2:
		sep := parent.keys[sepIdx]
		sibling.keys = append([]K{sep}, sibling.keys...)
		movedChild := n.children[len(n.children)-1]
		n.children = n.children[:len(n.children)-1]
		movedChild.parent = sibling
		sibling.children = append([]*node[K, V]{movedChild}, sibling.children...)

		parent.keys[sepIdx] = n.keys[len(n.keys)-1]
		n.keys = n.keys[:len(n.keys)-1]
		return true
	default:
		return false
	}
}

// innerCoalesce merges sibling (n's immediate right neighbor) into n,
// pulling the separator between them down from the parent, provided the
// combined key count fits within innerCap. The caller is responsible for
// removing that separator from the parent and discarding sibling.
func innerCoalesce[K any, V any](n, sibling *node[K, V], innerCap int) bool {
	if len(n.keys)+1+len(sibling.keys) > innerCap {
		return false
	}
	sepIdx := n.siblingIndex()
	sep := n.parent.keys[sepIdx]

	n.keys = append(n.keys, sep)
	n.keys = append(n.keys, sibling.keys...)
	for _, c := range sibling.children {
		c.parent = n
	}
	n.children = append(n.children, sibling.children...)
	return true
}
