package bplustree

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringEqual(a, b string) bool { return a == b }

func newIntMultiTree(opts ...Option) *MultiValuedTree[int, string] {
	return NewMultiValuedTree[int, string](intLess, stringEqual, opts...)
}

func TestMultiPutAppends(t *testing.T) {
	m := newIntMultiTree(WithLeafCap(4), WithInnerCap(4))

	m.Put(1, "a")
	m.Put(1, "b")
	m.Put(1, "c")

	vals, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, vals)
	assert.Equal(t, 1, m.Len(), "one distinct key despite three values")
}

func TestMultiEraseKey(t *testing.T) {
	m := newIntMultiTree(WithLeafCap(4), WithInnerCap(4))
	m.Put(1, "a")
	m.Put(1, "b")
	m.Put(2, "c")

	assert.True(t, m.Erase(1))
	assert.False(t, m.Contains(1))
	assert.True(t, m.Contains(2))
}

func TestMultiEraseValue(t *testing.T) {
	m := newIntMultiTree(WithLeafCap(4), WithInnerCap(4))
	m.Put(1, "a")
	m.Put(1, "b")
	m.Put(1, "c")

	assert.True(t, m.EraseValue(1, "b"))
	vals, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "c"}, vals)

	assert.False(t, m.EraseValue(1, "not-there"))
}

func TestMultiEraseValueDropsKeyWhenLastRemoved(t *testing.T) {
	m := newIntMultiTree(WithLeafCap(4), WithInnerCap(4))
	m.Put(1, "only")

	assert.True(t, m.EraseValue(1, "only"))
	assert.False(t, m.Contains(1))
}

func TestMultiEraseValueMissingKey(t *testing.T) {
	m := newIntMultiTree(WithLeafCap(4), WithInnerCap(4))
	assert.False(t, m.EraseValue(1, "x"))
}

func TestMultiCursorAdvancesWithinAndAcrossKeys(t *testing.T) {
	m := newIntMultiTree(WithLeafCap(4), WithInnerCap(4))
	m.Put(1, "a")
	m.Put(1, "b")
	m.Put(2, "c")

	c := m.Find(1)
	require.True(t, c.Valid())
	assert.Equal(t, 1, c.Key())
	assert.Equal(t, "a", c.Value())

	c.Next()
	assert.True(t, c.Valid())
	assert.Equal(t, 1, c.Key())
	assert.Equal(t, "b", c.Value())

	c.Next()
	assert.True(t, c.Valid())
	assert.Equal(t, 2, c.Key())
	assert.Equal(t, "c", c.Value())

	c.Next()
	assert.False(t, c.Valid())
}

func TestMultiCursorPrev(t *testing.T) {
	m := newIntMultiTree(WithLeafCap(4), WithInnerCap(4))
	m.Put(1, "a")
	m.Put(1, "b")
	m.Put(2, "c")

	c := m.Find(2)
	require.True(t, c.Valid())
	c.Prev()
	assert.Equal(t, 1, c.Key())
	assert.Equal(t, "b", c.Value())

	c.Prev()
	assert.Equal(t, 1, c.Key())
	assert.Equal(t, "a", c.Value())

	c.Prev()
	assert.False(t, c.Valid())
}

func TestMultiBeginIteratesAllValuesInOrder(t *testing.T) {
	m := newIntMultiTree(WithLeafCap(3), WithInnerCap(3))
	for i := 0; i < 10; i++ {
		m.Put(i, fmt.Sprintf("v%d-0", i))
		m.Put(i, fmt.Sprintf("v%d-1", i))
	}

	var keys []int
	var count int
	for c := m.Begin(); c.Valid(); c.Next() {
		keys = append(keys, c.Key())
		count++
	}
	assert.Equal(t, 20, count)
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, keys[2*i])
		assert.Equal(t, i, keys[2*i+1])
	}
}

func TestMultiGetMissing(t *testing.T) {
	m := newIntMultiTree()
	_, ok := m.Get(1)
	assert.False(t, ok)
}

func TestMultiFindMissingKeyIsEnd(t *testing.T) {
	m := newIntMultiTree()
	m.Put(1, "a")
	assert.False(t, m.Find(2).Valid())
}

func TestMultiRandomizedOperations(t *testing.T) {
	seed := int64(99)
	rnd := rand.New(rand.NewSource(seed))

	m := newIntMultiTree(WithLeafCap(5), WithInnerCap(5))
	ref := make(map[int][]string)

	const poolSize = 100
	const ops = 2000
	for i := 0; i < ops; i++ {
		k := rnd.Intn(poolSize)
		switch rnd.Intn(3) {
		case 0:
			_, existed := ref[k]
			erased := m.Erase(k)
			assert.Equal(t, existed, erased)
			delete(ref, k)
		case 1:
			list := ref[k]
			if len(list) > 0 {
				v := list[rnd.Intn(len(list))]
				removed := m.EraseValue(k, v)
				assert.True(t, removed)
				for idx, cand := range list {
					if cand == v {
						list = append(list[:idx], list[idx+1:]...)
						break
					}
				}
				if len(list) == 0 {
					delete(ref, k)
				} else {
					ref[k] = list
				}
			}
		default:
			v := fmt.Sprintf("v%d", rnd.Intn(1_000_000))
			m.Put(k, v)
			ref[k] = append(ref[k], v)
		}
	}

	for k, want := range ref {
		got, ok := m.Get(k)
		if assert.True(t, ok, "expected key %d present", k) {
			assert.Equal(t, want, got, "value list mismatch for key %d", k)
		}
	}
	for k := 0; k < poolSize; k++ {
		if _, exists := ref[k]; !exists {
			assert.False(t, m.Contains(k))
		}
	}
}
