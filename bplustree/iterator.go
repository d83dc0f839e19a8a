package bplus

import "iter"

// Iterator provides a forward-only scan over the leaf chain.
// Mutating the tree invalidates every open iterator.
type Iterator[V any] struct {
	tree  *BPlusTree[V]
	leaf  *Node[V]
	index int
}

// First positions the iterator at the smallest key.
func (t *BPlusTree[V]) First() *Iterator[V] {
	it := &Iterator[V]{tree: t, leaf: t.leftmostLeaf()}
	it.skipEmpty()
	return it
}

// SeekGE positions the iterator at the first key >= target.
func (t *BPlusTree[V]) SeekGE(target []byte) *Iterator[V] {
	it := &Iterator[V]{tree: t, leaf: t.findLeaf(target)}
	if it.leaf != nil {
		it.index = lowerBound(it.leaf.keys, target, t.cmp)
	}
	it.skipEmpty()
	return it
}

// skipEmpty moves past the end of the current leaf onto the next one.
func (it *Iterator[V]) skipEmpty() {
	for it.leaf != nil && it.index >= len(it.leaf.keys) {
		if it.leaf.next == 0 {
			it.leaf = nil
			return
		}
		it.leaf = it.tree.node(it.leaf.next)
		it.index = 0
	}
}

// Valid reports whether the iterator points at an entry.
func (it *Iterator[V]) Valid() bool {
	return it.leaf != nil
}

// Next advances the iterator. Returns false when exhausted.
func (it *Iterator[V]) Next() bool {
	if it.leaf == nil {
		return false
	}
	it.index++
	it.skipEmpty()
	return it.leaf != nil
}

// Key returns the current key. The slice is owned by the tree.
func (it *Iterator[V]) Key() []byte {
	if it.leaf == nil {
		return nil
	}
	return it.leaf.keys[it.index]
}

// Value returns the current value.
func (it *Iterator[V]) Value() V {
	if it.leaf == nil {
		var zero V
		return zero
	}
	return it.leaf.values[it.index]
}

// All yields every entry in ascending key order. Each call starts a fresh
// walk from the leftmost leaf.
func (t *BPlusTree[V]) All() iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		for it := t.First(); it.Valid(); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Range yields the entries with lo <= key <= hi in ascending order.
// A nil bound is open on that side.
func (t *BPlusTree[V]) Range(lo, hi []byte) iter.Seq2[[]byte, V] {
	return func(yield func([]byte, V) bool) {
		var it *Iterator[V]
		if lo == nil {
			it = t.First()
		} else {
			it = t.SeekGE(lo)
		}
		for ; it.Valid(); it.Next() {
			if hi != nil && t.cmp(it.Key(), hi) > 0 {
				return
			}
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys returns all keys in ascending order.
func (t *BPlusTree[V]) Keys() [][]byte {
	keys := make([][]byte, 0, t.size)
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}
