package bplus

import (
	"github.com/cockroachdb/errors"
)

// Stats summarises the shape of a tree.
type Stats struct {
	Height   int
	Nodes    int // reachable from the root
	Leaves   int
	Keys     int // entries stored in leaves
	Arena    int // nodes allocated in the arena
	MaxKeys  int
	MinKeys  int
	Capacity int // Leaves * MaxKeys
}

// Stats walks the whole tree.
func (t *BPlusTree[V]) Stats() Stats {
	s := Stats{
		Height:  t.Height(),
		Arena:   t.nodes.live(),
		MaxKeys: t.maxKeys(),
		MinKeys: t.minKeys(),
	}
	if t.root == 0 {
		return s
	}
	queue := []int64{t.root}
	for len(queue) > 0 {
		n := t.node(queue[0])
		queue = queue[1:]
		s.Nodes++
		if n.isLeaf() {
			s.Leaves++
			s.Keys += len(n.keys)
			continue
		}
		queue = append(queue, n.children...)
	}
	s.Capacity = s.Leaves * s.MaxKeys
	return s
}

// Verify checks the structural invariants of the tree and returns the first
// violation found:
//   - every node holds at most order-1 strictly increasing keys
//   - internal nodes have len(keys)+1 children, leaves one value per key
//   - separator keys[i] equals the largest key under children[i]
//   - all leaves sit at the same depth and the leaf chain visits them in order
//   - the entry count matches Len and no node is leaked in the arena
func (t *BPlusTree[V]) Verify() error {
	if t.root == 0 {
		if t.size != 0 {
			return errors.Newf("empty tree reports %d keys", t.size)
		}
		if live := t.nodes.live(); live != 0 {
			return errors.Newf("empty tree still owns %d nodes", live)
		}
		return nil
	}

	v := verifier[V]{t: t, leafDepth: -1}
	if _, err := v.check(t.root, 0, nil, nil); err != nil {
		return err
	}
	if v.keys != t.size {
		return errors.Newf("leaves hold %d keys, tree reports %d", v.keys, t.size)
	}
	if live := t.nodes.live(); live != v.nodes {
		return errors.Newf("%d nodes reachable, %d allocated", v.nodes, live)
	}

	// leaf chain must match the left-to-right order of the descent
	leaf := t.leftmostLeaf()
	for i, id := range v.leaves {
		if leaf == nil || leaf.id != id {
			return errors.Newf("leaf chain diverges at position %d", i)
		}
		if leaf.next == 0 {
			leaf = nil
		} else {
			leaf = t.node(leaf.next)
		}
	}
	if leaf != nil {
		return errors.Newf("leaf chain continues past last leaf into node %d", leaf.id)
	}
	return nil
}

type verifier[V any] struct {
	t         *BPlusTree[V]
	leafDepth int
	leaves    []int64
	nodes     int
	keys      int
}

// check validates the subtree at id whose keys must lie in (lo, hi] and
// returns its largest key.
func (v *verifier[V]) check(id int64, depth int, lo, hi []byte) ([]byte, error) {
	t := v.t
	n, ok := t.nodes.nodes[id]
	if !ok {
		return nil, errors.Newf("node %d referenced but not allocated", id)
	}
	v.nodes++

	if len(n.keys) > t.maxKeys() {
		return nil, errors.Newf("node %d holds %d keys, max %d", id, len(n.keys), t.maxKeys())
	}
	if len(n.keys) == 0 {
		return nil, errors.Newf("node %d is empty", id)
	}
	for i, k := range n.keys {
		if i > 0 && t.cmp(n.keys[i-1], k) >= 0 {
			return nil, errors.Newf("node %d keys out of order at %d", id, i)
		}
		if lo != nil && t.cmp(k, lo) <= 0 {
			return nil, errors.Newf("node %d key %q not above lower bound %q", id, k, lo)
		}
		if hi != nil && t.cmp(k, hi) > 0 {
			return nil, errors.Newf("node %d key %q above upper bound %q", id, k, hi)
		}
	}

	if n.isLeaf() {
		if len(n.values) != len(n.keys) || len(n.children) != 0 {
			return nil, errors.Newf("leaf %d has %d keys, %d values, %d children",
				id, len(n.keys), len(n.values), len(n.children))
		}
		if v.leafDepth == -1 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return nil, errors.Newf("leaf %d at depth %d, expected %d", id, depth, v.leafDepth)
		}
		v.leaves = append(v.leaves, id)
		v.keys += len(n.keys)
		return n.keys[len(n.keys)-1], nil
	}

	if len(n.children) != len(n.keys)+1 {
		return nil, errors.Newf("internal node %d has %d keys and %d children",
			id, len(n.keys), len(n.children))
	}
	if n.next != 0 {
		return nil, errors.Newf("internal node %d has a next link", id)
	}
	var largest []byte
	for i, c := range n.children {
		clo, chi := lo, hi
		if i > 0 {
			clo = n.keys[i-1]
		}
		if i < len(n.keys) {
			chi = n.keys[i]
		}
		cmax, err := v.check(c, depth+1, clo, chi)
		if err != nil {
			return nil, err
		}
		if i < len(n.keys) && t.cmp(cmax, n.keys[i]) != 0 {
			return nil, errors.Newf("node %d separator %q does not match largest key %q of child %d",
				id, n.keys[i], cmax, c)
		}
		largest = cmax
	}
	return largest, nil
}
