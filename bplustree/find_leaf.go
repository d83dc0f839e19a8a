package bplus

// childIndex picks the child of an internal node that may hold key:
// the first i with key <= keys[i], or the last child.
func (t *BPlusTree[V]) childIndex(n *Node[V], key []byte) int {
	return lowerBound(n.keys, key, t.cmp)
}

// findLeaf descends from the root to the leaf that holds key if it is present.
func (t *BPlusTree[V]) findLeaf(key []byte) *Node[V] {
	for id := t.root; id != 0; {
		n := t.node(id)
		if n.isLeaf() {
			return n
		}
		id = n.children[t.childIndex(n, key)]
	}
	return nil
}

// leftmostLeaf follows children[0] down to the first leaf of the chain.
func (t *BPlusTree[V]) leftmostLeaf() *Node[V] {
	for id := t.root; id != 0; {
		n := t.node(id)
		if n.isLeaf() {
			return n
		}
		id = n.children[0]
	}
	return nil
}

// rightmostLeaf follows the last child of every node starting at id.
func (t *BPlusTree[V]) rightmostLeaf(id int64) *Node[V] {
	n := t.node(id)
	for !n.isLeaf() {
		n = t.node(n.children[len(n.children)-1])
	}
	return n
}
