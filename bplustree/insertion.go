package bplus

import "bytes"

// Insert stores value under key. Inserting an existing key replaces its value
// and returns true; the tree shape is left untouched in that case apart from
// splits already performed on the way down.
func (t *BPlusTree[V]) Insert(key []byte, value V) bool {
	key = bytes.Clone(key)

	// If tree is empty
	if t.root == 0 {
		root := t.nodes.allocate(NodeLeaf)
		root.keys = append(root.keys, key)
		root.values = append(root.values, value)
		t.root = root.id
		t.size++
		return false
	}

	root := t.node(t.root)
	if len(root.keys) == t.maxKeys() {
		// grow the tree by one level before descending
		newRoot := t.nodes.allocate(NodeInternal)
		newRoot.children = append(newRoot.children, root.id)
		t.root = newRoot.id
		t.splitChild(newRoot, 0)
		root = newRoot
	}

	replaced := t.insertNonFull(root, key, value)
	if !replaced {
		t.size++
	}
	return replaced
}

// insertNonFull walks down from a node that has room for one more key,
// splitting every full child before stepping into it.
func (t *BPlusTree[V]) insertNonFull(n *Node[V], key []byte, value V) bool {
	for !n.isLeaf() {
		i := t.childIndex(n, key)
		if len(t.node(n.children[i]).keys) == t.maxKeys() {
			t.splitChild(n, i)
			// the promoted separator may send us to the new right half
			if t.cmp(key, n.keys[i]) > 0 {
				i++
			}
		}
		n = t.node(n.children[i])
	}

	i := lowerBound(n.keys, key, t.cmp)
	if i < len(n.keys) && t.cmp(n.keys[i], key) == 0 {
		n.values[i] = value
		return true
	}
	n.keys = insert(n.keys, i, key)
	n.values = insert(n.values, i, value)
	return false
}
