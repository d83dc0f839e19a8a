package bplus

import "github.com/cockroachdb/errors"

// Delete removes key from the tree and reports whether it was present.
// Deficient children are refilled on the way down, so a single pass is enough.
func (t *BPlusTree[V]) Delete(key []byte) bool {
	if t.root == 0 {
		return false
	}

	removed := t.deleteRecursive(t.node(t.root), key)
	if removed {
		t.size--
	}

	root := t.node(t.root)
	if len(root.keys) == 0 {
		// collapse root
		old := root.id
		if root.isLeaf() {
			t.root = 0
		} else {
			t.root = root.children[0]
		}
		t.nodes.release(old)
	}
	return removed
}

func (t *BPlusTree[V]) deleteRecursive(node *Node[V], key []byte) bool {
	if node.isLeaf() {
		idx := binarySearch(node.keys, key, t.cmp)
		if idx == -1 {
			return false
		}
		node.keys = remove(node.keys, idx)
		node.values = remove(node.values, idx)
		return true
	}

	idx := t.childIndex(node, key)
	if len(t.node(node.children[idx]).keys) <= t.minKeys() {
		t.fill(node, idx)
		// a merge with the left sibling shifts the target one slot left
		idx = t.childIndex(node, key)
		if len(node.children) != len(node.keys)+1 || idx >= len(node.children) {
			panic(errors.AssertionFailedf("child index %d out of range for node %d with %d keys",
				idx, node.id, len(node.keys)))
		}
	}

	child := t.node(node.children[idx])
	removed := t.deleteRecursive(child, key)

	// predecessor copy: a separator naming the removed key is replaced by
	// the new largest key of its left subtree
	if removed && idx < len(node.keys) && t.cmp(node.keys[idx], key) == 0 {
		pred := t.rightmostLeaf(child.id)
		node.keys[idx] = pred.keys[len(pred.keys)-1]
	}
	return removed
}

// fill gives parent.children[idx] at least one key more than minKeys, or
// merges it with a sibling when neither sibling can spare a key.
func (t *BPlusTree[V]) fill(parent *Node[V], idx int) {
	minKeys := t.minKeys()
	switch {
	case idx > 0 && len(t.node(parent.children[idx-1]).keys) > minKeys:
		t.borrowFromPrev(parent, idx)
	case idx < len(parent.keys) && len(t.node(parent.children[idx+1]).keys) > minKeys:
		t.borrowFromNext(parent, idx)
	case idx < len(parent.keys):
		t.merge(parent, idx)
	case idx > 0:
		t.merge(parent, idx-1)
	default:
		panic(errors.AssertionFailedf("node %d has a single child and no separator", parent.id))
	}
}

// borrowFromPrev moves the last entry of the left sibling to the front of
// parent.children[idx].
func (t *BPlusTree[V]) borrowFromPrev(parent *Node[V], idx int) {
	child := t.node(parent.children[idx])
	sibling := t.node(parent.children[idx-1])
	last := len(sibling.keys) - 1

	if child.isLeaf() {
		child.keys = insert(child.keys, 0, sibling.keys[last])
		child.values = insert(child.values, 0, sibling.values[last])
		sibling.keys = truncate(sibling.keys, last)
		sibling.values = truncate(sibling.values, last)
		parent.keys[idx-1] = sibling.keys[last-1]
		return
	}

	// internal: rotate through the parent separator
	child.keys = insert(child.keys, 0, parent.keys[idx-1])
	child.children = insert(child.children, 0, sibling.children[last+1])
	parent.keys[idx-1] = sibling.keys[last]
	sibling.keys = truncate(sibling.keys, last)
	sibling.children = truncate(sibling.children, last+1)
}

// borrowFromNext moves the first entry of the right sibling to the end of
// parent.children[idx].
func (t *BPlusTree[V]) borrowFromNext(parent *Node[V], idx int) {
	child := t.node(parent.children[idx])
	sibling := t.node(parent.children[idx+1])

	if child.isLeaf() {
		child.keys = append(child.keys, sibling.keys[0])
		child.values = append(child.values, sibling.values[0])
		sibling.keys = remove(sibling.keys, 0)
		sibling.values = remove(sibling.values, 0)
		parent.keys[idx] = child.keys[len(child.keys)-1]
		return
	}

	child.keys = append(child.keys, parent.keys[idx])
	child.children = append(child.children, sibling.children[0])
	parent.keys[idx] = sibling.keys[0]
	sibling.keys = remove(sibling.keys, 0)
	sibling.children = remove(sibling.children, 0)
}

// merge folds parent.children[idx+1] into parent.children[idx], drops the
// separator between them and frees the absorbed sibling.
func (t *BPlusTree[V]) merge(parent *Node[V], idx int) {
	child := t.node(parent.children[idx])
	sibling := t.node(parent.children[idx+1])

	if child.isLeaf() {
		child.keys = append(child.keys, sibling.keys...)
		child.values = append(child.values, sibling.values...)
		child.next = sibling.next
	} else {
		child.keys = append(child.keys, parent.keys[idx])
		child.keys = append(child.keys, sibling.keys...)
		child.children = append(child.children, sibling.children...)
	}

	parent.keys = remove(parent.keys, idx)
	parent.children = remove(parent.children, idx+1)
	t.nodes.release(sibling.id)
}
