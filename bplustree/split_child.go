package bplus

// splitChild splits the full child parent.children[index] in two.
//
// With mid = (order-1)/2 the new right sibling takes keys[mid:] and the
// separator copied into the parent is keys[mid-1], the last key of the left
// half. A leaf keeps that key, so the separator is always the largest key
// under the left child. An internal node moves it up instead of keeping it:
// left keeps keys[:mid-1] and children[:mid], right gets children[mid:].
func (t *BPlusTree[V]) splitChild(parent *Node[V], index int) {
	child := t.node(parent.children[index])
	mid := (t.order - 1) / 2
	separator := child.keys[mid-1]

	sibling := t.nodes.allocate(child.nodeType)
	sibling.keys = append(sibling.keys, child.keys[mid:]...)

	if child.isLeaf() {
		sibling.values = append(sibling.values, child.values[mid:]...)
		child.keys = truncate(child.keys, mid)
		child.values = truncate(child.values, mid)

		// splice the new leaf into the chain right after child
		sibling.next = child.next
		child.next = sibling.id
	} else {
		sibling.children = append(sibling.children, child.children[mid:]...)
		child.keys = truncate(child.keys, mid-1)
		child.children = truncate(child.children, mid)
	}

	parent.keys = insert(parent.keys, index, separator)
	parent.children = insert(parent.children, index+1, sibling.id)
}
