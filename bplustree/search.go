package bplus

// Search looks for a key in the B+Tree and returns its value.
// The boolean is false when the key is not present.
func (t *BPlusTree[V]) Search(key []byte) (V, bool) {
	var zero V
	leaf := t.findLeaf(key)
	if leaf == nil {
		return zero, false
	}
	idx := binarySearch(leaf.keys, key, t.cmp)
	if idx == -1 {
		return zero, false
	}
	return leaf.values[idx], true
}

// Contains reports whether key is present.
func (t *BPlusTree[V]) Contains(key []byte) bool {
	_, ok := t.Search(key)
	return ok
}
