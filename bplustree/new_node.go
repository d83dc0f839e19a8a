package bplus

// newNode creates a node of given type with room for order-1 keys.
// Only the arena calls it; everything else goes through arena.allocate.
func newNode[V any](nodeType NodeType, order int) *Node[V] {
	n := &Node[V]{
		nodeType: nodeType,
		keys:     make([][]byte, 0, order-1),
	}
	if nodeType == NodeInternal {
		n.children = make([]int64, 0, order)
	} else {
		n.values = make([]V, 0, order-1)
	}
	return n
}
