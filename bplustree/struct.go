// Structure of B+ Tree
/*
Tree
 ├── Internal Node (separator keys + child ids)
 │      └── Child Internal Nodes ...
 │             └── Leaf Nodes (keys + values + next id)


- keys: sorted ascending order, unique
- internal nodes: children length == len(keys)+1
- separator keys[i] is the largest key stored under children[i]
- leaf nodes: values length == len(keys)
- leaf nodes linked with `next` for ordered scans
- all leaf nodes at same depth
- nodes live in the tree's arena and are addressed by id (0 = none)

*/
package bplus

type NodeType int

const (
	NodeInternal NodeType = iota
	NodeLeaf
)

const (
	DefaultOrder = 5 // max children per internal node
	MinOrder     = 5
	MaxOrder     = 1024
)

type Node[V any] struct {
	id       int64
	nodeType NodeType
	keys     [][]byte // keys in the node (sorted keys)
	values   []V      // leaf nodes
	children []int64  // only for internal node
	next     int64    // only for leaf node
}

func (n *Node[V]) isLeaf() bool {
	return n.nodeType == NodeLeaf
}

// BPlusTree is an in-memory ordered index from byte-string keys to values of type V.
// It is not safe for concurrent use; callers serialize access per tree.
type BPlusTree[V any] struct {
	root  int64 // root node id, 0 when the tree is empty
	order int
	size  int // number of entries stored in leaves
	nodes *arena[V]
	cmp   func(a, b []byte) int // comparison function for keys
}

func (t *BPlusTree[V]) maxKeys() int {
	return t.order - 1
}

func (t *BPlusTree[V]) minKeys() int {
	return t.order/2 - 1
}

func (t *BPlusTree[V]) node(id int64) *Node[V] {
	return t.nodes.get(id)
}

// Order returns the branching factor the tree was created with.
func (t *BPlusTree[V]) Order() int {
	return t.order
}

// Len returns the number of keys in the tree.
func (t *BPlusTree[V]) Len() int {
	return t.size
}

// Height returns the number of levels, 0 for an empty tree.
func (t *BPlusTree[V]) Height() int {
	h := 0
	for id := t.root; id != 0; h++ {
		n := t.node(id)
		if n.isLeaf() {
			return h + 1
		}
		id = n.children[0]
	}
	return h
}
