package bplus

import "github.com/cockroachdb/errors"

// arena owns every node of one tree. Nodes are addressed by id so that a child
// never holds a pointer back to its parent and a freed node can be detected.
type arena[V any] struct {
	nodes  map[int64]*Node[V]
	nextID int64
	order  int
}

func newArena[V any](order int) *arena[V] {
	return &arena[V]{
		nodes:  make(map[int64]*Node[V]),
		nextID: 1,
		order:  order,
	}
}

// allocate creates an empty node of the given type and registers it.
func (a *arena[V]) allocate(nodeType NodeType) *Node[V] {
	n := newNode[V](nodeType, a.order)
	n.id = a.nextID
	a.nextID++
	a.nodes[n.id] = n
	return n
}

func (a *arena[V]) get(id int64) *Node[V] {
	n, ok := a.nodes[id]
	if !ok {
		panic(errors.AssertionFailedf("node %d not in arena", id))
	}
	return n
}

// release drops a node that has been absorbed by a merge or replaced as root.
func (a *arena[V]) release(id int64) {
	n, ok := a.nodes[id]
	if !ok {
		panic(errors.AssertionFailedf("node %d released twice", id))
	}
	clear(n.keys)
	clear(n.values)
	delete(a.nodes, id)
}

// live returns the number of allocated nodes.
func (a *arena[V]) live() int {
	return len(a.nodes)
}
