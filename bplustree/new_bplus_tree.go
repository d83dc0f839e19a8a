package bplus

import (
	"bytes"

	"github.com/cockroachdb/errors"
)

var ErrInvalidOrder = errors.New("bplus: invalid order")

// NewBPlusTree returns an empty tree whose internal nodes hold at most order
// children. The order is fixed for the lifetime of the tree.
func NewBPlusTree[V any](order int) (*BPlusTree[V], error) {
	if order < MinOrder || order > MaxOrder {
		return nil, errors.Wrapf(ErrInvalidOrder, "order %d outside [%d, %d]", order, MinOrder, MaxOrder)
	}
	return &BPlusTree[V]{
		root:  0,
		order: order,
		nodes: newArena[V](order),
		cmp:   bytes.Compare,
	}, nil
}

// MustNew is NewBPlusTree for orders known to be valid at compile time.
func MustNew[V any](order int) *BPlusTree[V] {
	t, err := NewBPlusTree[V](order)
	if err != nil {
		panic(err)
	}
	return t
}
