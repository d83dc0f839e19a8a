// Tree inspection for debugging.
// Use Dump(w) to print a human-readable breadth-first view of the nodes.

package bplus

import (
	"fmt"
	"io"
)

// NodeInfo is a read-only snapshot of one node.
type NodeInfo struct {
	ID       int64
	Leaf     bool
	Keys     []string
	Children []int64 // internal nodes
	Next     int64   // leaf nodes
}

// Levels returns the nodes of the tree grouped by depth, root first.
func (t *BPlusTree[V]) Levels() [][]NodeInfo {
	var levels [][]NodeInfo
	if t.root == 0 {
		return levels
	}

	queue := []int64{t.root}
	for len(queue) > 0 {
		size := len(queue)
		level := make([]NodeInfo, 0, size)
		for _, id := range queue[:size] {
			n := t.node(id)
			info := NodeInfo{ID: id, Leaf: n.isLeaf(), Keys: make([]string, len(n.keys))}
			for j, k := range n.keys {
				info.Keys[j] = string(k)
			}
			if n.isLeaf() {
				info.Next = n.next
			} else {
				info.Children = append([]int64(nil), n.children...)
				queue = append(queue, n.children...)
			}
			level = append(level, info)
		}
		levels = append(levels, level)
		queue = queue[size:]
	}
	return levels
}

// Dump writes the tree level by level: internal nodes with their separators and
// child ids, leaves with their keys and next link.
func (t *BPlusTree[V]) Dump(w io.Writer) {
	p := func(format string, args ...interface{}) { fmt.Fprintf(w, format, args...) }

	p("B+ tree: order=%d keys=%d height=%d\n", t.order, t.size, t.Height())
	if t.root == 0 {
		p("  (empty tree)\n")
		return
	}
	for depth, level := range t.Levels() {
		p("  Level %d:\n", depth)
		for _, n := range level {
			if n.Leaf {
				p("    [node %d] LEAF keys=%v next=%d\n", n.ID, n.Keys, n.Next)
			} else {
				p("    [node %d] INTERNAL keys=%v children=%v\n", n.ID, n.Keys, n.Children)
			}
		}
	}
}
