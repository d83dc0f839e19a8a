package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	bplus "ShowroomDB/bplustree"
)

var (
	headerColor   = color.New(color.FgCyan, color.Bold)
	levelColor    = color.New(color.FgYellow)
	internalColor = color.New(color.FgMagenta)
	leafColor     = color.New(color.FgGreen)
	faintColor    = color.New(color.Faint)
)

// Dump writes a colored level-by-level view of t, the same layout as
// BPlusTree.Dump.
func Dump[V any](w io.Writer, t *bplus.BPlusTree[V]) {
	headerColor.Fprintf(w, "B+ tree: order=%d keys=%d height=%d\n", t.Order(), t.Len(), t.Height())

	levels := t.Levels()
	if len(levels) == 0 {
		faintColor.Fprintln(w, "  (empty tree)")
		return
	}
	for depth, level := range levels {
		levelColor.Fprintf(w, "  Level %d:\n", depth)
		for _, n := range level {
			keys := "[" + strings.Join(n.Keys, " ") + "]"
			if n.Leaf {
				fmt.Fprintf(w, "    [node %d] %s keys=%s %s\n",
					n.ID, leafColor.Sprint("LEAF"), keys, faintColor.Sprintf("next=%d", n.Next))
			} else {
				fmt.Fprintf(w, "    [node %d] %s keys=%s %s\n",
					n.ID, internalColor.Sprint("INTERNAL"), keys, faintColor.Sprintf("children=%v", n.Children))
			}
		}
	}
}

// Stats writes the shape summary of t.
func Stats[V any](w io.Writer, t *bplus.BPlusTree[V]) {
	s := t.Stats()
	fmt.Fprintf(w, "height=%d nodes=%d leaves=%d keys=%d fill=%.0f%%\n",
		s.Height, s.Nodes, s.Leaves, s.Keys, fill(s))
}

func fill(s bplus.Stats) float64 {
	if s.Capacity == 0 {
		return 0
	}
	return 100 * float64(s.Keys) / float64(s.Capacity)
}
