package bplus

// Merge re-inserts every entry of srcs into dst and returns how many entries
// were visited. Source trees are left untouched. Keys present in several
// trees end up with the value of the last source that holds them.
//
// Sources are walked leaf by leaf and inserted one at a time rather than
// spliced, since leaf chains of independent trees interleave arbitrarily.
func Merge[V any](dst *BPlusTree[V], srcs ...*BPlusTree[V]) int {
	n := 0
	for _, src := range srcs {
		if src == nil || src == dst {
			continue
		}
		for k, v := range src.All() {
			dst.Insert(k, v)
			n++
		}
	}
	return n
}
