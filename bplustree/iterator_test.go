package bplus

import (
	"fmt"
	"reflect"
	"testing"
)

func newNumberedTree(t *testing.T, n int) *BPlusTree[string] {
	t.Helper()
	tree := MustNew[string](5)
	// insert in reverse so leaves split on the left
	for i := n - 1; i >= 0; i-- {
		k := fmt.Sprintf("%02d", i*2)
		tree.Insert([]byte(k), "v"+k)
	}
	mustVerify(t, tree)
	return tree
}

func TestIteratorWalksLeafChain(t *testing.T) {
	tree := newNumberedTree(t, 20)

	it := tree.First()
	var got []string
	for ; it.Valid(); it.Next() {
		got = append(got, string(it.Key()))
		if it.Value() != "v"+string(it.Key()) {
			t.Errorf("value for %s is %q", it.Key(), it.Value())
		}
	}
	if len(got) != 20 {
		t.Fatalf("iterator visited %d keys, want 20", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("keys out of order at %d: %s >= %s", i, got[i-1], got[i])
		}
	}
	if it.Next() {
		t.Errorf("Next on exhausted iterator returned true")
	}
	if it.Key() != nil {
		t.Errorf("Key on exhausted iterator = %q", it.Key())
	}
}

func TestSeekGE(t *testing.T) {
	tree := newNumberedTree(t, 20) // 00, 02, ..., 38

	cases := []struct {
		target string
		want   string
		valid  bool
	}{
		{"", "00", true},
		{"00", "00", true},
		{"05", "06", true},
		{"17", "18", true},
		{"38", "38", true},
		{"39", "", false},
	}
	for _, c := range cases {
		it := tree.SeekGE([]byte(c.target))
		if it.Valid() != c.valid {
			t.Errorf("SeekGE(%q).Valid() = %v, want %v", c.target, it.Valid(), c.valid)
			continue
		}
		if c.valid && string(it.Key()) != c.want {
			t.Errorf("SeekGE(%q) = %s, want %s", c.target, it.Key(), c.want)
		}
	}

	empty := MustNew[string](5)
	if empty.SeekGE([]byte("a")).Valid() || empty.First().Valid() {
		t.Errorf("iterators over an empty tree should be invalid")
	}
}

func TestRange(t *testing.T) {
	tree := newNumberedTree(t, 20)

	collect := func(lo, hi []byte) []string {
		var keys []string
		for k := range tree.Range(lo, hi) {
			keys = append(keys, string(k))
		}
		return keys
	}

	if got := collect([]byte("09"), []byte("16")); !reflect.DeepEqual(got, []string{"10", "12", "14", "16"}) {
		t.Errorf("Range(09, 16) = %v", got)
	}
	if got := collect(nil, []byte("04")); !reflect.DeepEqual(got, []string{"00", "02", "04"}) {
		t.Errorf("Range(nil, 04) = %v", got)
	}
	if got := collect([]byte("35"), nil); !reflect.DeepEqual(got, []string{"36", "38"}) {
		t.Errorf("Range(35, nil) = %v", got)
	}
	if got := collect([]byte("50"), nil); len(got) != 0 {
		t.Errorf("Range(50, nil) = %v, want nothing", got)
	}
}

func TestAllIsRestartableAndStoppable(t *testing.T) {
	tree := newNumberedTree(t, 10)

	first := tree.Keys()
	second := tree.Keys()
	if !reflect.DeepEqual(first, second) || len(first) != 10 {
		t.Fatalf("two scans differ: %q vs %q", first, second)
	}

	n := 0
	for range tree.All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("early break visited %d entries", n)
	}
}
