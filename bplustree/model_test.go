package bplus

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/btree"
)

type entry struct {
	key string
	val int
}

func entryLess(a, b entry) bool {
	return a.key < b.key
}

// TestAgainstReferenceModel drives random inserts, deletes and lookups through
// the tree and a google/btree holding the same data, and compares every answer.
func TestAgainstReferenceModel(t *testing.T) {
	for _, order := range []int{5, 6, 7, 9, 16} {
		for seed := uint64(1); seed <= 4; seed++ {
			t.Run(fmt.Sprintf("order=%d/seed=%d", order, seed), func(t *testing.T) {
				runModel(t, order, seed, 3000)
			})
		}
	}
}

func runModel(t *testing.T, order int, seed uint64, ops int) {
	rng := rand.New(rand.NewPCG(seed, uint64(order)))
	tree := MustNew[int](order)
	model := btree.NewG[entry](4, entryLess)

	for op := 0; op < ops; op++ {
		key := fmt.Sprintf("KEY-%04d", rng.IntN(400))

		switch r := rng.IntN(10); {
		case r < 6:
			replaced := tree.Insert([]byte(key), op)
			_, existed := model.ReplaceOrInsert(entry{key, op})
			if replaced != existed {
				t.Fatalf("op %d Insert(%s): replaced=%v, model existed=%v", op, key, replaced, existed)
			}
		case r < 9:
			removed := tree.Delete([]byte(key))
			_, existed := model.Delete(entry{key: key})
			if removed != existed {
				t.Fatalf("op %d Delete(%s): removed=%v, model existed=%v", op, key, removed, existed)
			}
		default:
			got, ok := tree.Search([]byte(key))
			want, found := model.Get(entry{key: key})
			if ok != found || (found && got != want.val) {
				t.Fatalf("op %d Search(%s) = %d, %v; model %d, %v", op, key, got, ok, want.val, found)
			}
		}

		if tree.Len() != model.Len() {
			t.Fatalf("op %d: Len() = %d, model %d", op, tree.Len(), model.Len())
		}
		if op%100 == 0 {
			if err := tree.Verify(); err != nil {
				t.Fatalf("op %d: %v", op, err)
			}
			compareScan(t, tree, model)
		}
	}

	if err := tree.Verify(); err != nil {
		t.Fatal(err)
	}
	compareScan(t, tree, model)
}

func compareScan(t *testing.T, tree *BPlusTree[int], model *btree.BTreeG[entry]) {
	t.Helper()
	var want []entry
	model.Ascend(func(e entry) bool {
		want = append(want, e)
		return true
	})

	i := 0
	for k, v := range tree.All() {
		if i >= len(want) {
			t.Fatalf("scan yields extra key %s", k)
		}
		if string(k) != want[i].key || v != want[i].val {
			t.Fatalf("scan position %d: got %s=%d, want %s=%d", i, k, v, want[i].key, want[i].val)
		}
		i++
	}
	if i != len(want) {
		t.Fatalf("scan yields %d entries, model has %d", i, len(want))
	}
}
