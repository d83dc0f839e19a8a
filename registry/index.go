package registry

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/ristretto/v2"
	"go.uber.org/zap"

	bplus "ShowroomDB/bplustree"
	"ShowroomDB/config"
)

// Index is one named B+ tree keyed by strings, optionally fronted by a
// point-lookup cache. Values are references owned by the caller; the index
// never copies or frees them.
type Index[V any] struct {
	name  string
	tree  *bplus.BPlusTree[V]
	cache *ristretto.Cache[string, V] // nil when caching is disabled
	log   *zap.Logger
}

// NewIndex creates an empty index with the order and cache settings of cfg.
func NewIndex[V any](name string, cfg config.IndexConfig, log *zap.Logger) (*Index[V], error) {
	tree, err := bplus.NewBPlusTree[V](cfg.Order)
	if err != nil {
		return nil, errors.Wrapf(err, "index %s", name)
	}
	ix := &Index[V]{name: name, tree: tree, log: log.With(zap.String("index", name))}

	if cfg.Cache.Enabled {
		ix.cache, err = ristretto.NewCache(&ristretto.Config[string, V]{
			NumCounters: cfg.Cache.NumCounters,
			MaxCost:     cfg.Cache.MaxCost,
			BufferItems: 64,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "index %s: cache", name)
		}
	}
	return ix, nil
}

func (ix *Index[V]) Name() string { return ix.name }

func (ix *Index[V]) Len() int { return ix.tree.Len() }

// Tree exposes the underlying tree for merges and inspection. Writing to it
// directly bypasses the cache.
func (ix *Index[V]) Tree() *bplus.BPlusTree[V] { return ix.tree }

// Put stores v under key and reports whether an existing entry was replaced.
func (ix *Index[V]) Put(key string, v V) bool {
	replaced := ix.tree.Insert([]byte(key), v)
	if ix.cache != nil {
		ix.cache.Del(key)
	}
	return replaced
}

// Get returns the value stored under key.
func (ix *Index[V]) Get(key string) (V, bool) {
	if ix.cache != nil {
		if v, ok := ix.cache.Get(key); ok {
			return v, true
		}
	}
	v, ok := ix.tree.Search([]byte(key))
	if ok && ix.cache != nil {
		ix.cache.Set(key, v, 1)
	}
	return v, ok
}

// Has reports whether key is indexed. It reads the tree only and leaves the
// cache untouched.
func (ix *Index[V]) Has(key string) bool {
	return ix.tree.Contains([]byte(key))
}

// Delete removes key. A missing key is not an error; it is logged and
// reported as false.
func (ix *Index[V]) Delete(key string) bool {
	if ix.cache != nil {
		ix.cache.Del(key)
	}
	if !ix.tree.Delete([]byte(key)) {
		ix.log.Debug("delete: key not found", zap.String("key", key))
		return false
	}
	return true
}

// All yields every entry in ascending key order.
func (ix *Index[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for k, v := range ix.tree.All() {
			if !yield(string(k), v) {
				return
			}
		}
	}
}

// Range yields the entries with lo <= key <= hi. An empty hi leaves the
// range open above.
func (ix *Index[V]) Range(lo, hi string) iter.Seq2[string, V] {
	var upper []byte
	if hi != "" {
		upper = []byte(hi)
	}
	return func(yield func(string, V) bool) {
		for k, v := range ix.tree.Range([]byte(lo), upper) {
			if !yield(string(k), v) {
				return
			}
		}
	}
}

// Values returns every value in key order.
func (ix *Index[V]) Values() []V {
	out := make([]V, 0, ix.tree.Len())
	for _, v := range ix.tree.All() {
		out = append(out, v)
	}
	return out
}

// Close releases the cache. The tree itself needs no teardown.
func (ix *Index[V]) Close() {
	if ix.cache != nil {
		ix.cache.Close()
		ix.cache = nil
	}
}
