package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ShowroomDB/config"
)

func indexConfig(cache bool) config.IndexConfig {
	cfg := config.Default().Index
	cfg.Cache.Enabled = cache
	return cfg
}

func TestIndexPutGetDelete(t *testing.T) {
	for _, cache := range []bool{false, true} {
		t.Run(fmt.Sprintf("cache=%v", cache), func(t *testing.T) {
			ix, err := NewIndex[string]("plates", indexConfig(cache), zap.NewNop())
			require.NoError(t, err)
			defer ix.Close()

			for i := 0; i < 50; i++ {
				require.False(t, ix.Put(fmt.Sprintf("KA%03d", i), fmt.Sprintf("car-%d", i)))
			}
			require.Equal(t, 50, ix.Len())

			v, ok := ix.Get("KA007")
			require.True(t, ok)
			require.Equal(t, "car-7", v)
			if ix.cache != nil {
				ix.cache.Wait()
			}

			// a replaced value must not be served stale from the cache
			require.True(t, ix.Put("KA007", "repainted"))
			v, ok = ix.Get("KA007")
			require.True(t, ok)
			require.Equal(t, "repainted", v)

			require.True(t, ix.Has("KA007"))
			require.True(t, ix.Delete("KA007"))
			require.False(t, ix.Delete("KA007"))
			require.False(t, ix.Has("KA007"))
			_, ok = ix.Get("KA007")
			require.False(t, ok)
			require.Equal(t, 49, ix.Len())
			require.NoError(t, ix.Tree().Verify())
		})
	}
}

func TestIndexScans(t *testing.T) {
	ix, err := NewIndex[int]("nums", indexConfig(false), zap.NewNop())
	require.NoError(t, err)

	for _, k := range []string{"d", "a", "c", "e", "b", "f"} {
		ix.Put(k, int(k[0]-'a'))
	}

	var keys []string
	for k := range ix.All() {
		keys = append(keys, k)
	}
	require.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, keys)

	keys = keys[:0]
	for k, v := range ix.Range("b", "d") {
		keys = append(keys, k)
		require.Equal(t, int(k[0]-'a'), v)
	}
	require.Equal(t, []string{"b", "c", "d"}, keys)

	keys = keys[:0]
	for k := range ix.Range("e", "") {
		keys = append(keys, k)
	}
	require.Equal(t, []string{"e", "f"}, keys)

	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, ix.Values())
}

func TestNewIndexRejectsBadOrder(t *testing.T) {
	cfg := indexConfig(false)
	cfg.Order = 2
	_, err := NewIndex[int]("bad", cfg, zap.NewNop())
	require.Error(t, err)
}
