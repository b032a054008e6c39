package scancache_test

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.larenv.dev/larenv/internal/adapters/scancache"
)

func TestStore_PutGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	store, err := scancache.NewStore(path)
	require.NoError(t, err)

	_, ok := store.Get("abc")
	assert.False(t, ok)

	require.NoError(t, store.Put("abc", "v09_10_00"))

	version, ok := store.Get("abc")
	assert.True(t, ok)
	assert.Equal(t, "v09_10_00", version)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.json")

	first, err := scancache.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Put("key", "v1"))

	second, err := scancache.NewStore(path)
	require.NoError(t, err)

	version, ok := second.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "v1", version)
}

func TestStore_ConcurrentPuts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	store, err := scancache.NewStore(path)
	require.NoError(t, err)

	const writers = 8

	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Put(fmt.Sprintf("hash%d", i), "v1"))
		}()
	}
	wg.Wait()

	// Every entry survives in the persisted snapshot.
	reloaded, err := scancache.NewStore(path)
	require.NoError(t, err)
	for i := range writers {
		version, ok := reloaded.Get(fmt.Sprintf("hash%d", i))
		assert.True(t, ok)
		assert.Equal(t, "v1", version)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := scancache.NewStore(path)
	assert.Error(t, err)
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	store, err := scancache.NewStore(path)
	require.NoError(t, err)
	_, ok := store.Get("anything")
	assert.False(t, ok)
}
