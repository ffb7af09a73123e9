package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// providers that can be constructed without external services
func testProviders(t *testing.T) map[string]IterableProvider {
	t.Helper()

	leveldbProvider, err := NewLevelDBProvider(filepath.Join(t.TempDir(), "leveldb"))
	require.NoError(t, err)
	t.Cleanup(func() { leveldbProvider.Close() })

	boltProvider, err := NewBoltProvider(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { boltProvider.Close() })

	return map[string]IterableProvider{
		"memory":  NewMemoryProvider(),
		"leveldb": leveldbProvider,
		"bolt":    boltProvider,
	}
}

func TestProviderPutGetDelete(t *testing.T) {
	for name, provider := range testProviders(t) {
		t.Run(name, func(t *testing.T) {
			value, err := provider.Get([]byte("missing"))
			require.NoError(t, err)
			assert.Nil(t, value)

			require.NoError(t, provider.Put([]byte("balance:abc"), []byte("100")))

			value, err = provider.Get([]byte("balance:abc"))
			require.NoError(t, err)
			assert.Equal(t, []byte("100"), value)

			exists, err := provider.Has([]byte("balance:abc"))
			require.NoError(t, err)
			assert.True(t, exists)

			require.NoError(t, provider.Delete([]byte("balance:abc")))
			exists, err = provider.Has([]byte("balance:abc"))
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestProviderBatchWrite(t *testing.T) {
	for name, provider := range testProviders(t) {
		t.Run(name, func(t *testing.T) {
			batch := provider.Batch()
			batch.Put([]byte("balance:a"), []byte("10"))
			batch.Put([]byte("balance:b"), []byte("20"))
			require.NoError(t, batch.Write())

			a, err := provider.Get([]byte("balance:a"))
			require.NoError(t, err)
			assert.Equal(t, []byte("10"), a)

			b, err := provider.Get([]byte("balance:b"))
			require.NoError(t, err)
			assert.Equal(t, []byte("20"), b)
		})
	}
}

func TestProviderIteratePrefix(t *testing.T) {
	for name, provider := range testProviders(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, provider.Put([]byte("evt:001"), []byte("one")))
			require.NoError(t, provider.Put([]byte("evt:002"), []byte("two")))
			require.NoError(t, provider.Put([]byte("other:003"), []byte("three")))

			var keys []string
			err := provider.IteratePrefix([]byte("evt:"), func(key, value []byte) bool {
				keys = append(keys, string(key))
				return true
			})
			require.NoError(t, err)
			assert.Equal(t, []string{"evt:001", "evt:002"}, keys)
		})
	}
}

func TestProviderIterateStopsEarly(t *testing.T) {
	provider := NewMemoryProvider()
	require.NoError(t, provider.Put([]byte("evt:001"), []byte("one")))
	require.NoError(t, provider.Put([]byte("evt:002"), []byte("two")))

	var visited int
	err := provider.IteratePrefix([]byte("evt:"), func(key, value []byte) bool {
		visited++
		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, visited)
}
