package kvstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStores(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	boltStore, err := NewBoltStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
		"bolt":   boltStore,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestStoreSetGet(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set("learning_report_data", []byte(`{"a":1}`)))

			got, err := store.Get("learning_report_data")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"a":1}`), got)
		})
	}
}

func TestStoreGetMissingKey(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get("no_such_key")
			assert.ErrorIs(t, err, ErrKeyNotFound)
		})
	}
}

func TestStoreOverwrite(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set("k", []byte("v1")))
			require.NoError(t, store.Set("k", []byte("v2")))

			got, err := store.Get("k")
			require.NoError(t, err)
			assert.Equal(t, []byte("v2"), got)
		})
	}
}

func TestStoreDelete(t *testing.T) {
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.Set("k", []byte("v")))
			require.NoError(t, store.Delete("k"))

			_, err := store.Get("k")
			assert.ErrorIs(t, err, ErrKeyNotFound)

			// 删除不存在的 key 不报错
			assert.NoError(t, store.Delete("k"))
		})
	}
}

func TestMemoryStoreCopiesValue(t *testing.T) {
	store := NewMemoryStore()
	value := []byte("original")
	require.NoError(t, store.Set("k", value))

	value[0] = 'X'
	got, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("error_questions_data", []byte(`{"questions":[]}`)))
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("error_questions_data")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"questions":[]}`), got)
}

func TestBoltStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	store, err := NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("teaching_platform_agents", []byte(`[]`)))
	require.NoError(t, store.Close())

	reopened, err := NewBoltStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("teaching_platform_agents")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)
}
