package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, store Store) {
	t.Helper()

	t.Run("LoadEmpty", func(t *testing.T) {
		got, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("SaveAndLoad", func(t *testing.T) {
		require.NoError(t, store.Save([]byte(`[1]`)))
		got, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, `[1]`, string(got))

		require.NoError(t, store.Save([]byte(`[2,3]`)))
		got, err = store.Load()
		require.NoError(t, err)
		assert.Equal(t, `[2,3]`, string(got))
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, store.Clear())
		got, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, got)

		// Clearing twice is fine.
		require.NoError(t, store.Clear())
	})
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "timers.json")
	store := NewFileStore(path)
	assert.Equal(t, path, store.Path())

	testStore(t, store)
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "timers.json"))

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save([]byte(`[]`)))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "timers.json", entries[0].Name())
}

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "timers.db"))
	require.NoError(t, err)
	defer store.Close()

	testStore(t, store)
}

func TestSQLiteStoreInMemory(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save([]byte(`[]`)))
	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timers.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save([]byte(`["kept"]`)))
	require.NoError(t, store.Close())

	store, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, `["kept"]`, string(got))
}
