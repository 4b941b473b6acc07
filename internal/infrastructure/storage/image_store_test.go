package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskImageStore_SaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskImageStore(dir)
	require.NoError(t, err)

	name, err := store.Save(context.Background(), "part.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Contains(t, name, "part.jpg")

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	require.NoError(t, store.Remove(context.Background(), name))
	_, err = os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(err))

	// Removing twice is fine.
	assert.NoError(t, store.Remove(context.Background(), name))
}

func TestDiskImageStore_UniqueNames(t *testing.T) {
	store, err := NewDiskImageStore(t.TempDir())
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		name, err := store.Save(context.Background(), "part.jpg", []byte("x"))
		require.NoError(t, err)
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}

func TestDiskImageStore_SanitizesOriginalName(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskImageStore(dir)
	require.NoError(t, err)

	name, err := store.Save(context.Background(), "../../etc/pass wd.png", []byte("x"))
	require.NoError(t, err)
	assert.NotContains(t, name, "/")
	assert.NotContains(t, name, " ")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, name, entries[0].Name())
}

func TestDiskImageStore_Writable(t *testing.T) {
	store, err := NewDiskImageStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, store.Writable())
}
