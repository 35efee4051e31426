package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreGetSet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	value, err := store.Get(ctx, "sort_by")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, store.Set(ctx, "sort_by", "1"))
	require.NoError(t, store.Set(ctx, "other", "x"))

	value, err = store.Get(ctx, "sort_by")
	require.NoError(t, err)
	assert.Equal(t, "1", value)

	// a fresh instance sees the persisted values
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	value, err = reopened.Get(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, "x", value)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "sort_by")
	assert.Error(t, err)
}

func TestFileStoreCancelledContext(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Set(ctx, "k", "v"), context.Canceled)
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
