package kv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gostore/internal/adapters/kv"
)

func TestFileStore_MissingKey(t *testing.T) {
	store := kv.NewFileStore(filepath.Join(t.TempDir(), "state"))

	value, found, err := store.Get(context.Background(), "@GoStore")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestFileStore_SetAndGet(t *testing.T) {
	store := kv.NewFileStore(filepath.Join(t.TempDir(), "state"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "@GoStore", `[{"id":"a"}]`))
	require.NoError(t, store.Set(ctx, "other", "x"))

	value, found, err := store.Get(ctx, "@GoStore")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"a"}]`, value)
}

func TestFileStore_Overwrite(t *testing.T) {
	store := kv.NewFileStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "first"))
	require.NoError(t, store.Set(ctx, "k", "second"))

	value, _, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestFileStore_Persistence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	ctx := context.Background()

	require.NoError(t, kv.NewFileStore(dir).Set(ctx, "@GoStore", "[]"))

	value, found, err := kv.NewFileStore(dir).Get(ctx, "@GoStore")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", value)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStore_CanceledContext(t *testing.T) {
	store := kv.NewFileStore(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Set(ctx, "k", "v"), context.Canceled)
	_, _, err := store.Get(ctx, "k")
	require.ErrorIs(t, err, context.Canceled)
}
