package kv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gostore/internal/adapters/config"
	"go.trai.ch/gostore/internal/adapters/kv"
	"go.trai.ch/gostore/internal/core/domain"
)

func TestOpen_File(t *testing.T) {
	store, err := kv.Open(context.Background(), config.StoreSettings{
		Backend: config.BackendFile,
		Path:    t.TempDir(),
	})
	require.NoError(t, err)
	assert.IsType(t, &kv.FileStore{}, store)
}

func TestOpen_SQLite(t *testing.T) {
	store, err := kv.Open(context.Background(), config.StoreSettings{
		Backend: config.BackendSQLite,
		Path:    filepath.Join(t.TempDir(), "cart.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	assert.IsType(t, &kv.SQLiteStore{}, store)
}

func TestOpen_Redis(t *testing.T) {
	addr := os.Getenv("GOSTORE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("GOSTORE_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()

	store, err := kv.Open(ctx, config.StoreSettings{Backend: config.BackendRedis, RedisAddr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Set(ctx, "gostore:test", "[]"))
	value, found, err := store.Get(ctx, "gostore:test")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", value)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := kv.Open(context.Background(), config.StoreSettings{Backend: "etcd"})
	require.ErrorIs(t, err, domain.ErrUnknownBackend)
}
