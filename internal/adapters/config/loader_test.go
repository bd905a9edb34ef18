package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gostore/internal/adapters/config"
	"go.trai.ch/gostore/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"), map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, config.Defaults(), settings)
	assert.Equal(t, domain.StorageKey, settings.Store.Key)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
store:
  backend: sqlite
  path: /var/lib/gostore/cart.db
log:
  level: debug
`)

	settings, err := config.Load(path, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, config.BackendSQLite, settings.Store.Backend)
	assert.Equal(t, "/var/lib/gostore/cart.db", settings.Store.Path)
	assert.Equal(t, "debug", settings.Log.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, "@GoStore", settings.Store.Key)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeConfig(t, `
store:
  backend: sqlite
  key: "@FromFile"
`)

	settings, err := config.Load(path, map[string]string{
		"GOSTORE_STORE_BACKEND":    "Redis",
		"GOSTORE_STORE_REDIS_ADDR": "cache:6380",
		"GOSTORE_LOG_LEVEL":        "warn",
	})
	require.NoError(t, err)

	assert.Equal(t, config.BackendRedis, settings.Store.Backend)
	assert.Equal(t, "cache:6380", settings.Store.RedisAddr)
	assert.Equal(t, "@FromFile", settings.Store.Key)
	assert.Equal(t, "warn", settings.Log.Level)
}

func TestLoad_UnknownBackend(t *testing.T) {
	path := writeConfig(t, "store:\n  backend: etcd\n")

	_, err := config.Load(path, map[string]string{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownBackend)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "store: [unclosed")

	_, err := config.Load(path, map[string]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
