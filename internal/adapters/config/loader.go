// Package config provides the configuration loader for gostore.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/gostore/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the configuration file looked up when GOSTORE_CONFIG is unset.
	DefaultFilename = "gostore.yaml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "GOSTORE_"
)

// Load reads the settings file at path on top of Defaults and applies environment
// overrides from environ. A missing file is not an error.
func Load(path string, environ map[string]string) (Settings, error) {
	settings := Defaults()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Settings{}, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	default:
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return Settings{}, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
		}
	}

	if err := env.ParseWithOptions(&settings, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}); err != nil {
		return Settings{}, zerr.Wrap(err, "failed to parse environment overrides")
	}

	settings.Store.Backend = strings.ToLower(strings.TrimSpace(settings.Store.Backend))
	switch settings.Store.Backend {
	case BackendFile, BackendSQLite, BackendRedis:
	default:
		return Settings{}, zerr.With(zerr.Wrap(domain.ErrUnknownBackend, "invalid store configuration"),
			"backend", settings.Store.Backend)
	}

	return settings, nil
}

// LoadFromEnvironment resolves the config path from GOSTORE_CONFIG and loads it
// with the process environment.
func LoadFromEnvironment() (Settings, error) {
	environ := env.ToMap(os.Environ())
	path := environ[EnvPrefix+"CONFIG"]
	if path == "" {
		path = DefaultFilename
	}
	return Load(path, environ)
}
