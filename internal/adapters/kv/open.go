package kv

import (
	"context"

	"go.trai.ch/gostore/internal/adapters/config"
	"go.trai.ch/gostore/internal/core/domain"
	"go.trai.ch/gostore/internal/core/ports"
	"go.trai.ch/zerr"
)

// Open returns the store selected by settings.
func Open(ctx context.Context, settings config.StoreSettings) (ports.KVStore, error) {
	switch settings.Backend {
	case config.BackendFile:
		return NewFileStore(settings.Path), nil
	case config.BackendSQLite:
		return OpenSQLite(settings.Path)
	case config.BackendRedis:
		return OpenRedis(ctx, settings.RedisAddr)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownBackend, "cannot open store"), "backend", settings.Backend)
	}
}
