// Package ports defines the core interfaces for the application.
package ports

import "context"

// KVStore is the durable key-value storage the cart is persisted to.
//
//go:generate go run go.uber.org/mock/mockgen -source=kv_store.go -destination=mocks/mock_kv_store.go -package=mocks
type KVStore interface {
	// Get returns the value stored under key.
	// found is false, with a nil error, when the key has never been set.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Close releases the resources held by the store.
	Close() error
}
