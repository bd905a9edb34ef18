package domain

import "go.trai.ch/zerr"

var (
	// ErrCartLoad is returned when the persisted cart cannot be read from the store.
	ErrCartLoad = zerr.New("failed to load cart")

	// ErrCartDecode is returned when the persisted cart is not a valid JSON item list.
	ErrCartDecode = zerr.New("malformed cart data")

	// ErrCartPersist is returned when a mutated cart cannot be written back.
	// The in-memory cart already reflects the mutation when this is returned.
	ErrCartPersist = zerr.New("failed to persist cart")

	// ErrNoCart is raised when a cart manager is requested from a context that does not carry one.
	ErrNoCart = zerr.New("cart manager must be provided through cart.NewContext")

	// ErrUnknownBackend is returned when the configured store backend is not supported.
	ErrUnknownBackend = zerr.New("unknown store backend")
)
