// Package cart implements the cart state manager: the authoritative in-memory
// cart, loaded once from a key-value store and written through on every mutation.
package cart

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.trai.ch/gostore/internal/core/domain"
	"go.trai.ch/gostore/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager owns the cart of a single process.
//
// Reads are served from memory. Mutations are serialized: each one computes the
// next cart from the current one, swaps it in, and persists it before the next
// mutation may start.
type Manager struct {
	store  ports.KVStore
	logger ports.Logger
	key    string

	// writeMu serializes Initialize and the mutations, including their store writes.
	writeMu sync.Mutex

	mu    sync.RWMutex
	items domain.Cart
	ready bool

	initOnce sync.Once
	initErr  error
	readyCh  chan struct{}
}

// NewManager creates a Manager persisting under key. An empty key selects domain.StorageKey.
func NewManager(store ports.KVStore, logger ports.Logger, key string) *Manager {
	if key == "" {
		key = domain.StorageKey
	}
	return &Manager{
		store:   store,
		logger:  logger,
		key:     key,
		items:   domain.Cart{},
		readyCh: make(chan struct{}),
	}
}

// Key returns the storage key the cart is persisted under.
func (m *Manager) Key() string {
	return m.key
}

// Initialize loads the persisted cart. Only the first call touches the store;
// later calls return the first call's result. The manager is ready once the
// read attempt finished, whether it succeeded or not.
func (m *Manager) Initialize(ctx context.Context) error {
	m.initOnce.Do(func() {
		m.writeMu.Lock()
		defer m.writeMu.Unlock()

		items, err := m.load(ctx)

		m.mu.Lock()
		if err == nil {
			m.items = items
		}
		m.ready = true
		m.mu.Unlock()
		close(m.readyCh)

		m.initErr = err
	})
	return m.initErr
}

func (m *Manager) load(ctx context.Context) (domain.Cart, error) {
	raw, found, err := m.store.Get(ctx, m.key)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrCartLoad, err), "key", m.key)
	}
	if !found {
		m.logger.Info(fmt.Sprintf("no cart stored under %q, starting empty", m.key))
		return domain.Cart{}, nil
	}

	items, err := domain.DecodeCart(raw)
	if err != nil {
		return nil, zerr.With(err, "key", m.key)
	}
	m.logger.Info(fmt.Sprintf("loaded cart with %d items", len(items)))
	return items, nil
}

// Loading reports whether the initial load has not run yet.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.ready
}

// Ready returns a channel that is closed once the initial load attempt finished.
func (m *Manager) Ready() <-chan struct{} {
	return m.readyCh
}

// Products returns a snapshot of the current cart.
func (m *Manager) Products() domain.Cart {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.items)
}

// Summary aggregates the current cart.
func (m *Manager) Summary() domain.Summary {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items.Summarize()
}

// AddToCart puts one unit of p into the cart. If an item with the same id is
// already present its quantity is bumped and its stored fields are kept.
func (m *Manager) AddToCart(ctx context.Context, p domain.Product) error {
	return m.mutate(ctx, func(c domain.Cart) domain.Cart { return c.Add(p) })
}

// Increment adds one unit to the item with the given id.
// Unknown ids leave the cart unchanged, but it is still persisted.
func (m *Manager) Increment(ctx context.Context, id string) error {
	return m.mutate(ctx, func(c domain.Cart) domain.Cart { return c.Increment(id) })
}

// Decrement removes one unit from the item with the given id and drops the item
// when no unit is left. Unknown ids leave the cart unchanged, but it is still persisted.
func (m *Manager) Decrement(ctx context.Context, id string) error {
	return m.mutate(ctx, func(c domain.Cart) domain.Cart { return c.Decrement(id) })
}

// mutate swaps in the next cart and writes it through. The swap is not rolled
// back when the write fails.
func (m *Manager) mutate(ctx context.Context, next func(domain.Cart) domain.Cart) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	m.mu.Lock()
	items := next(m.items)
	m.items = items
	m.mu.Unlock()

	return m.persist(ctx, items)
}

func (m *Manager) persist(ctx context.Context, items domain.Cart) error {
	raw, err := domain.EncodeCart(items)
	if err != nil {
		return errors.Join(domain.ErrCartPersist, err)
	}
	if err := m.store.Set(ctx, m.key, raw); err != nil {
		return zerr.With(errors.Join(domain.ErrCartPersist, err), "key", m.key)
	}
	return nil
}
