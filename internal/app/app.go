// Package app implements the application layer for gostore.
package app

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/gostore/internal/adapters/tui" //nolint:depguard // Wired in app layer
	"go.trai.ch/gostore/internal/core/ports"
	"go.trai.ch/gostore/internal/engine/cart"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App owns the cart manager of the process and its lifecycle.
type App struct {
	cart       *cart.Manager
	store      ports.KVStore
	logger     ports.Logger
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(m *cart.Manager, store ports.KVStore, logger ports.Logger) *App {
	return &App{
		cart:   m,
		store:  store,
		logger: logger,
	}
}

// WithTeaOptions sets the Bubble Tea options used by Browse.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// Cart returns the cart manager.
func (a *App) Cart() *cart.Manager {
	return a.cart
}

// Context returns ctx carrying the cart manager, for consumers resolving it
// through cart.FromContext.
func (a *App) Context(ctx context.Context) context.Context {
	return cart.NewContext(ctx, a.cart)
}

// Load performs the one-time load of the persisted cart.
func (a *App) Load(ctx context.Context) error {
	if err := a.cart.Initialize(ctx); err != nil {
		return zerr.Wrap(err, "failed to initialize cart")
	}
	return nil
}

// Browse opens the interactive cart view. The cart is loaded concurrently;
// the view shows a spinner until the load finished. A failed load aborts the view.
func (a *App) Browse(ctx context.Context) error {
	if l, ok := a.logger.(interface{ SetOutput(w io.Writer) }); ok {
		l.SetOutput(io.Discard)
		defer l.SetOutput(os.Stderr)
	}

	g, gctx := errgroup.WithContext(ctx)

	opts := append([]tea.ProgramOption{tea.WithContext(gctx)}, a.teaOptions...)
	program := tea.NewProgram(tui.NewModel(gctx, a.cart, a.logger), opts...)

	g.Go(func() error {
		return a.Load(gctx)
	})
	g.Go(func() error {
		if _, err := program.Run(); err != nil {
			return zerr.Wrap(err, "cart view failed")
		}
		return nil
	})

	return g.Wait()
}

// Close releases the key-value store.
func (a *App) Close() error {
	if err := a.store.Close(); err != nil {
		return zerr.Wrap(err, "failed to close store")
	}
	return nil
}
