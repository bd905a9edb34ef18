package cart

import (
	"context"

	"go.trai.ch/gostore/internal/core/domain"
)

type contextKey struct{}

// NewContext returns a copy of ctx carrying m.
func NewContext(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, m)
}

// FromContext returns the Manager carried by ctx.
// It panics when ctx carries none: callers must run under NewContext.
func FromContext(ctx context.Context) *Manager {
	m, ok := ctx.Value(contextKey{}).(*Manager)
	if !ok || m == nil {
		panic(domain.ErrNoCart)
	}
	return m
}
