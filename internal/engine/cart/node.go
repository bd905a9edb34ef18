package cart

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gostore/internal/adapters/config" //nolint:depguard // Wired in engine node
	"go.trai.ch/gostore/internal/adapters/kv"     //nolint:depguard // Wired in engine node
	"go.trai.ch/gostore/internal/adapters/logger" //nolint:depguard // Wired in engine node
	"go.trai.ch/gostore/internal/core/ports"
)

// NodeID is the unique identifier for the cart manager Graft node.
const NodeID graft.ID = "engine.cart"

func init() {
	graft.Register(graft.Node[*Manager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, kv.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Manager, error) {
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.KVStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewManager(store, log, settings.Store.Key), nil
		},
	})
}
