package kv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gostore/internal/adapters/config"
	"go.trai.ch/gostore/internal/core/ports"
)

// NodeID is the unique identifier for the key-value store Graft node.
const NodeID graft.ID = "adapter.kv_store"

func init() {
	graft.Register(graft.Node[ports.KVStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.KVStore, error) {
			settings, err := graft.Dep[config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return Open(ctx, settings.Store)
		},
	})
}
