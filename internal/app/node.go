package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gostore/internal/adapters/kv"     //nolint:depguard // Wired in app layer
	"go.trai.ch/gostore/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/gostore/internal/core/ports"
	"go.trai.ch/gostore/internal/engine/cart"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cart.NodeID,
			kv.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			m, err := graft.Dep[*cart.Manager](ctx)
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

			return New(m, store, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
	}, nil
}
