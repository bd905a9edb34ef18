// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gostore/internal/adapters/config"
	_ "go.trai.ch/gostore/internal/adapters/kv"
	_ "go.trai.ch/gostore/internal/adapters/logger"
	// Register app and engine nodes.
	_ "go.trai.ch/gostore/internal/app"
	_ "go.trai.ch/gostore/internal/engine/cart"
)
