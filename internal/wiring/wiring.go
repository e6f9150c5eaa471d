// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/jx/internal/adapters/config"
	_ "go.trai.ch/jx/internal/adapters/fetcher"
	_ "go.trai.ch/jx/internal/adapters/lockfile"
	_ "go.trai.ch/jx/internal/adapters/logger"
	_ "go.trai.ch/jx/internal/adapters/repository"
	_ "go.trai.ch/jx/internal/adapters/settings"
	_ "go.trai.ch/jx/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/jx/internal/app"
	_ "go.trai.ch/jx/internal/engine/resolver"
)
