package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jx/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/jx/internal/adapters/fetcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/jx/internal/adapters/lockfile"           //nolint:depguard // Wired in app layer
	"go.trai.ch/jx/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/jx/internal/adapters/repository"         //nolint:depguard // Wired in app layer
	"go.trai.ch/jx/internal/adapters/settings"           //nolint:depguard // Wired in app layer
	"go.trai.ch/jx/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/jx/internal/core/ports"
	"go.trai.ch/jx/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components is everything the CLI needs from the graph.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			settings.NodeID,
			lockfile.NodeID,
			repository.NodeID,
			fetcher.InstallerNodeID,
			resolver.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	detector, err := graft.Dep[ports.ConfigDetector](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.LockStore](ctx)
	if err != nil {
		return nil, err
	}
	repos, err := graft.Dep[ports.RepositoryFactory](ctx)
	if err != nil {
		return nil, err
	}
	installer, err := graft.Dep[ports.Installer](ctx)
	if err != nil {
		return nil, err
	}
	resolvers, err := graft.Dep[*resolver.Factory](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(detector, loader, store, repos, installer, resolvers, telemetry, log), nil
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
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
