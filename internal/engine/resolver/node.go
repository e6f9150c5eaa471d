package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jx/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/jx/internal/core/ports"
)

// NodeID is the unique identifier for the resolver factory Graft node.
const NodeID graft.ID = "engine.resolver"

// Factory creates Resolvers sharing one logger.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// New creates a Resolver over source.
func (f *Factory) New(source ports.MetadataSource, cfg Config) *Resolver {
	return New(source, cfg, f.logger)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(log), nil
		},
	})
}
