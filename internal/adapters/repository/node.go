package repository

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jx/internal/adapters/remote"
	"go.trai.ch/jx/internal/core/ports"
)

// NodeID is the graft node that provides the repository factory.
const NodeID graft.ID = "adapter.repository"

func init() {
	graft.Register(graft.Node[ports.RepositoryFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RepositoryFactory, error) {
			return NewFactory(remote.NewClient()), nil
		},
	})
}
