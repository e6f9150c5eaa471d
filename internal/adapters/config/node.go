package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jx/internal/core/ports"
)

// NodeID is the graft node that provides the project config detector.
const NodeID graft.ID = "adapter.config_detector"

func init() {
	graft.Register(graft.Node[ports.ConfigDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigDetector, error) {
			return NewDetector(), nil
		},
	})
}
