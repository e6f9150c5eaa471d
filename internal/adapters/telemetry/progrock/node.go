package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jx/internal/core/ports"
)

// NodeID is the graft node that provides telemetry.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return New(), nil
		},
	})
}
