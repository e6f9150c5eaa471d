package settings

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/jx/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the settings loader Graft node.
const NodeID graft.ID = "adapter.settings_loader"

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SettingsLoader, error) {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to determine home directory")
			}
			return NewLoader(home), nil
		},
	})
}
