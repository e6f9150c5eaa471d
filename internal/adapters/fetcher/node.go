package fetcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/jx/internal/core/ports"
)

// InstallerNodeID is the graft node that provides the lib directory installer.
const InstallerNodeID graft.ID = "adapter.installer"

func init() {
	graft.Register(graft.Node[ports.Installer]{
		ID:        InstallerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Installer, error) {
			return NewInstaller(), nil
		},
	})
}
