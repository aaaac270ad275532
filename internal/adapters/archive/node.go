package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stamp/internal/core/ports"
)

// NodeID is the unique identifier for the sweeper Graft node.
const NodeID graft.ID = "adapter.archive.sweeper"

func init() {
	graft.Register(graft.Node[ports.Sweeper]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Sweeper, error) {
			return NewSweeper(), nil
		},
	})
}
