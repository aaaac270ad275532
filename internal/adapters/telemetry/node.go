package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/stamp/internal/adapters/logger"
	"go.trai.ch/stamp/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.telemetry"

// TraceEnvVar enables span logging when set to a non-empty value.
const TraceEnvVar = "STAMP_TRACE"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			if os.Getenv(TraceEnvVar) == "" {
				return NewNoop(), nil
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOTelTracer(log), nil
		},
	})
}
