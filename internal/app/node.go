package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stamp/internal/adapters/archive"  //nolint:depguard // Wired in app layer
	"go.trai.ch/stamp/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/stamp/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/stamp/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/stamp/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/stamp/internal/adapters/telemetry"
	"go.trai.ch/stamp/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.HasherNodeID,
			fs.ResolverNodeID,
			archive.NodeID,
			manifest.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.PathResolver](ctx)
	if err != nil {
		return nil, err
	}

	sweeper, err := graft.Dep[ports.Sweeper](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, hasher, resolver, sweeper, store, log, tracer), nil
}
