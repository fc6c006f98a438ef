package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/framegraph/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/framegraph/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/framegraph/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/framegraph/internal/adapters/telemetry"          //nolint:depguard // Wired in app layer
	"go.trai.ch/framegraph/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/framegraph/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/framegraph/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the CLI needs from the dependency graph.
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
			logger.NodeID,
			cas.NodeID,
			telemetry.TracerNodeID,
			progrock.NodeID,
			watcher.NodeID,
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
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			rec, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log, Telemetry: rec}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.PipelineStore](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	rec, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, log, store, tracer, rec, w), nil
}
