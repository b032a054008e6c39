package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.larenv.dev/larenv/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.larenv.dev/larenv/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.larenv.dev/larenv/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.larenv.dev/larenv/internal/adapters/ups"       //nolint:depguard // Wired in app layer
	"go.larenv.dev/larenv/internal/core/ports"
	"go.larenv.dev/larenv/internal/engine/dispatch"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the
// CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			ups.NodeID,
			dispatch.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
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
	scanner, err := graft.Dep[ports.Scanner](ctx)
	if err != nil {
		return nil, err
	}
	toolchain, err := graft.Dep[ports.Toolchain](ctx)
	if err != nil {
		return nil, err
	}
	dispatcher, err := graft.Dep[*dispatch.Dispatcher](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	return New(scanner, toolchain, dispatcher, log, tel), nil
}
