package dispatch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.larenv.dev/larenv/internal/adapters/config"
	"go.larenv.dev/larenv/internal/adapters/logger"
	"go.larenv.dev/larenv/internal/adapters/telemetry"
	"go.larenv.dev/larenv/internal/adapters/ups"
	"go.larenv.dev/larenv/internal/core/domain"
	"go.larenv.dev/larenv/internal/core/ports"
)

const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ups.NodeID, logger.NodeID, telemetry.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			toolchain, err := graft.Dep[ports.Toolchain](ctx)
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
			cfg, err := graft.Dep[*domain.ExperimentConfig](ctx)
			if err != nil {
				return nil, err
			}
			return New(toolchain, log, tel, cfg), nil
		},
	})
}
