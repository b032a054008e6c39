package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.larenv.dev/larenv/internal/core/domain"
)

const NodeID graft.ID = "adapter.experiments_config"

// EnvConfigPath names the environment variable pointing at an experiments
// config file overriding the compiled-in defaults.
const EnvConfigPath = "LARENV_EXPERIMENTS_CONFIG"

func init() {
	graft.Register(graft.Node[*domain.ExperimentConfig]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*domain.ExperimentConfig, error) {
			return Load(os.Getenv(EnvConfigPath))
		},
	})
}
