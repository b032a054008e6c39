package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.larenv.dev/larenv/internal/adapters/telemetry/progrock"
	"go.larenv.dev/larenv/internal/core/ports"
)

const NodeID graft.ID = "adapter.telemetry"

// EnvProgress opts in to the progrock progress recorder. The default is the
// no-op recorder since stdout belongs to the shell eval.
const EnvProgress = "LARENV_PROGRESS"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			if os.Getenv(EnvProgress) != "" {
				return progrock.New(), nil
			}
			return NewNoop(), nil
		},
	})
}
