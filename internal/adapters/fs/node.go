package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.larenv.dev/larenv/internal/adapters/logger"
	"go.larenv.dev/larenv/internal/adapters/scancache"
	"go.larenv.dev/larenv/internal/core/ports"
)

const NodeID graft.ID = "adapter.scanner"

func init() {
	graft.Register(graft.Node[ports.Scanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, scancache.NodeID},
		Run: func(ctx context.Context) (ports.Scanner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[ports.ScanCache](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(log, cache), nil
		},
	})
}
