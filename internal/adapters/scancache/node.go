package scancache

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.larenv.dev/larenv/internal/core/ports"
)

const NodeID graft.ID = "adapter.scan_cache"

func init() {
	graft.Register(graft.Node[ports.ScanCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ScanCache, error) {
			dir, err := os.UserCacheDir()
			if err != nil {
				dir = os.TempDir()
			}
			return NewStore(filepath.Join(dir, "larenv", DefaultFilename))
		},
	})
}
