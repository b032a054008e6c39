package ports

import (
	"context"

	"go.larenv.dev/larenv/internal/core/domain"
)

// Scanner reads package dependency records out of a work area's source tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan walks the immediate children of srcRoot and returns one record per
	// package directory that is version controlled and carries a readable
	// ups/product_deps file.
	Scan(ctx context.Context, srcRoot string) ([]domain.ProductDeps, error)
}

// ScanCache memoizes parsed parent versions keyed by product_deps content
// hash, so unchanged files are not re-parsed across runs.
type ScanCache interface {
	// Get returns the cached parent version for the given content hash.
	Get(contentHash string) (version string, ok bool)

	// Put records the parent version for the given content hash.
	Put(contentHash, version string) error
}
