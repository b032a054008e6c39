// Package fs implements the source-tree scanner adapter.
package fs

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.larenv.dev/larenv/internal/core/domain"
	"go.larenv.dev/larenv/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// vcsMarker identifies a package directory as version controlled.
const vcsMarker = ".git"

// productDepsPath is the dependency-declaration file relative to a package
// directory.
var productDepsPath = filepath.Join("ups", "product_deps")

// Scanner implements ports.Scanner over the real filesystem.
type Scanner struct {
	logger ports.Logger
	cache  ports.ScanCache
}

var _ ports.Scanner = (*Scanner)(nil)

// NewScanner creates a new Scanner. cache may be nil, in which case every
// product_deps file is parsed fresh.
func NewScanner(logger ports.Logger, cache ports.ScanCache) *Scanner {
	return &Scanner{logger: logger, cache: cache}
}

// Scan walks the immediate children of srcRoot and returns one dependency
// record per package directory that carries both a version-control marker and
// a readable product_deps file. Records come back sorted by package name.
func (s *Scanner) Scan(ctx context.Context, srcRoot string) ([]domain.ProductDeps, error) {
	entries, err := os.ReadDir(srcRoot)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read source directory"), "src_root", srcRoot)
	}

	var (
		mu      sync.Mutex
		records []domain.ProductDeps
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pkg := entry.Name()
		pkgDir := filepath.Join(srcRoot, pkg)

		if _, err := os.Stat(filepath.Join(pkgDir, vcsMarker)); err != nil {
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			version, err := s.parentVersion(filepath.Join(pkgDir, productDepsPath))
			if err != nil {
				// Per-package parse failures are diagnostics, not fatal.
				s.logger.Warn(fmt.Sprintf("skipping %s: %v", pkg, err))
				return nil
			}

			mu.Lock()
			records = append(records, domain.ProductDeps{Package: pkg, ParentVersion: version})
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(records, func(a, b domain.ProductDeps) int {
		return strings.Compare(a.Package, b.Package)
	})
	return records, nil
}

// parentVersion reads the declared parent version out of a product_deps file,
// consulting the content-hash cache first.
func (s *Scanner) parentVersion(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is under the caller's source tree
	if err != nil {
		return "", zerr.Wrap(err, "failed to read product_deps")
	}

	key := fmt.Sprintf("%016x", xxhash.Sum64(data))
	if s.cache != nil {
		if version, ok := s.cache.Get(key); ok {
			return version, nil
		}
	}

	version, err := ParseParentVersion(data)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Put(key, version); err != nil {
			s.logger.Warn(fmt.Sprintf("scan cache write failed: %v", err))
		}
	}
	return version, nil
}

// ParseParentVersion extracts the parent framework version from product_deps
// content: the third whitespace-separated field of the first line whose first
// field is "parent".
func ParseParentVersion(data []byte) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) >= 2 && fields[0] == "parent" {
			// "parent <product> <version>": the version may be omitted in
			// newer product_deps files.
			if len(fields) >= 3 {
				return fields[2], nil
			}
			return "", nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", zerr.Wrap(err, "failed to scan product_deps")
	}
	return "", zerr.New("no parent line in product_deps")
}
