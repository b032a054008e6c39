// Package scancache persists parsed product_deps results between runs.
package scancache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.larenv.dev/larenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultFilename is the cache file created under the user cache directory.
const DefaultFilename = "larenv_scan.json"

// Store implements ports.ScanCache using a flat JSON file mapping
// product_deps content hashes to parsed parent versions. Entries never go
// stale: a changed file has a different hash.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]string
}

var _ ports.ScanCache = (*Store)(nil)

// NewStore creates a ScanCache backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]string),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read scan cache")
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal scan cache")
	}
	return nil
}

// Get returns the cached parent version for the given content hash.
func (s *Store) Get(contentHash string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	version, ok := s.cache[contentHash]
	return version, ok
}

// Put records the parent version for the given content hash and persists the
// cache. The lock is held across the write so concurrent puts cannot clobber
// a newer snapshot with a stale one.
func (s *Store) Put(contentHash, version string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[contentHash] = version
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal scan cache")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create scan cache directory")
	}
	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write scan cache")
	}
	return nil
}
