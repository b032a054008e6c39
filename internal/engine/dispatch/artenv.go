package dispatch

import (
	"context"
	"os"
	"path/filepath"

	"go.larenv.dev/larenv/internal/core/domain"
)

// Candidate subdirectories feeding the two art search paths.
var (
	fhiclDirs = []string{"job", "fcl"}
	fwDirs    = []string{"gdml", "fw"}
)

// artEnv appends existing candidate directories, under the work-area root and
// the current directory, to the FCL-file and framework-data search paths,
// then deduplicates both.
func (d *Dispatcher) artEnv(_ context.Context, req *Request) (Result, error) {
	env := req.Env.Clone()

	roots := []string{}
	if top := env.Get(domain.EnvWorkArea); top != "" {
		roots = append(roots, top)
	}
	if cwd, err := os.Getwd(); err == nil {
		roots = append(roots, cwd)
	}

	for _, root := range roots {
		for _, dir := range fhiclDirs {
			if p := existingDir(filepath.Join(root, dir)); p != "" {
				env.AppendPath(domain.EnvFHiCLPath, p)
			}
		}
		for _, dir := range fwDirs {
			if p := existingDir(filepath.Join(root, dir)); p != "" {
				env.AppendPath(domain.EnvFWSearchPath, p)
			}
		}
	}

	env.DedupePath(domain.EnvFHiCLPath)
	env.DedupePath(domain.EnvFWSearchPath)
	return Result{Env: env}, nil
}

func existingDir(path string) string {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return ""
	}
	return path
}
