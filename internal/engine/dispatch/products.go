package dispatch

import (
	"context"
	"path/filepath"

	"go.larenv.dev/larenv/internal/core/domain"
	"go.trai.ch/zerr"
)

// printLocalProductsScript is pure: it resolves the expected local-products
// setup script path by the documented fallback order and emits it. No side
// effects, no environment mutation.
func (d *Dispatcher) printLocalProductsScript(_ context.Context, req *Request) (Result, error) {
	lp := domain.LocalProducts{
		Project:    project(req.Env),
		Version:    req.Version,
		Qualifiers: req.Qualifiers,
	}

	path := lp.ScriptPath(workRoot(req.Env))
	if path == "" {
		// Nothing on disk: emit the conventional path for this triple so the
		// caller can still see where the script is expected.
		path = filepath.Join(workRoot(req.Env), lp.DirName(), "setup")
	}
	return Result{Env: req.Env, Output: []string{path}}, nil
}

// localProducts sources the local-products setup script and deduplicates the
// products search path it grew.
func (d *Dispatcher) localProducts(ctx context.Context, req *Request) (Result, error) {
	lp := domain.LocalProducts{
		Project:    project(req.Env),
		Version:    req.Version,
		Qualifiers: req.Qualifiers,
	}

	path := lp.ScriptPath(workRoot(req.Env))
	if path == "" {
		err := zerr.With(domain.ErrNoSetupScript, "project", lp.Project)
		err = zerr.With(err, "version", lp.Version)
		err = zerr.With(err, "work_root", workRoot(req.Env))
		d.logger.Error(err)
		return Result{Env: req.Env, Failures: 1}, nil
	}

	env, err := d.toolchain.SourceScript(ctx, path, req.Env)
	if err != nil {
		d.logger.Error(err)
		return Result{Env: req.Env, Failures: 1}, nil
	}

	env.DedupePath(domain.EnvProducts)
	return Result{Env: env}, nil
}

// localProductsSetup delegates entirely to the build tool's own local-setup
// subcommand.
func (d *Dispatcher) localProductsSetup(ctx context.Context, req *Request) (Result, error) {
	env, err := d.toolchain.LocalSetup(ctx, req.Env)
	if err != nil {
		d.logger.Error(err)
		return Result{Env: req.Env, Failures: 1}, nil
	}
	return Result{Env: env}, nil
}
