package dispatch

import (
	"context"
	"fmt"
	"os"

	"go.larenv.dev/larenv/internal/core/domain"
)

// base runs the experiment bootstrap: the experiment's own setup script when
// one is configured and readable, else the local fallback that layers package
// repositories by priority and reinitializes UPS. Either way the MRB build
// tool ends up set up. Success iff zero failures.
func (d *Dispatcher) base(ctx context.Context, req *Request) (Result, error) {
	env := req.Env.Clone()
	failures := 0

	exp, known := d.cfg.Lookup(req.Experiment)
	if known && fileReadable(exp.Bootstrap) {
		next, err := d.toolchain.SourceScript(ctx, exp.Bootstrap, env)
		if err != nil {
			d.logger.Error(err)
			failures++
		} else {
			env = next
		}
	} else {
		if req.Experiment != "" {
			d.logger.Warn(fmt.Sprintf("no bootstrap script for experiment %q, using local fallback", req.Experiment))
		}
		var err error
		env, err = d.localBootstrap(ctx, env)
		if err != nil {
			d.logger.Error(err)
			failures++
		}
	}

	// The bootstrap scripts of some experiments stop short of mrb itself.
	if env.Get("MRB_DIR") == "" {
		next, err := d.toolchain.Setup(ctx, "mrb", "", "", env)
		if err != nil {
			d.logger.Error(err)
			failures++
		} else {
			env = next
		}
	}

	return Result{Env: env, Failures: failures}, nil
}

// localBootstrap layers the local package-repository list at lowest priority
// and the local-override list at highest, then re-sources the UPS setup
// script so the package manager sees the new layering.
func (d *Dispatcher) localBootstrap(ctx context.Context, env *domain.Environment) (*domain.Environment, error) {
	for _, dir := range d.cfg.LocalRepos {
		env.AppendPath(domain.EnvProducts, dir)
	}
	for _, dir := range d.cfg.LocalOverrides {
		env.PrependPath(domain.EnvProducts, dir)
	}

	if d.cfg.UPSSetup == "" || !fileReadable(d.cfg.UPSSetup) {
		return env, nil
	}
	return d.toolchain.SourceScript(ctx, d.cfg.UPSSetup, env)
}

func fileReadable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
