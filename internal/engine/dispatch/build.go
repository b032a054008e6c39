package dispatch

import (
	"context"
	"fmt"

	"go.larenv.dev/larenv/internal/core/domain"
)

// build detects the installed build tool's major version and runs the
// version-appropriate build-environment initialization.
func (d *Dispatcher) build(ctx context.Context, req *Request) (Result, error) {
	version, err := d.toolchain.Version(ctx, req.Env)
	if err != nil {
		d.logger.Error(err)
		return Result{Env: req.Env, Failures: 1}, nil
	}

	oldStyle := domain.OldStyleBuildTool(version)
	if oldStyle {
		d.logger.Info(fmt.Sprintf("mrb %s uses the old-style build environment", version))
	}

	env, err := d.toolchain.InitBuildEnv(ctx, oldStyle, req.Env)
	if err != nil {
		d.logger.Error(err)
		return Result{Env: req.Env, Failures: 1}, nil
	}
	return Result{Env: env}, nil
}
