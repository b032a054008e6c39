package dispatch

import (
	"context"
	"fmt"

	"go.larenv.dev/larenv/internal/core/domain"
)

// larsoft sets up the framework product plus the experiment's codename list,
// or a single explicitly requested package. Per-item failures accumulate; the
// loop never stops early.
func (d *Dispatcher) larsoft(ctx context.Context, req *Request) (Result, error) {
	var entries []string
	if req.Package != "" {
		entry := req.Package
		if req.PackageVersion != "" {
			entry += "@" + req.PackageVersion
		}
		entries = []string{entry}
	} else {
		entries = []string{domain.CoreProduct}
		if exp, ok := d.cfg.Lookup(req.Experiment); ok {
			entries = append(entries, exp.Codenames...)
		}
	}

	env := req.Env.Clone()
	failures := 0

	for _, entry := range entries {
		code := domain.ParseCodename(entry, req.Version, req.Qualifiers)

		_, vertex := d.telemetry.Record(ctx, fmt.Sprintf("setup %s %s", code.Name, code.Version))
		next, err := d.toolchain.Setup(ctx, code.Name, code.Version, code.Qualifiers, env)
		vertex.Complete(err)

		if err != nil {
			d.logger.Error(err)
			failures++
			continue
		}
		env = next
	}

	return Result{Env: env, Failures: failures}, nil
}
