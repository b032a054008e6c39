package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.larenv.dev/larenv/internal/core/domain"
	"go.trai.ch/zerr"
)

// UpdateOptions controls the work-area version migration.
type UpdateOptions struct {
	// Version is the explicit target version; empty means "infer from the
	// source tree".
	Version string

	// Qualifiers are the target qualifiers; empty means "keep the work
	// area's".
	Qualifiers string

	// Force recreates an existing local-products directory, deleting its
	// prior contents.
	Force bool

	// IgnoreInconsistency tolerates disagreeing mandatory packages.
	IgnoreInconsistency bool
}

// Update migrates the work area to a consistent framework version: it scans
// the source tree for declared parent versions, reconciles them into one
// decision, creates the matching local-products directory, repoints the
// localProducts symlink, and runs the build tool's work-area initialization.
//
// Re-running against an existing target directory without Force is a no-op
// that reports success.
func (a *App) Update(ctx context.Context, env *domain.Environment, opts UpdateOptions) error {
	area := domain.WorkAreaFromEnvironment(env)
	if !area.Valid() {
		return zerr.Wrap(domain.ErrNoWorkArea, "set up the work area before updating it")
	}

	qualifiers := domain.SortQualifiers(opts.Qualifiers, ":")
	if qualifiers == "" {
		qualifiers = domain.SortQualifiers(area.Qualifiers, ":")
	}

	version, err := a.resolveVersion(ctx, area, opts)
	if err != nil {
		return err
	}

	lp := domain.LocalProducts{
		Project:    project(area),
		Version:    version,
		Qualifiers: qualifiers,
	}
	target := filepath.Join(area.Top, lp.DirName())

	created, err := a.ensureLocalProducts(target, opts.Force)
	if err != nil {
		return err
	}
	if !created {
		a.logger.Info(fmt.Sprintf("%s already exists, nothing to do", lp.DirName()))
		return nil
	}

	if err := relink(area.Top, target); err != nil {
		return err
	}

	exitCode, err := a.toolchain.NewDev(ctx, area.Top, version, qualifiers, env)
	if err != nil {
		return zerr.With(err, "exit_code", exitCode)
	}

	a.logger.Info(fmt.Sprintf("work area updated to %s (%s)", version, qualifiers))
	return nil
}

// resolveVersion returns the explicit version when one was supplied, else
// reconciles the source tree.
func (a *App) resolveVersion(ctx context.Context, area domain.WorkArea, opts UpdateOptions) (string, error) {
	srcOK := dirExists(area.SourceDir)

	if opts.Version != "" {
		if !srcOK {
			a.logger.Warn(fmt.Sprintf("no source directory at %q, trusting explicit version %s", area.SourceDir, opts.Version))
		}
		return opts.Version, nil
	}

	if !srcOK {
		return "", zerr.With(domain.ErrNoSourceDir, "src_dir", area.SourceDir)
	}

	_, vertex := a.telemetry.Record(ctx, "scan "+area.SourceDir)
	records, err := a.scanner.Scan(ctx, area.SourceDir)
	vertex.Complete(err)
	if err != nil {
		return "", err
	}

	decision, err := domain.Reconcile(records, domain.ReconcileOptions{
		IgnoreInconsistency: opts.IgnoreInconsistency,
	})
	for _, diag := range decision.Diagnostics {
		a.logger.Warn(diag)
	}
	if err != nil {
		return "", err
	}
	return decision.Version, nil
}

// ensureLocalProducts creates the target directory, honoring the idempotence
// and force contracts. Returns whether the directory was (re)created.
func (a *App) ensureLocalProducts(target string, force bool) (bool, error) {
	if _, err := os.Stat(target); err == nil {
		if !force {
			return false, nil
		}
		if err := os.RemoveAll(target); err != nil {
			return false, zerr.With(zerr.Wrap(err, "failed to remove local products directory"), "path", target)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, zerr.With(zerr.Wrap(err, "failed to stat local products directory"), "path", target)
	}

	if err := os.MkdirAll(target, 0o755); err != nil { //nolint:gosec // products dirs are world readable
		return false, zerr.With(zerr.Wrap(err, "failed to create local products directory"), "path", target)
	}
	return true, nil
}

// relink repoints the localProducts symlink at the freshly created directory.
func relink(top, target string) error {
	link := filepath.Join(top, domain.LocalProductsLink)
	if _, err := os.Lstat(link); err == nil {
		if err := os.Remove(link); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to remove old localProducts link"), "path", link)
		}
	}
	if err := os.Symlink(target, link); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to link localProducts"), "path", link)
	}
	return nil
}

func project(area domain.WorkArea) string {
	if area.Project != "" {
		return area.Project
	}
	return domain.CoreProduct
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
