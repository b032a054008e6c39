// Package ups implements the Toolchain port over the external UPS package
// manager and MRB build tool.
//
// UPS and MRB mutate a shell's environment by having the user source shell
// fragments. A child process cannot do that to its parent, so every operation
// here runs its fragment in a throwaway POSIX shell seeded with the explicit
// environment, captures `env -0` on the way out, and returns the resulting
// environment as a value. The CLI decides what to do with the diff.
package ups

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.larenv.dev/larenv/internal/core/domain"
	"go.larenv.dev/larenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// Toolchain implements ports.Toolchain using os/exec.
type Toolchain struct {
	logger ports.Logger

	// shell is the interpreter used for env capture, "sh" unless overridden
	// in tests.
	shell string
}

var _ ports.Toolchain = (*Toolchain)(nil)

// New creates a new Toolchain adapter.
func New(logger ports.Logger) *Toolchain {
	return &Toolchain{logger: logger, shell: "sh"}
}

// SourceScript sources the shell script at path and captures the environment
// it leaves behind. The script's own output is diverted to stderr so it
// cannot corrupt the capture.
func (t *Toolchain) SourceScript(ctx context.Context, path string, env *domain.Environment) (*domain.Environment, error) {
	snippet := fmt.Sprintf(". %s", shellWord(path))
	out, err := t.capture(ctx, snippet, env)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to source script"), "script", path)
	}
	return out, nil
}

// Setup performs the UPS setup operation for one product. UPS defines setup
// as a shell function in ${UPS_DIR}/setup, so that file is sourced first.
func (t *Toolchain) Setup(ctx context.Context, product, version, qualifiers string, env *domain.Environment) (*domain.Environment, error) {
	var b strings.Builder
	b.WriteString(`. "$UPS_DIR/setup" && setup `)
	b.WriteString(shellWord(product))
	if version != "" {
		b.WriteString(" " + shellWord(version))
	}
	if qualifiers != "" {
		b.WriteString(" -q " + shellWord(qualifiers))
	}

	out, err := t.capture(ctx, b.String(), env)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrSetupFailed.Error())
		err = zerr.With(err, "product", product)
		err = zerr.With(err, "version", version)
		err = zerr.With(err, "qualifiers", qualifiers)
		return nil, err
	}
	return out, nil
}

// LocalSetup delegates to mrb's own local-products setup fragment.
func (t *Toolchain) LocalSetup(ctx context.Context, env *domain.Environment) (*domain.Environment, error) {
	out, err := t.capture(ctx, `. "$MRB_DIR/bin/setup_local_products"`, env)
	if err != nil {
		return nil, zerr.Wrap(err, "mrb local products setup failed")
	}
	return out, nil
}

// InitBuildEnv initializes the build environment. MRB moved its set-env
// fragment between major versions; oldStyle selects the v0 location.
func (t *Toolchain) InitBuildEnv(ctx context.Context, oldStyle bool, env *domain.Environment) (*domain.Environment, error) {
	snippet := `. "$MRB_DIR/libexec/mrbSetEnv"`
	if oldStyle {
		snippet = `. "$MRB_DIR/bin/mrbSetEnv"`
	}
	// mrbSetEnv inspects its working directory, so the fragment must run
	// from the build area.
	if buildDir := env.Get(domain.EnvBuildDir); buildDir != "" {
		snippet = "cd " + shellWord(buildDir) + " && " + snippet
	}
	out, err := t.capture(ctx, snippet, env)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to initialize build environment")
	}
	return out, nil
}

// NewDev runs `mrb newDev` in dir, relaying its output through the logger.
// The subprocess exit code is returned for the caller to propagate.
func (t *Toolchain) NewDev(ctx context.Context, dir, version, qualifiers string, env *domain.Environment) (int, error) {
	args := []string{"newDev", "-p"}
	if version != "" {
		args = append(args, "-v", version)
	}
	if qualifiers != "" {
		args = append(args, "-q", qualifiers)
	}

	cmd := exec.CommandContext(ctx, "mrb", args...) //nolint:gosec // fixed tool name
	cmd.Dir = dir
	cmd.Env = env.Environ()
	cmd.Stdout = &logWriter{logger: t.logger}
	cmd.Stderr = &logWriter{logger: t.logger, isErr: true}

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), zerr.With(zerr.Wrap(err, "mrb newDev failed"), "exit_code", exitErr.ExitCode())
		}
		return -1, zerr.Wrap(err, "failed to run mrb newDev")
	}
	return 0, nil
}

// Version reports the installed mrb version string, e.g. "v6_09_01".
func (t *Toolchain) Version(ctx context.Context, env *domain.Environment) (string, error) {
	cmd := exec.CommandContext(ctx, "mrb", "--version")
	cmd.Env = env.Environ()
	out, err := cmd.Output()
	if err != nil {
		return "", zerr.Wrap(err, "failed to query mrb version")
	}
	return ParseVersion(string(out)), nil
}

// ParseVersion extracts the version token from mrb's --version output, which
// looks like "mrb v6_09_01". Returns "" when no token is found.
func ParseVersion(out string) string {
	for _, field := range strings.Fields(out) {
		if strings.HasPrefix(field, "v") && len(field) > 1 && field[1] >= '0' && field[1] <= '9' {
			return field
		}
	}
	return ""
}

// capture runs snippet in a fresh shell seeded with env and parses the
// NUL-separated `env -0` dump it emits on success.
func (t *Toolchain) capture(ctx context.Context, snippet string, env *domain.Environment) (*domain.Environment, error) {
	script := fmt.Sprintf("{ %s ; } >&2 && env -0", snippet)

	cmd := exec.CommandContext(ctx, t.shell, "-c", script) //nolint:gosec // snippet is assembled from quoted words
	cmd.Env = env.Environ()
	cmd.Stderr = &logWriter{logger: t.logger}

	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, zerr.With(zerr.Wrap(err, "shell fragment failed"), "exit_code", exitErr.ExitCode())
		}
		return nil, zerr.Wrap(err, "failed to start shell")
	}

	return parseEnvDump(out), nil
}

func parseEnvDump(out []byte) *domain.Environment {
	env := domain.NewEnvironment()
	for _, entry := range bytes.Split(out, []byte{0}) {
		if k, v, ok := strings.Cut(string(entry), "="); ok {
			env.Set(k, v)
		}
	}
	return env
}

// shellWord single-quotes s for safe interpolation into a shell snippet.
func shellWord(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

type logWriter struct {
	logger ports.Logger
	isErr  bool
}

func (w *logWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		if w.isErr {
			w.logger.Error(zerr.New(line))
		} else {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}
