// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.larenv.dev/larenv/internal/core/domain"
)

// Toolchain is the injected capability interface over the external UPS
// package manager and MRB build tool. All operations take the environment as
// an explicit value and return the environment that resulted, so the mode
// logic stays testable without a real shell.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type Toolchain interface {
	// SourceScript runs a bootstrap shell script in a subshell seeded with
	// env and captures the environment it leaves behind.
	SourceScript(ctx context.Context, path string, env *domain.Environment) (*domain.Environment, error)

	// Setup performs the package manager's setup operation for one product.
	// An empty version means "current".
	Setup(ctx context.Context, product, version, qualifiers string, env *domain.Environment) (*domain.Environment, error)

	// LocalSetup delegates to the build tool's own local-products setup
	// subcommand for the current work area.
	LocalSetup(ctx context.Context, env *domain.Environment) (*domain.Environment, error)

	// InitBuildEnv initializes the build environment in the work area's build
	// directory. oldStyle selects the pre-v1 initialization command.
	InitBuildEnv(ctx context.Context, oldStyle bool, env *domain.Environment) (*domain.Environment, error)

	// NewDev runs the build tool's work-area initialization in dir for the
	// given version and qualifiers, relaying its output. The returned exit
	// code is propagated by the caller.
	NewDev(ctx context.Context, dir, version, qualifiers string, env *domain.Environment) (int, error)

	// Version reports the installed build tool's version string (e.g.
	// "v6_09_01").
	Version(ctx context.Context, env *domain.Environment) (string, error)
}
