// Package dispatch implements the mode-keyed environment dispatcher.
//
// Each mode is a terminal one-shot action over an explicit environment value.
// Handlers never touch the process environment; they return the mutated
// environment and a failure count, and the CLI applies the result at the
// boundary.
package dispatch

import (
	"context"

	"go.larenv.dev/larenv/internal/core/domain"
	"go.larenv.dev/larenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// Mode names one configuration step.
type Mode string

const (
	ModeBase                     Mode = "base"
	ModePrintLocalProductsScript Mode = "printlocalproductsscript"
	ModeLocalProducts            Mode = "localproducts"
	ModeLocalProductsSetup       Mode = "localproductssetup"
	ModeLarsoft                  Mode = "larsoft"
	ModeBuild                    Mode = "build"
	ModeArtEnv                   Mode = "artenv"
)

// Request carries the positional grammar of one dispatch:
// mode version qualifiers experiment [package [package_version]].
type Request struct {
	Mode           Mode
	Version        string
	Qualifiers     string
	Experiment     string
	Package        string
	PackageVersion string

	// Env is the starting environment; handlers treat it as read-only and
	// return the mutated copy in the Result.
	Env *domain.Environment
}

// Result is the structured outcome of one mode dispatch.
type Result struct {
	// Env is the environment after the mode ran.
	Env *domain.Environment

	// Failures counts per-item errors accumulated in multi-step modes.
	// Overall success iff zero.
	Failures int

	// Output holds lines for stdout, used by the pure print modes.
	Output []string
}

// Handler runs one mode.
type Handler func(ctx context.Context, req *Request) (Result, error)

// Dispatcher routes a request to the handler for its mode.
type Dispatcher struct {
	toolchain ports.Toolchain
	logger    ports.Logger
	telemetry ports.Telemetry
	cfg       *domain.ExperimentConfig

	handlers map[Mode]Handler
}

// New creates a Dispatcher with all modes registered.
func New(toolchain ports.Toolchain, logger ports.Logger, telemetry ports.Telemetry, cfg *domain.ExperimentConfig) *Dispatcher {
	d := &Dispatcher{
		toolchain: toolchain,
		logger:    logger,
		telemetry: telemetry,
		cfg:       cfg,
	}
	d.handlers = map[Mode]Handler{
		ModeBase:                     d.base,
		ModePrintLocalProductsScript: d.printLocalProductsScript,
		ModeLocalProducts:            d.localProducts,
		ModeLocalProductsSetup:       d.localProductsSetup,
		ModeLarsoft:                  d.larsoft,
		ModeBuild:                    d.build,
		ModeArtEnv:                   d.artEnv,
	}
	return d
}

// Dispatch runs the handler for the request's mode. An unrecognized mode
// fails immediately with ErrUnsupportedMode before any side effects.
func (d *Dispatcher) Dispatch(ctx context.Context, req *Request) (Result, error) {
	handler, ok := d.handlers[req.Mode]
	if !ok {
		return Result{}, zerr.With(domain.ErrUnsupportedMode, "mode", string(req.Mode))
	}

	if req.Env == nil {
		req.Env = domain.NewEnvironment()
	}
	req.Qualifiers = domain.SortQualifiers(req.Qualifiers, ":")

	return handler(ctx, req)
}

// project returns the work-area project name, defaulting to the core
// framework.
func project(env *domain.Environment) string {
	if p := env.Get(domain.EnvProject); p != "" {
		return p
	}
	return domain.CoreProduct
}

// workRoot returns the directory local-products directories live under: the
// work-area top when configured, else the current directory.
func workRoot(env *domain.Environment) string {
	if top := env.Get(domain.EnvWorkArea); top != "" {
		return top
	}
	return "."
}
