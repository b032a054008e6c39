// Package telemetry provides the no-op telemetry adapter.
package telemetry

import (
	"context"
	"io"

	"go.larenv.dev/larenv/internal/core/domain"
	"go.larenv.dev/larenv/internal/core/ports"
)

// Noop implements ports.Telemetry discarding everything. It is the default
// when stdout is consumed by a shell eval and no progress UI is wanted.
type Noop struct{}

var _ ports.Telemetry = (*Noop)(nil)

// NewNoop creates a no-op telemetry recorder.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a vertex that discards all activity.
func (n *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close is a no-op.
func (n *Noop) Close() error {
	return nil
}

type noopVertex struct{}

func (noopVertex) Stdout() io.Writer           { return io.Discard }
func (noopVertex) Stderr() io.Writer           { return io.Discard }
func (noopVertex) Log(domain.LogLevel, string) {}
func (noopVertex) Complete(error)              {}
func (noopVertex) Cached()                     {}
