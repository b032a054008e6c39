package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.larenv.dev/larenv/internal/adapters/telemetry/progrock"
	"go.larenv.dev/larenv/internal/core/domain"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()

	_, vertex := recorder.Record(context.Background(), "setup larsoft v09_91_02")

	_, err := vertex.Stdout().Write([]byte("setting up product\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("warning from setup\n"))
	require.NoError(t, err)

	vertex.Log(domain.LogLevelInfo, "product configured")
	vertex.Complete(nil)

	assert.NoError(t, recorder.Close())
}

func TestRecorder_CachedVertex(t *testing.T) {
	recorder := progrock.New()

	_, vertex := recorder.Record(context.Background(), "scan srcs")
	vertex.Cached()
	vertex.Complete(nil)

	assert.NoError(t, recorder.Close())
}
