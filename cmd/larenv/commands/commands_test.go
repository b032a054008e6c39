package commands_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.larenv.dev/larenv/cmd/larenv/commands"
	"go.larenv.dev/larenv/internal/adapters/telemetry"
	"go.larenv.dev/larenv/internal/app"
	"go.larenv.dev/larenv/internal/build"
	"go.larenv.dev/larenv/internal/core/domain"
	"go.larenv.dev/larenv/internal/core/ports/mocks"
	"go.larenv.dev/larenv/internal/engine/dispatch"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	cli       *commands.CLI
	toolchain *mocks.MockToolchain
	out       *bytes.Buffer
}

func newCLIFixture(t *testing.T) cliFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	toolchain := mocks.NewMockToolchain(ctrl)
	scanner := mocks.NewMockScanner(ctrl)

	cfg := &domain.ExperimentConfig{Experiments: map[string]domain.Experiment{}}
	dispatcher := dispatch.New(toolchain, logger, telemetry.NewNoop(), cfg)
	a := app.New(scanner, toolchain, dispatcher, logger, telemetry.NewNoop())

	out := &bytes.Buffer{}
	cli := commands.New(a)
	cli.SetOut(out)

	return cliFixture{cli: cli, toolchain: toolchain, out: out}
}

func TestSetup_PrintLocalProductsScript(t *testing.T) {
	top := t.TempDir()
	t.Setenv(domain.EnvWorkArea, top)
	t.Setenv(domain.EnvProject, "larsoft")

	f := newCLIFixture(t)
	f.cli.SetArgs([]string{"setup", "printlocalproductsscript", "v1", "e20"})

	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Equal(t,
		filepath.Join(top, "localProducts_larsoft_v1_e20", "setup")+"\n",
		f.out.String())
}

func TestSetup_EmitsExportDiff(t *testing.T) {
	f := newCLIFixture(t)
	f.toolchain.EXPECT().
		LocalSetup(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, env *domain.Environment) (*domain.Environment, error) {
			next := env.Clone()
			next.Set("SETUP_LARSOFT", "larsoft v1 -q e20")
			return next, nil
		})

	f.cli.SetArgs([]string{"setup", "localproductssetup"})
	require.NoError(t, f.cli.Execute(context.Background()))

	// Only the changed variable shows up, rendered for a shell eval.
	assert.Equal(t, "export SETUP_LARSOFT='larsoft v1 -q e20';\n", f.out.String())
}

func TestSetup_UnknownMode(t *testing.T) {
	f := newCLIFixture(t)
	f.cli.SetArgs([]string{"setup", "bogus"})

	err := f.cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedMode))
	assert.Empty(t, f.out.String())
}

func TestSetup_FailuresSurfaceAsError(t *testing.T) {
	f := newCLIFixture(t)
	f.toolchain.EXPECT().
		Setup(gomock.Any(), "larsoft", "v1", "e20", gomock.Any()).
		Return(nil, errors.New("product not found"))

	f.cli.SetArgs([]string{"setup", "larsoft", "v1", "e20"})
	err := f.cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSetupFailed))
}

func TestUpdate_NoWorkArea(t *testing.T) {
	t.Setenv(domain.EnvWorkArea, "")

	f := newCLIFixture(t)
	f.cli.SetArgs([]string{"update"})

	err := f.cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoWorkArea))
}

func TestVersion(t *testing.T) {
	f := newCLIFixture(t)
	f.cli.SetArgs([]string{"version"})

	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Equal(t, build.Version+"\n", f.out.String())
}
