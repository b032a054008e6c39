package ups_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.larenv.dev/larenv/internal/adapters/ups"
	"go.larenv.dev/larenv/internal/core/domain"
	"go.larenv.dev/larenv/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()
	return logger
}

func baseEnv() *domain.Environment {
	env := domain.NewEnvironment()
	env.Set("PATH", os.Getenv("PATH"))
	return env
}

func TestSourceScript_CapturesEnvironment(t *testing.T) {
	script := filepath.Join(t.TempDir(), "bootstrap.sh")
	content := "PRODUCTS=/cvmfs/larsoft.opensciencegrid.org/products\nexport PRODUCTS\necho bootstrap output\n"
	require.NoError(t, os.WriteFile(script, []byte(content), 0o755))

	tc := ups.New(quietLogger(t))
	env, err := tc.SourceScript(context.Background(), script, baseEnv())
	require.NoError(t, err)

	// The script's own output must not leak into the captured environment.
	assert.Equal(t, "/cvmfs/larsoft.opensciencegrid.org/products", env.Get("PRODUCTS"))
	assert.NotEmpty(t, env.Get("PATH"))
}

func TestSourceScript_PreservesSeededEnvironment(t *testing.T) {
	script := filepath.Join(t.TempDir(), "noop.sh")
	require.NoError(t, os.WriteFile(script, []byte(": nothing\n"), 0o755))

	seed := baseEnv()
	seed.Set("MRB_PROJECT", "larsoft")

	tc := ups.New(quietLogger(t))
	env, err := tc.SourceScript(context.Background(), script, seed)
	require.NoError(t, err)
	assert.Equal(t, "larsoft", env.Get("MRB_PROJECT"))
}

func TestSourceScript_FailingScript(t *testing.T) {
	script := filepath.Join(t.TempDir(), "broken.sh")
	require.NoError(t, os.WriteFile(script, []byte("exit 3\n"), 0o755))

	tc := ups.New(quietLogger(t))
	_, err := tc.SourceScript(context.Background(), script, baseEnv())
	assert.Error(t, err)
}

func TestSourceScript_MissingScript(t *testing.T) {
	tc := ups.New(quietLogger(t))
	_, err := tc.SourceScript(context.Background(), filepath.Join(t.TempDir(), "nope.sh"), baseEnv())
	assert.Error(t, err)
}

func TestSetup_FailsWithoutUPS(t *testing.T) {
	env := baseEnv()
	env.Set("UPS_DIR", filepath.Join(t.TempDir(), "no-ups"))

	tc := ups.New(quietLogger(t))
	_, err := tc.Setup(context.Background(), "larsoft", "v09_10_00", "e20:prof", env)
	assert.Error(t, err)
}

func TestInitBuildEnv_RunsInBuildDir(t *testing.T) {
	tests := []struct {
		name     string
		oldStyle bool
		fragment string
	}{
		{name: "new style", oldStyle: false, fragment: filepath.Join("libexec", "mrbSetEnv")},
		{name: "old style", oldStyle: true, fragment: filepath.Join("bin", "mrbSetEnv")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mrbDir := t.TempDir()
			script := filepath.Join(mrbDir, tt.fragment)
			require.NoError(t, os.MkdirAll(filepath.Dir(script), 0o755))
			// The fragment records where it ran.
			require.NoError(t, os.WriteFile(script, []byte("MRB_SETENV_PWD=$(pwd)\nexport MRB_SETENV_PWD\n"), 0o644))

			buildDir := t.TempDir()

			env := baseEnv()
			env.Set("MRB_DIR", mrbDir)
			env.Set(domain.EnvBuildDir, buildDir)

			tc := ups.New(quietLogger(t))
			out, err := tc.InitBuildEnv(context.Background(), tt.oldStyle, env)
			require.NoError(t, err)
			assert.Equal(t, buildDir, out.Get("MRB_SETENV_PWD"))
		})
	}
}

func TestInitBuildEnv_NoBuildDirConfigured(t *testing.T) {
	mrbDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(mrbDir, "libexec"), 0o755))
	script := filepath.Join(mrbDir, "libexec", "mrbSetEnv")
	require.NoError(t, os.WriteFile(script, []byte("MRB_SETENV_RAN=1\nexport MRB_SETENV_RAN\n"), 0o644))

	env := baseEnv()
	env.Set("MRB_DIR", mrbDir)

	tc := ups.New(quietLogger(t))
	out, err := tc.InitBuildEnv(context.Background(), false, env)
	require.NoError(t, err)
	assert.Equal(t, "1", out.Get("MRB_SETENV_RAN"))
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{name: "typical", out: "mrb v6_09_01\n", want: "v6_09_01"},
		{name: "version only", out: "v0_12_03", want: "v0_12_03"},
		{name: "verbose prefix", out: "mrb version: v4_01\n", want: "v4_01"},
		{name: "no version token", out: "something else", want: ""},
		{name: "empty", out: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ups.ParseVersion(tt.out))
		})
	}
}
