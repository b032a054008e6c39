package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.larenv.dev/larenv/internal/adapters/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	exp, ok := cfg.Lookup("uboone")
	require.True(t, ok)
	assert.Contains(t, exp.Bootstrap, "uboone")
	assert.Equal(t, []string{"uboonecode"}, exp.Codenames)

	_, ok = cfg.Lookup("nosuch")
	assert.False(t, ok)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	_, ok := cfg.Lookup("dune")
	assert.True(t, ok)
}

func TestLoad_OverrideMergesOverDefaults(t *testing.T) {
	content := `
experiments:
  uboone:
    bootstrap: /opt/uboone/setup.sh
    codenames: [uboonecode, ubutil]
  myexp:
    bootstrap: /opt/myexp/setup.sh
localOverrides:
  - /home/me/products
`
	path := filepath.Join(t.TempDir(), "experiments.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	uboone, ok := cfg.Lookup("uboone")
	require.True(t, ok)
	assert.Equal(t, "/opt/uboone/setup.sh", uboone.Bootstrap)
	assert.Equal(t, []string{"uboonecode", "ubutil"}, uboone.Codenames)

	_, ok = cfg.Lookup("myexp")
	assert.True(t, ok)

	// Untouched defaults survive the merge.
	_, ok = cfg.Lookup("icarus")
	assert.True(t, ok)

	assert.Equal(t, []string{"/home/me/products"}, cfg.LocalOverrides)
	assert.NotEmpty(t, cfg.LocalRepos)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiments.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml"), 0o600))

	_, err := config.Load(path)
	assert.Error(t, err)
}
