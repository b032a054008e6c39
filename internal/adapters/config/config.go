// Package config provides the experiment configuration loader.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.larenv.dev/larenv/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// configFile represents the structure of an experiments.yaml file.
type configFile struct {
	Experiments    map[string]experimentDTO `yaml:"experiments"`
	LocalRepos     []string                 `yaml:"localRepos"`
	LocalOverrides []string                 `yaml:"localOverrides"`
	UPSSetup       string                   `yaml:"upsSetup"`
}

type experimentDTO struct {
	Bootstrap string   `yaml:"bootstrap"`
	Codenames []string `yaml:"codenames"`
}

// Default returns the compiled-in configuration covering the standard
// experiments.
func Default() *domain.ExperimentConfig {
	return &domain.ExperimentConfig{
		Experiments: map[string]domain.Experiment{
			"uboone": {
				Bootstrap: "/cvmfs/uboone.opensciencegrid.org/products/setup_uboone.sh",
				Codenames: []string{"uboonecode"},
			},
			"dune": {
				Bootstrap: "/cvmfs/dune.opensciencegrid.org/products/dune/setup_dune.sh",
				Codenames: []string{"dunetpc"},
			},
			"sbnd": {
				Bootstrap: "/cvmfs/sbnd.opensciencegrid.org/products/sbnd/setup_sbnd.sh",
				Codenames: []string{"sbndcode"},
			},
			"icarus": {
				Bootstrap: "/cvmfs/icarus.opensciencegrid.org/products/icarus/setup_icarus.sh",
				Codenames: []string{"icaruscode"},
			},
			"lariat": {
				Bootstrap: "/cvmfs/lariat.opensciencegrid.org/products/setup_lariat.sh",
				Codenames: []string{"lariatsoft"},
			},
		},
		LocalRepos: []string{
			"/cvmfs/larsoft.opensciencegrid.org/products",
			"/cvmfs/fermilab.opensciencegrid.org/products/common/db",
		},
		UPSSetup: "/cvmfs/larsoft.opensciencegrid.org/products/setup",
	}
}

// Load reads an experiments.yaml file and merges it over the compiled-in
// defaults. A missing file (or empty path) yields the defaults unchanged.
func Load(path string) (*domain.ExperimentConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read experiments config"), "path", path)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse experiments config"), "path", path)
	}

	for name, dto := range file.Experiments {
		cfg.Experiments[name] = domain.Experiment{
			Bootstrap: dto.Bootstrap,
			Codenames: dto.Codenames,
		}
	}
	if len(file.LocalRepos) > 0 {
		cfg.LocalRepos = file.LocalRepos
	}
	if len(file.LocalOverrides) > 0 {
		cfg.LocalOverrides = file.LocalOverrides
	}
	if file.UPSSetup != "" {
		cfg.UPSSetup = file.UPSSetup
	}
	return cfg, nil
}
