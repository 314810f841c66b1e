// Package config loads the YAML configuration that wires the conversion
// facade's on-disk artifacts and calibration constants, mirroring the
// original implementation's serde_yaml-backed config.rs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"akazakana/resolve"
)

// Config is the on-disk shape of a facade's configuration file.
type Config struct {
	UnigramPath string   `yaml:"unigram_path"`
	BigramPath  string   `yaml:"bigram_path"`
	DictPaths   []string `yaml:"dict_paths"`
	UserDataDir string   `yaml:"user_data_dir"`

	Alpha float32 `yaml:"alpha"`
	Beta  float32 `yaml:"beta"`
}

// Load reads and parses the YAML file at path. A missing or malformed
// file is an InitialisationFailure per spec.md §7. Zero-valued mixing
// weights are filled in with the documented defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.Alpha == 0 {
		cfg.Alpha = resolve.DefaultAlpha
	}
	if cfg.Beta == 0 {
		cfg.Beta = resolve.DefaultBeta
	}
	return &cfg, nil
}
