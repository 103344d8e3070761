// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Simulate SimulateConfig `toml:"simulate"`
}

// SimulateConfig maps playback-related settings. Nil fields are unset and
// fall back to flag defaults.
type SimulateConfig struct {
	Preset      *int  `toml:"preset"`
	BarWidth    *int  `toml:"bar-width"`
	Plain       *bool `toml:"plain"`
	Yes         *bool `toml:"yes"`
	SaveHistory *bool `toml:"save-history"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
