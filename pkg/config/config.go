// Package config loads the optional gridpull configuration file.
//
// The file is TOML at ~/.config/gridpull/config.toml. Every field is
// optional; a missing file means "all defaults". Paths in the file may
// start with "~/" which expands to the user's home directory.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gridpull/gridpull/pkg/errors"
)

// fileName is the config file name under the data directory.
const fileName = "config.toml"

// Config holds user overrides for the default paths.
type Config struct {
	// DataDir replaces the default data directory for all persisted state.
	DataDir string `toml:"data_dir"`

	// PackPath replaces the saved level pack path. Takes precedence over
	// DataDir for the pack file.
	PackPath string `toml:"pack_path"`
}

// DefaultPath returns the config file location, ~/.config/gridpull/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "get home dir")
	}
	return filepath.Join(home, ".config", "gridpull", fileName), nil
}

// Load reads the config file at path. A missing file is not an error and
// yields the zero config; a malformed file is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.PackPath = expandHome(cfg.PackPath)
	return &cfg, nil
}

// PackPathOr resolves the saved pack path: the explicit PackPath if set,
// else SavedLevels.yaml under DataDir if set, else fallback.
func (c *Config) PackPathOr(fallback string) string {
	if c.PackPath != "" {
		return c.PackPath
	}
	if c.DataDir != "" {
		return filepath.Join(c.DataDir, "SavedLevels.yaml")
	}
	return fallback
}

// ProgressDirOr resolves the progress directory: under DataDir if set,
// else fallback.
func (c *Config) ProgressDirOr(fallback string) string {
	if c.DataDir != "" {
		return filepath.Join(c.DataDir, "progress")
	}
	return fallback
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
