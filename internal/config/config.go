package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// ScratchDir is the root for staging workspaces. Empty means the
	// platform temp directory.
	ScratchDir string `toml:"scratch_dir"`

	// MaxParallel caps concurrent extractions when inspecting several
	// packages at once.
	MaxParallel int `toml:"max_parallel"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

func Default() *Config {
	return &Config{
		MaxParallel: 4,
		LogLevel:    "warn",
	}
}

// Load reads ~/.appmeta/config.toml over the defaults. A missing file
// is not an error; a malformed one is.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}

	return loadFrom(filepath.Join(home, ".appmeta", "config.toml"))
}

func loadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
