package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 4, cfg.MaxParallel)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte("scratch_dir = \"/var/scratch\"\nmax_parallel = 8\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := loadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/scratch", cfg.ScratchDir)
	assert.Equal(t, 8, cfg.MaxParallel)
	assert.Equal(t, "warn", cfg.LogLevel, "unset keys keep their defaults")
}

func TestLoadFromMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_parallel = [nope"), 0644))

	_, err := loadFrom(path)
	assert.Error(t, err)
}
