package isom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, BrushBadlands, cfg.Brush)
	assert.Equal(t, uint(128), cfg.MapWidth)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(fname, []byte("map_width: 64\nbrush: 1\n"), 0644))

	cfg, err := LoadConfig(fname)
	require.NoError(t, err)

	assert.Equal(t, uint(64), cfg.MapWidth)
	assert.Equal(t, BrushSpace, cfg.Brush)
	// Untouched fields keep their DefaultConfig values.
	assert.Equal(t, uint(128), cfg.MapHeight)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
