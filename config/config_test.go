package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.SyncWithDisplay())
}

func TestFixedTPS(t *testing.T) {
	t.Setenv("CUBES_TPS", "30")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TPS)
	assert.False(t, cfg.SyncWithDisplay())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CUBES_WINDOW_WIDTH", "800")
	t.Setenv("CUBES_SEED", "7")
	t.Setenv("CUBES_ROTATION_SPEED", "0.25")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.WindowWidth)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, float32(0.25), cfg.RotationSpeed)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"not a number", "CUBES_TPS", "fast"},
		{"negative tps", "CUBES_TPS", "-1"},
		{"speed too high", "CUBES_ROTATION_SPEED", "0.6"},
		{"negative speed", "CUBES_ROTATION_SPEED", "-0.1"},
		{"zero width", "CUBES_WINDOW_WIDTH", "0"},
		{"flat plane", "CUBES_PLANE_HEIGHT", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
