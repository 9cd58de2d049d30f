package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 640.0, cfg.Width)
	assert.Equal(t, 480.0, cfg.Height)
	assert.Equal(t, 30, cfg.TPS)
	assert.Equal(t, 100000.0, cfg.Charge)
	assert.Equal(t, 0.5, cfg.Stiffness)
	assert.Equal(t, 8.0, cfg.VertexRadius)
	assert.False(t, cfg.Serve)
}

func TestFlagsOverrideDefaults(t *testing.T) {
	f := Flags()
	require.NoError(t, f.Parse([]string{"--width=800", "--serve", "--port=9001"}))

	cfg, err := Load(f)
	require.NoError(t, err)

	assert.Equal(t, 800.0, cfg.Width)
	assert.True(t, cfg.Serve)
	assert.Equal(t, 9001, cfg.Port)
	// Untouched settings keep their defaults.
	assert.Equal(t, 480.0, cfg.Height)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("FORCEVIZ_TPS", "60")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.TPS)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := [][]string{
		{"--width=0"},
		{"--tps=-1"},
		{"--stiffness=0"},
		{"--stiffness=1.5"},
		{"--charge=-5"},
		{"--radius=0"},
	}
	for _, args := range cases {
		f := Flags()
		require.NoError(t, f.Parse(args))
		_, err := Load(f)
		assert.Error(t, err, "args %v", args)
	}
}
