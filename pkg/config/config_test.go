package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 210.0, cfg.Avatar.Diameter)
	assert.Equal(t, 5, cfg.Collision.MaxCollisions)
	assert.Equal(t, 2.0, cfg.Obstacles.SpawnInterval)
	assert.InDelta(t, 147.5, cfg.ObstacleSpeed(), 1e-9)
	assert.InDelta(t, 100/1.4, cfg.CollisionTolerance(), 1e-9)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	data := []byte(`
screen:
  width: 480
obstacles:
  spawnInterval: 1.5
collision:
  maxCollisions: 3
assets:
  background: bg.png
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 480.0, cfg.Screen.Width)
	// unset keys keep their defaults
	assert.Equal(t, 844.0, cfg.Screen.Height)
	assert.Equal(t, 1.5, cfg.Obstacles.SpawnInterval)
	assert.Equal(t, 4.0, cfg.Obstacles.TravelDuration)
	assert.Equal(t, 3, cfg.Collision.MaxCollisions)
	assert.Equal(t, "bg.png", cfg.Assets.Background)
}

func TestLoad_emptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_malformed(t *testing.T) {
	err := Parse([]byte("screen: [1, 2"), Default())
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "zero screen width", mutate: func(c *Config) { c.Screen.Width = 0 }},
		{name: "negative diameter", mutate: func(c *Config) { c.Avatar.Diameter = -1 }},
		{name: "zero grow step", mutate: func(c *Config) { c.Avatar.GrowStep = 0 }},
		{name: "cap below floor", mutate: func(c *Config) { c.Avatar.GrowCap = 50 }},
		{name: "negative rotation", mutate: func(c *Config) { c.Avatar.RotationPeriod = -1 }},
		{name: "zero obstacle height", mutate: func(c *Config) { c.Obstacles.Height = 0 }},
		{name: "zero spawn interval", mutate: func(c *Config) { c.Obstacles.SpawnInterval = 0 }},
		{name: "zero travel duration", mutate: func(c *Config) { c.Obstacles.TravelDuration = 0 }},
		{name: "margin too large", mutate: func(c *Config) { c.Obstacles.VerticalMargin = 500 }},
		{name: "zero max collisions", mutate: func(c *Config) { c.Collision.MaxCollisions = 0 }},
		{name: "zero divisor", mutate: func(c *Config) { c.Collision.ToleranceDivisor = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}
