package game

import (
	"math/rand"
	"testing"

	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawner_Update(t *testing.T) {
	tests := []struct {
		name          string
		steps         []float64
		wantSpawns    int
		wantOvershoot []float64
		wantTimer     float64
	}{
		{name: "below interval", steps: []float64{0.5, 1.0}, wantSpawns: 0, wantTimer: 1.5},
		{name: "exactly one interval", steps: []float64{1.0, 1.0}, wantSpawns: 1, wantOvershoot: []float64{0}, wantTimer: 0},
		{name: "carries remainder", steps: []float64{1.5, 1.0}, wantSpawns: 1, wantOvershoot: []float64{0.5}, wantTimer: 0.5},
		{name: "long step", steps: []float64{4.5}, wantSpawns: 2, wantOvershoot: []float64{2.5, 0.5}, wantTimer: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpawner(config.Default(), rand.New(rand.NewSource(7)))

			var overshoots []float64
			spawns := 0
			for _, step := range tt.steps {
				got, err := s.Update(step)
				require.NoError(t, err)
				spawns += len(got)
				for _, spawn := range got {
					overshoots = append(overshoots, spawn.Overshoot)
				}
			}

			assert.Equal(t, tt.wantSpawns, spawns)
			require.Len(t, overshoots, len(tt.wantOvershoot))
			for i := range overshoots {
				assert.InDelta(t, tt.wantOvershoot[i], overshoots[i], 1e-9)
			}
			assert.InDelta(t, tt.wantTimer, s.Timer(), 1e-9)
		})
	}
}

func TestSpawner_placement(t *testing.T) {
	cfg := config.Default()
	s := NewSpawner(cfg, rand.New(rand.NewSource(3)))

	spawns, err := s.Update(200)
	require.NoError(t, err)
	require.Len(t, spawns, 100)

	ids := make(map[string]struct{})
	for _, spawn := range spawns {
		o := spawn.Obstacle
		assert.Equal(t, cfg.Screen.Width, o.Origin.X)
		assert.GreaterOrEqual(t, o.Origin.Y, cfg.Obstacles.VerticalMargin)
		assert.LessOrEqual(t, o.Origin.Y, cfg.Screen.Height-cfg.Obstacles.VerticalMargin)
		assert.InDelta(t, -147.5, o.Velocity.X, 1e-9)
		ids[o.ID.String()] = struct{}{}
	}
	assert.Len(t, ids, 100)
}

func TestSpawner_Reset(t *testing.T) {
	s := NewSpawner(config.Default(), rand.New(rand.NewSource(1)))
	_, err := s.Update(1.9)
	require.NoError(t, err)

	s.Reset()
	spawns, err := s.Update(1.9)
	require.NoError(t, err)
	assert.Empty(t, spawns)
}
