package types

import (
	"testing"

	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestAvatarState_Grow(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name  string
		start float64
		want  float64
	}{
		{name: "one step", start: 210, want: 240},
		{name: "reaches cap", start: 360, want: 390},
		{name: "would pass cap", start: 370, want: 390},
		{name: "at cap", start: 390, want: 390},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAvatarState(cfg.Screen, tt.start)
			a.Grow(cfg.Avatar, cfg.Screen.Width)
			assert.Equal(t, tt.want, a.Diameter)
		})
	}
}

func TestAvatarState_Shrink(t *testing.T) {
	cfg := config.Default()
	tests := []struct {
		name  string
		start float64
		want  float64
	}{
		{name: "one step", start: 210, want: 180},
		{name: "lands on threshold", start: 130, want: 100},
		{name: "below threshold snaps up to floor", start: 120, want: 120},
		{name: "from threshold", start: 100, want: 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAvatarState(cfg.Screen, tt.start)
			a.Shrink(cfg.Avatar, cfg.Screen.Width)
			assert.Equal(t, tt.want, a.Diameter)
		})
	}
}

func TestAvatarState_clampedToScreen(t *testing.T) {
	cfg := config.Default()
	cfg.Screen.Width = 320
	a := NewAvatarState(cfg.Screen, 300)
	a.Grow(cfg.Avatar, cfg.Screen.Width)
	assert.Equal(t, 320.0, a.Diameter)
	assert.Equal(t, 160.0, a.Center.X)
	assert.Equal(t, 160.0, a.Radius())
}
