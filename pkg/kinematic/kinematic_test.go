package kinematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplacement(t *testing.T) {
	assert.InDelta(t, 20.0, Displacement(10, 2, 0), 1e-9)
	assert.InDelta(t, 40.0, Displacement(10, 2, 10), 1e-9)
}

func TestPositionAt(t *testing.T) {
	origin := Vector{X: 390, Y: 100}
	velocity := Vector{X: -147.5, Y: 0}

	assert.Equal(t, origin, PositionAt(origin, velocity, 0))
	got := PositionAt(origin, velocity, 4)
	assert.InDelta(t, -200.0, got.X, 1e-9)
	assert.InDelta(t, 100.0, got.Y, 1e-9)
}

func TestVector(t *testing.T) {
	a := Vector{X: 3, Y: 4}
	assert.Equal(t, 5.0, a.Length())
	assert.Equal(t, Vector{X: 4, Y: 6}, a.Add(Vector{X: 1, Y: 2}))
	assert.Equal(t, Vector{X: 2, Y: 2}, a.Sub(Vector{X: 1, Y: 2}))
	assert.Equal(t, Vector{X: 6, Y: 8}, a.Scale(2))
}
