package collisions

import (
	"testing"

	"github.com/cbodonnell/circledodge/pkg/kinematic"
	"github.com/stretchr/testify/assert"
)

func TestClosestPoint(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}
	tests := []struct {
		name string
		p    kinematic.Vector
		want kinematic.Vector
	}{
		{name: "inside", p: kinematic.Vector{X: 15, Y: 15}, want: kinematic.Vector{X: 15, Y: 15}},
		{name: "left", p: kinematic.Vector{X: 0, Y: 15}, want: kinematic.Vector{X: 10, Y: 15}},
		{name: "above right", p: kinematic.Vector{X: 50, Y: 0}, want: kinematic.Vector{X: 30, Y: 10}},
		{name: "below", p: kinematic.Vector{X: 20, Y: 40}, want: kinematic.Vector{X: 20, Y: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClosestPoint(r, tt.p))
		})
	}
}

func TestCircleIntersectsRect(t *testing.T) {
	c := Circle{Center: kinematic.Vector{X: 0, Y: 0}, Radius: 10}
	tests := []struct {
		name      string
		r         Rect
		tolerance float64
		want      bool
	}{
		{name: "center inside", r: Rect{X: -5, Y: -5, W: 10, H: 10}, want: true},
		{name: "edge overlap", r: Rect{X: 5, Y: -1, W: 10, H: 2}, want: true},
		{name: "exactly touching is not a hit", r: Rect{X: 10, Y: -1, W: 10, H: 2}, want: false},
		{name: "far away", r: Rect{X: 100, Y: 100, W: 10, H: 10}, want: false},
		{name: "corner outside radius", r: Rect{X: 8, Y: 8, W: 10, H: 10}, want: false},
		{name: "corner inside radius", r: Rect{X: 7, Y: 7, W: 10, H: 10}, want: true},
		{name: "within tolerance", r: Rect{X: 15, Y: -1, W: 10, H: 2}, tolerance: 6, want: true},
		{name: "outside tolerance", r: Rect{X: 17, Y: -1, W: 10, H: 2}, tolerance: 6, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CircleIntersectsRect(c, tt.r, tt.tolerance))
		})
	}
}

func TestCircle_Bounds(t *testing.T) {
	c := Circle{Center: kinematic.Vector{X: 100, Y: 200}, Radius: 10}
	assert.Equal(t, Rect{X: 85, Y: 185, W: 30, H: 30}, c.Bounds(5))
}
