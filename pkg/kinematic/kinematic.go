package kinematic

// This package includes the motion helpers used to move objects across the
// play field.

import (
	"math"
)

// Vector is a 2D vector in screen space (y grows downwards).
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Length returns the euclidean length of the vector.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Displacement returns the displacement of an object given its initial velocity, time, and acceleration.
func Displacement(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity*time + 0.5*acceleration*math.Pow(time, 2)
}

// PositionAt returns where an object starting at origin with a constant
// velocity is after the given time.
func PositionAt(origin Vector, velocity Vector, time float64) Vector {
	return Vector{
		X: origin.X + Displacement(velocity.X, time, 0),
		Y: origin.Y + Displacement(velocity.Y, time, 0),
	}
}
