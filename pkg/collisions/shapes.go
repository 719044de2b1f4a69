package collisions

import (
	"math"

	"github.com/cbodonnell/circledodge/pkg/kinematic"
)

// Rect is an axis-aligned rectangle described by its top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Circle is described by its center and radius.
type Circle struct {
	Center kinematic.Vector `json:"center"`
	Radius float64          `json:"radius"`
}

// Bounds returns the square enclosing the circle grown by padding on every side.
func (c Circle) Bounds(padding float64) Rect {
	extent := c.Radius + padding
	return Rect{
		X: c.Center.X - extent,
		Y: c.Center.Y - extent,
		W: 2 * extent,
		H: 2 * extent,
	}
}

// ClosestPoint returns the point of r nearest to p.
func ClosestPoint(r Rect, p kinematic.Vector) kinematic.Vector {
	return kinematic.Vector{
		X: math.Max(r.MinX(), math.Min(p.X, r.MaxX())),
		Y: math.Max(r.MinY(), math.Min(p.Y, r.MaxY())),
	}
}

// Distance returns the distance between the circle center and r.
// It is zero when the center lies inside r.
func Distance(c Circle, r Rect) float64 {
	return c.Center.Sub(ClosestPoint(r, c.Center)).Length()
}

// CircleIntersectsRect reports whether the circle, grown by tolerance,
// strictly overlaps r.
func CircleIntersectsRect(c Circle, r Rect, tolerance float64) bool {
	return Distance(c, r) < c.Radius+tolerance
}
