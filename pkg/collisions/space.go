package collisions

import (
	"math"

	"github.com/solarlune/resolv"
)

const (
	// CellSize is the width and height of a broad-phase cell.
	CellSize = 16

	TagAvatar   string = "avatar"
	TagObstacle string = "obstacle"
)

// Space is the broad-phase collision space of the play field.
//
// resolv cells only exist at non-negative coordinates, so the space is
// padded by margin on every side and screen coordinates are shifted into it.
// Objects leaving the padded area are still tracked but stop registering in
// cells.
type Space struct {
	space  *resolv.Space
	margin float64
}

// NewSpace creates a space covering a width x height screen plus margin.
func NewSpace(width, height, margin float64) *Space {
	if margin < 0 {
		margin = 0
	}
	w := int(math.Ceil(width + 2*margin))
	h := int(math.Ceil(height + 2*margin))
	return &Space{
		space:  resolv.NewSpace(w, h, CellSize, CellSize),
		margin: margin,
	}
}

// NewObject creates an object for r and registers it in the space.
func (s *Space) NewObject(r Rect, tags ...string) *resolv.Object {
	obj := resolv.NewObject(r.X+s.margin, r.Y+s.margin, r.W, r.H, tags...)
	s.space.Add(obj)
	return obj
}

// Move repositions and resizes obj to r.
func (s *Space) Move(obj *resolv.Object, r Rect) {
	obj.Position.X = r.X + s.margin
	obj.Position.Y = r.Y + s.margin
	obj.Size.X = r.W
	obj.Size.Y = r.H
	obj.Update()
}

// Remove unregisters objects from the space.
func (s *Space) Remove(objects ...*resolv.Object) {
	s.space.Remove(objects...)
}

// Candidates returns the objects with any of the tags sharing a cell with obj.
func (s *Space) Candidates(obj *resolv.Object, tags ...string) []*resolv.Object {
	collision := obj.Check(0, 0, tags...)
	if collision == nil {
		return nil
	}
	return collision.Objects
}

// Rect returns the screen rectangle of obj.
func (s *Space) Rect(obj *resolv.Object) Rect {
	return Rect{
		X: obj.Position.X - s.margin,
		Y: obj.Position.Y - s.margin,
		W: obj.Size.X,
		H: obj.Size.Y,
	}
}
