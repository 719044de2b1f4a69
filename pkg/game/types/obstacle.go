package types

import (
	"github.com/cbodonnell/circledodge/pkg/collisions"
	"github.com/cbodonnell/circledodge/pkg/kinematic"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
)

// ObstacleState is a bar moving across the screen at a constant velocity.
type ObstacleState struct {
	ID       uuid.UUID        `json:"id"`
	Origin   kinematic.Vector `json:"origin"`
	Position kinematic.Vector `json:"position"`
	Velocity kinematic.Vector `json:"velocity"`
	Size     kinematic.Vector `json:"size"`
	// Elapsed is the time in seconds since the obstacle spawned
	Elapsed float64        `json:"elapsed"`
	Object  *resolv.Object `json:"-"`
}

func NewObstacleState(id uuid.UUID, origin kinematic.Vector, size kinematic.Vector, velocity kinematic.Vector) *ObstacleState {
	return &ObstacleState{
		ID:       id,
		Origin:   origin,
		Position: origin,
		Velocity: velocity,
		Size:     size,
	}
}

func (o *ObstacleState) Rect() collisions.Rect {
	return collisions.Rect{
		X: o.Position.X,
		Y: o.Position.Y,
		W: o.Size.X,
		H: o.Size.Y,
	}
}

// Update advances the obstacle along its path.
func (o *ObstacleState) Update(deltaTime float64) {
	o.Elapsed += deltaTime
	o.Position = kinematic.PositionAt(o.Origin, o.Velocity, o.Elapsed)
}

// Exited reports whether the obstacle has finished its travel.
func (o *ObstacleState) Exited(travelDuration float64) bool {
	return o.Elapsed >= travelDuration
}

// Copy returns a copy of the obstacle state with an empty object reference
func (o *ObstacleState) Copy() *ObstacleState {
	return &ObstacleState{
		ID:       o.ID,
		Origin:   o.Origin,
		Position: o.Position,
		Velocity: o.Velocity,
		Size:     o.Size,
		Elapsed:  o.Elapsed,
	}
}
