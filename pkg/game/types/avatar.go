package types

import (
	"math"

	"github.com/cbodonnell/circledodge/pkg/collisions"
	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/cbodonnell/circledodge/pkg/kinematic"
	"github.com/solarlune/resolv"
)

// AvatarState is the circle the player keeps away from the obstacles.
// It is always centered on the screen.
type AvatarState struct {
	Center   kinematic.Vector `json:"center"`
	Diameter float64          `json:"diameter"`
	Object   *resolv.Object   `json:"-"`
}

func NewAvatarState(screen config.ScreenConfig, diameter float64) *AvatarState {
	a := &AvatarState{
		Center: kinematic.Vector{
			X: screen.Width / 2,
			Y: screen.Height / 2,
		},
	}
	a.setDiameter(diameter, screen.Width)
	return a
}

func (a *AvatarState) Radius() float64 {
	return a.Diameter / 2
}

func (a *AvatarState) Circle() collisions.Circle {
	return collisions.Circle{
		Center: a.Center,
		Radius: a.Radius(),
	}
}

// Grow enlarges the avatar by one step, snapping to the grow cap once the cap
// is reached.
func (a *AvatarState) Grow(cfg config.AvatarConfig, screenWidth float64) {
	diameter := a.Diameter + cfg.GrowStep
	if diameter >= cfg.GrowCap {
		diameter = cfg.GrowCap
	}
	a.setDiameter(diameter, screenWidth)
}

// Shrink reduces the avatar by one step. Going below the shrink threshold
// snaps to the shrink floor, which sits above the threshold.
func (a *AvatarState) Shrink(cfg config.AvatarConfig, screenWidth float64) {
	diameter := a.Diameter - cfg.ShrinkStep
	if diameter < cfg.ShrinkThreshold {
		diameter = cfg.ShrinkFloor
	}
	a.setDiameter(diameter, screenWidth)
}

// setDiameter clamps the diameter to the screen width.
func (a *AvatarState) setDiameter(diameter float64, screenWidth float64) {
	a.Diameter = math.Min(diameter, screenWidth)
}

// Copy returns a copy of the avatar state with an empty object reference
func (a *AvatarState) Copy() *AvatarState {
	return &AvatarState{
		Center:   a.Center,
		Diameter: a.Diameter,
	}
}
