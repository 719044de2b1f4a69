package game

import (
	"fmt"
	"math/rand"

	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/cbodonnell/circledodge/pkg/kinematic"
	"github.com/google/uuid"
)

// Spawner produces a new obstacle at the right edge of the screen every
// spawn interval.
type Spawner struct {
	interval float64
	screen   config.ScreenConfig
	margin   float64
	size     kinematic.Vector
	velocity kinematic.Vector
	rng      *rand.Rand
	// timer is the time accumulated towards the next spawn
	timer float64
}

func NewSpawner(cfg *config.Config, rng *rand.Rand) *Spawner {
	return &Spawner{
		interval: cfg.Obstacles.SpawnInterval,
		screen:   cfg.Screen,
		margin:   cfg.Obstacles.VerticalMargin,
		size: kinematic.Vector{
			X: cfg.Obstacles.Width,
			Y: cfg.Obstacles.Height,
		},
		velocity: kinematic.Vector{
			X: -cfg.ObstacleSpeed(),
			Y: 0,
		},
		rng: rng,
	}
}

// Spawn is an obstacle produced during an update together with the time
// that passed between its spawn and the end of the update.
type Spawn struct {
	Obstacle  *types.ObstacleState
	Overshoot float64
}

// Update advances the timer and returns the obstacles due in this step.
// A step longer than the interval produces several obstacles.
func (s *Spawner) Update(deltaTime float64) ([]Spawn, error) {
	s.timer += deltaTime

	var spawns []Spawn
	for s.timer >= s.interval {
		s.timer -= s.interval
		obstacle, err := s.newObstacle()
		if err != nil {
			return spawns, err
		}
		spawns = append(spawns, Spawn{
			Obstacle:  obstacle,
			Overshoot: s.timer,
		})
	}

	return spawns, nil
}

// Reset restarts the timer so the next obstacle is a full interval away.
func (s *Spawner) Reset() {
	s.timer = 0
}

// Timer returns the time accumulated towards the next spawn.
func (s *Spawner) Timer() float64 {
	return s.timer
}

func (s *Spawner) newObstacle() (*types.ObstacleState, error) {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to generate obstacle id: %v", err)
	}

	origin := kinematic.Vector{
		X: s.screen.Width,
		Y: s.margin + s.rng.Float64()*(s.screen.Height-2*s.margin),
	}

	return types.NewObstacleState(id, origin, s.size, s.velocity), nil
}
