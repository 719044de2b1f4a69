package types

import (
	"github.com/cbodonnell/circledodge/pkg/collisions"
	"github.com/google/uuid"
)

type GamePhase uint8

const (
	GamePhasePlaying GamePhase = iota
	GamePhaseOver
)

func (p GamePhase) String() string {
	switch p {
	case GamePhasePlaying:
		return "playing"
	case GamePhaseOver:
		return "over"
	}
	return "unknown"
}

func (p GamePhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type GameState struct {
	// Timestamp is the wall clock time in milliseconds of the last tick
	Timestamp int64 `json:"timestamp"`
	// Elapsed is the simulated time in seconds since the round started
	Elapsed float64 `json:"elapsed"`
	// Phase is the current round phase
	Phase GamePhase `json:"phase"`
	// Collisions is the number of collisions in the current round
	Collisions int `json:"collisions"`
	// SpawnTimer is the time in seconds accumulated towards the next spawn
	SpawnTimer float64 `json:"spawnTimer"`
	// Avatar is the player's circle
	Avatar *AvatarState `json:"avatar"`
	// Obstacles maps obstacle IDs to the obstacles currently in play
	Obstacles map[uuid.UUID]*ObstacleState `json:"obstacles"`
	// CollisionSpace is the broad-phase space for the avatar and obstacles
	CollisionSpace *collisions.Space `json:"-"`
}

func NewGameState(collisionSpace *collisions.Space, avatar *AvatarState) *GameState {
	return &GameState{
		Phase:          GamePhasePlaying,
		Avatar:         avatar,
		Obstacles:      make(map[uuid.UUID]*ObstacleState),
		CollisionSpace: collisionSpace,
	}
}

// Copy returns a deep copy of the game state without collision objects.
func (g *GameState) Copy() *GameState {
	newGameState := &GameState{
		Timestamp:  g.Timestamp,
		Elapsed:    g.Elapsed,
		Phase:      g.Phase,
		Collisions: g.Collisions,
		SpawnTimer: g.SpawnTimer,
		Obstacles:  make(map[uuid.UUID]*ObstacleState, len(g.Obstacles)),
	}
	if g.Avatar != nil {
		newGameState.Avatar = g.Avatar.Copy()
	}
	for id, obstacle := range g.Obstacles {
		newGameState.Obstacles[id] = obstacle.Copy()
	}
	return newGameState
}

func (g *GameState) AddObstacle(state *ObstacleState) {
	g.Obstacles[state.ID] = state
}

func (g *GameState) RemoveObstacle(id uuid.UUID) {
	delete(g.Obstacles, id)
}
