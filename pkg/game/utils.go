package game

import (
	"sort"

	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/cbodonnell/circledodge/pkg/messages"
)

// SnapshotFromState builds the read-only view of a game state.
// Obstacles are ordered oldest first.
func SnapshotFromState(cfg *config.Config, gameState *types.GameState) *messages.GameSnapshot {
	snapshot := &messages.GameSnapshot{
		Timestamp:     gameState.Timestamp,
		Elapsed:       gameState.Elapsed,
		Phase:         gameState.Phase.String(),
		Collisions:    gameState.Collisions,
		MaxCollisions: cfg.Collision.MaxCollisions,
		SpawnTimer:    gameState.SpawnTimer,
		Obstacles:     make([]messages.ObstacleSnapshot, 0, len(gameState.Obstacles)),
	}
	if gameState.Avatar != nil {
		snapshot.Avatar = messages.AvatarSnapshot{
			Center:   gameState.Avatar.Center,
			Diameter: gameState.Avatar.Diameter,
		}
	}

	for _, obstacle := range gameState.Obstacles {
		snapshot.Obstacles = append(snapshot.Obstacles, messages.ObstacleSnapshot{
			ID:      obstacle.ID.String(),
			Rect:    obstacle.Rect(),
			Elapsed: obstacle.Elapsed,
		})
	}
	sort.Slice(snapshot.Obstacles, func(i, j int) bool {
		a, b := snapshot.Obstacles[i], snapshot.Obstacles[j]
		if a.Elapsed != b.Elapsed {
			return a.Elapsed > b.Elapsed
		}
		return a.ID < b.ID
	})

	return snapshot
}
