package game

import (
	"sort"

	"github.com/cbodonnell/circledodge/pkg/collisions"
	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/cbodonnell/circledodge/pkg/log"
)

// NewCollisionSpace creates a space for the configured screen with enough
// margin to track obstacles while they enter and leave it.
func NewCollisionSpace(cfg *config.Config) *collisions.Space {
	margin := cfg.Obstacles.Width + cfg.CollisionTolerance()
	return collisions.NewSpace(cfg.Screen.Width, cfg.Screen.Height, margin)
}

// checkCollisions counts and removes every obstacle touching the avatar.
func (gm *GameManager) checkCollisions() {
	hits := gm.findCollisions()
	for _, obstacle := range hits {
		if gm.gameState.Phase != types.GamePhasePlaying {
			return
		}
		gm.handleCollision(obstacle)
	}
}

// findCollisions returns the obstacles touching the avatar, oldest first.
func (gm *GameManager) findCollisions() []*types.ObstacleState {
	avatar := gm.gameState.Avatar
	circle := avatar.Circle()
	tolerance := gm.config.CollisionTolerance()

	var hits []*types.ObstacleState
	for _, obj := range gm.gameState.CollisionSpace.Candidates(avatar.Object, collisions.TagObstacle) {
		id, ok := gm.obstacleIDs[obj]
		if !ok {
			continue
		}
		obstacle, ok := gm.gameState.Obstacles[id]
		if !ok {
			continue
		}
		if collisions.CircleIntersectsRect(circle, obstacle.Rect(), tolerance) {
			hits = append(hits, obstacle)
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Elapsed != hits[j].Elapsed {
			return hits[i].Elapsed > hits[j].Elapsed
		}
		return hits[i].ID.String() < hits[j].ID.String()
	})
	return hits
}

// handleCollision removes the obstacle, so a bar is only ever counted once,
// and ends the round at the collision limit.
func (gm *GameManager) handleCollision(obstacle *types.ObstacleState) {
	rect := obstacle.Rect()
	gm.removeObstacle(obstacle, types.RemovalReasonCollided)
	gm.gameState.Collisions++

	log.Debug("Collision %d/%d with obstacle %s", gm.gameState.Collisions, gm.config.Collision.MaxCollisions, obstacle.ID)
	gm.emit(&types.CollisionEvent{
		ObstacleID: obstacle.ID,
		Rect:       rect,
		Collisions: gm.gameState.Collisions,
	})

	if gm.gameState.Collisions >= gm.config.Collision.MaxCollisions {
		gm.gameState.Phase = types.GamePhaseOver
		log.Info("Game over after %d collisions", gm.gameState.Collisions)
		gm.emit(&types.GameOverEvent{Collisions: gm.gameState.Collisions})
	}
}
