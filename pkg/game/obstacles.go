package game

import (
	"github.com/cbodonnell/circledodge/pkg/collisions"
	"github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/cbodonnell/circledodge/pkg/log"
)

// updateObstacles moves every obstacle and drops the ones that left the screen.
func (gm *GameManager) updateObstacles(deltaTime float64) {
	for _, obstacle := range gm.gameState.Obstacles {
		gm.advanceObstacle(obstacle, deltaTime)
	}
}

// spawnObstacles runs the spawner and adds the obstacles it produces.
func (gm *GameManager) spawnObstacles(deltaTime float64) {
	spawns, err := gm.spawner.Update(deltaTime)
	if err != nil {
		log.Error("Failed to spawn obstacle: %v", err)
	}
	gm.gameState.SpawnTimer = gm.spawner.Timer()

	for _, spawn := range spawns {
		gm.addObstacle(spawn.Obstacle)
		if spawn.Overshoot > 0 {
			gm.advanceObstacle(spawn.Obstacle, spawn.Overshoot)
		}
	}
}

func (gm *GameManager) advanceObstacle(obstacle *types.ObstacleState, deltaTime float64) {
	obstacle.Update(deltaTime)
	if obstacle.Exited(gm.config.Obstacles.TravelDuration) {
		gm.removeObstacle(obstacle, types.RemovalReasonExited)
		return
	}
	gm.gameState.CollisionSpace.Move(obstacle.Object, obstacle.Rect())
}

func (gm *GameManager) addObstacle(obstacle *types.ObstacleState) {
	obstacle.Object = gm.gameState.CollisionSpace.NewObject(obstacle.Rect(), collisions.TagObstacle)
	gm.obstacleIDs[obstacle.Object] = obstacle.ID
	gm.gameState.AddObstacle(obstacle)

	log.Trace("Obstacle %s spawned at y=%.1f", obstacle.ID, obstacle.Origin.Y)
	gm.emit(&types.ObstacleSpawnedEvent{
		ObstacleID: obstacle.ID,
		Rect:       obstacle.Rect(),
	})
}

func (gm *GameManager) removeObstacle(obstacle *types.ObstacleState, reason types.RemovalReason) {
	if obstacle.Object != nil {
		gm.gameState.CollisionSpace.Remove(obstacle.Object)
		delete(gm.obstacleIDs, obstacle.Object)
	}
	gm.gameState.RemoveObstacle(obstacle.ID)

	log.Trace("Obstacle %s removed: %s", obstacle.ID, reason)
	gm.emit(&types.ObstacleRemovedEvent{
		ObstacleID: obstacle.ID,
		Reason:     reason,
	})
}
