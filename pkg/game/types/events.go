package types

import (
	"github.com/cbodonnell/circledodge/pkg/collisions"
	"github.com/google/uuid"
)

type EventType uint8

const (
	EventTypeObstacleSpawned EventType = iota + 1
	EventTypeObstacleRemoved
	EventTypeCollision
	EventTypeGameOver
	EventTypeGameReset
	EventTypeAvatarResized
)

func (t EventType) String() string {
	switch t {
	case EventTypeObstacleSpawned:
		return "obstacle_spawned"
	case EventTypeObstacleRemoved:
		return "obstacle_removed"
	case EventTypeCollision:
		return "collision"
	case EventTypeGameOver:
		return "game_over"
	case EventTypeGameReset:
		return "game_reset"
	case EventTypeAvatarResized:
		return "avatar_resized"
	}
	return "unknown"
}

// Event is emitted by the game loop for the presentation layer.
type Event interface {
	Type() EventType
}

type RemovalReason string

const (
	RemovalReasonExited   RemovalReason = "exited"
	RemovalReasonCollided RemovalReason = "collided"
	RemovalReasonReset    RemovalReason = "reset"
)

type ObstacleSpawnedEvent struct {
	ObstacleID uuid.UUID       `json:"obstacleID"`
	Rect       collisions.Rect `json:"rect"`
}

func (e *ObstacleSpawnedEvent) Type() EventType { return EventTypeObstacleSpawned }

type ObstacleRemovedEvent struct {
	ObstacleID uuid.UUID     `json:"obstacleID"`
	Reason     RemovalReason `json:"reason"`
}

func (e *ObstacleRemovedEvent) Type() EventType { return EventTypeObstacleRemoved }

type CollisionEvent struct {
	ObstacleID uuid.UUID       `json:"obstacleID"`
	Rect       collisions.Rect `json:"rect"`
	// Collisions is the collision count including this one
	Collisions int `json:"collisions"`
}

func (e *CollisionEvent) Type() EventType { return EventTypeCollision }

type GameOverEvent struct {
	Collisions int `json:"collisions"`
}

func (e *GameOverEvent) Type() EventType { return EventTypeGameOver }

type GameResetEvent struct{}

func (e *GameResetEvent) Type() EventType { return EventTypeGameReset }

type AvatarResizedEvent struct {
	Diameter float64 `json:"diameter"`
}

func (e *AvatarResizedEvent) Type() EventType { return EventTypeAvatarResized }
