package messages

import (
	"encoding/json"

	"github.com/cbodonnell/circledodge/pkg/collisions"
	"github.com/cbodonnell/circledodge/pkg/kinematic"
)

const (
	// MessageBufferSize represents the maximum size of a decompressed message
	MessageBufferSize = 64 * 1024
)

// MessageType is the name of a game event, or one of the feed control types.
type MessageType string

const (
	MessageTypeServerHello    MessageType = "hello"
	MessageTypeServerSnapshot MessageType = "snapshot"
)

// Message represents a generic message for serialization/deserialization
type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp int64           `json:"timestamp"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// ServerHello is the first message on a feed connection.
type ServerHello struct {
	Version string `json:"version"`
}

// GameSnapshot is the read-only view of the game exposed outside the game loop.
type GameSnapshot struct {
	Timestamp     int64              `json:"timestamp"`
	Elapsed       float64            `json:"elapsed"`
	Phase         string             `json:"phase"`
	Collisions    int                `json:"collisions"`
	MaxCollisions int                `json:"maxCollisions"`
	SpawnTimer    float64            `json:"spawnTimer"`
	Avatar        AvatarSnapshot     `json:"avatar"`
	Obstacles     []ObstacleSnapshot `json:"obstacles"`
}

type AvatarSnapshot struct {
	Center   kinematic.Vector `json:"center"`
	Diameter float64          `json:"diameter"`
}

type ObstacleSnapshot struct {
	ID      string          `json:"id"`
	Rect    collisions.Rect `json:"rect"`
	Elapsed float64         `json:"elapsed"`
}
