package messages

import (
	"encoding/json"
	"testing"

	"github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeMessage_event(t *testing.T) {
	id := uuid.New()
	msg, err := MessageFromEvent(&types.CollisionEvent{ObstacleID: id, Collisions: 4})
	require.NoError(t, err)
	assert.Equal(t, MessageType("collision"), msg.Type)

	b, err := SerializeMessage(msg)
	require.NoError(t, err)

	got, err := DeserializeMessage(b)
	require.NoError(t, err)
	assert.Equal(t, msg.Type, got.Type)
	assert.Equal(t, msg.Timestamp, got.Timestamp)

	event := &types.CollisionEvent{}
	require.NoError(t, json.Unmarshal(got.Payload, event))
	assert.Equal(t, id, event.ObstacleID)
	assert.Equal(t, 4, event.Collisions)
}

func TestDeserializeMessage_garbage(t *testing.T) {
	_, err := DeserializeMessage([]byte("not zstd"))
	assert.Error(t, err)
}
