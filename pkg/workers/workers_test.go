package workers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

		"github.com/cbodonnell/circledodge/pkg/config"
	gametypes "github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/cbodonnell/circledodge/pkg/kinematic"
	"github.com/cbodonnell/circledodge/pkg/messages"
	"github.com/cbodonnell/circledodge/pkg/network"
	"github.com/cbodonnell/circledodge/pkg/state"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, client *network.Client) *messages.Message {
	t.Helper()
	select {
	case msg := <-client.Messages():
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
	return nil
}

func TestBroadcastEventWorker(t *testing.T) {
	cm := network.NewClientManager()
	client, err := cm.AddClient("test", network.ClientFormatBinary)
	require.NoError(t, err)

	broadcastChan := make(chan gametypes.Event, 1)
	worker := NewBroadcastEventWorker(NewBroadcastEventWorkerOptions{
		ClientManager: cm,
		BroadcastChan: broadcastChan,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Start(ctx)

	id := uuid.New()
	broadcastChan <- &gametypes.CollisionEvent{ObstacleID: id, Collisions: 2}

	msg := receive(t, client)
	assert.Equal(t, messages.MessageType("collision"), msg.Type)
	event := &gametypes.CollisionEvent{}
	require.NoError(t, json.Unmarshal(msg.Payload, event))
	assert.Equal(t, id, event.ObstacleID)
	assert.Equal(t, 2, event.Collisions)
}

func TestConnectionEventWorker(t *testing.T) {
	cfg := config.Default()
	stateManager := state.NewInMemoryStateManager()
	gameState := gametypes.NewGameState(nil, gametypes.NewAvatarState(cfg.Screen, cfg.Avatar.Diameter))
	gameState.Collisions = 3
	obstacle := gametypes.NewObstacleState(
		uuid.New(),
		kinematic.Vector{X: 390, Y: 100},
		kinematic.Vector{X: 200, Y: 10},
		kinematic.Vector{X: -147.5},
	)
	gameState.AddObstacle(obstacle)
	require.NoError(t, stateManager.Set(context.Background(), gameState))

	cm := network.NewClientManager()
	worker := NewConnectionEventWorker(NewConnectionEventWorkerOptions{
		ClientManager: cm,
		StateManager:  stateManager,
		Config:        cfg,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go worker.Start(ctx)

	client, err := cm.AddClient("test", network.ClientFormatJSON)
	require.NoError(t, err)

	hello := receive(t, client)
	assert.Equal(t, messages.MessageTypeServerHello, hello.Type)

	msg := receive(t, client)
	assert.Equal(t, messages.MessageTypeServerSnapshot, msg.Type)
	snapshot := &messages.GameSnapshot{}
	require.NoError(t, json.Unmarshal(msg.Payload, snapshot))
	assert.Equal(t, 3, snapshot.Collisions)
	assert.Equal(t, 5, snapshot.MaxCollisions)
	assert.Equal(t, "playing", snapshot.Phase)
	require.Len(t, snapshot.Obstacles, 1)
	assert.Equal(t, obstacle.ID.String(), snapshot.Obstacles[0].ID)
}

func TestConnectionEventWorker_noStateYet(t *testing.T) {
	cm := network.NewClientManager()
	worker := NewConnectionEventWorker(NewConnectionEventWorkerOptions{
		ClientManager: cm,
		StateManager:  state.NewInMemoryStateManager(),
		Config:        config.Default(),
	})

	client, err := cm.AddClient("test", network.ClientFormatBinary)
	require.NoError(t, err)

	event := <-cm.GetClientEventChan()
	require.NoError(t, worker.handleClientConnect(context.Background(), event))

	assert.Equal(t, messages.MessageTypeServerHello, receive(t, client).Type)
	assert.Len(t, client.Messages(), 0)
}
