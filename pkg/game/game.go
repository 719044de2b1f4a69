package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/circledodge/pkg/collisions"
	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/cbodonnell/circledodge/pkg/log"
	"github.com/cbodonnell/circledodge/pkg/queue"
	"github.com/cbodonnell/circledodge/pkg/state"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
)

type GameManager struct {
	config           *config.Config
	commandQueue     queue.Queue
	eventQueue       queue.Queue
	broadcastChan    chan<- types.Event
	stateManager     state.StateManager
	gameState        *types.GameState
	spawner          *Spawner
	gameLoopInterval time.Duration
	// obstacleIDs maps collision objects back to the obstacle they belong to.
	obstacleIDs map[*resolv.Object]uuid.UUID
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	// Config is the game configuration. Defaults are used when nil.
	Config *config.Config
	// CommandQueue receives types.Command values from any goroutine.
	CommandQueue queue.Queue
	// EventQueue receives every types.Event emitted by the game loop. Optional.
	EventQueue queue.Queue
	// BroadcastChan receives a copy of every event without blocking. Optional.
	BroadcastChan chan<- types.Event
	// StateManager receives a copy of the game state after every tick. Optional.
	StateManager state.StateManager
	// Rand is the random source for obstacle placement. Optional.
	Rand *rand.Rand
	// GameLoopInterval is the tick interval used by Start.
	GameLoopInterval time.Duration
}

func NewGameManager(opts NewGameManagerOptions) (*GameManager, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}
	if opts.CommandQueue == nil {
		return nil, fmt.Errorf("command queue is required")
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	collisionSpace := NewCollisionSpace(cfg)
	avatar := types.NewAvatarState(cfg.Screen, cfg.Avatar.Diameter)
	avatar.Object = collisionSpace.NewObject(avatar.Circle().Bounds(cfg.CollisionTolerance()), collisions.TagAvatar)

	return &GameManager{
		config:           cfg,
		commandQueue:     opts.CommandQueue,
		eventQueue:       opts.EventQueue,
		broadcastChan:    opts.BroadcastChan,
		stateManager:     opts.StateManager,
		gameState:        types.NewGameState(collisionSpace, avatar),
		spawner:          NewSpawner(cfg, rng),
		gameLoopInterval: opts.GameLoopInterval,
		obstacleIDs:      make(map[*resolv.Object]uuid.UUID),
	}, nil
}

// Start runs the game loop until the context is cancelled.
func (gm *GameManager) Start(ctx context.Context) error {
	if gm.gameLoopInterval <= 0 {
		return fmt.Errorf("invalid game loop interval: %v", gm.gameLoopInterval)
	}

	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case t := <-ticker.C:
			gm.Tick(ctx, gm.gameLoopInterval.Seconds(), t)
		}
	}
}

// Tick runs one iteration of the game loop.
func (gm *GameManager) Tick(ctx context.Context, deltaTime float64, t time.Time) {
	gm.gameState.Timestamp = t.UnixMilli()
	gm.processCommands()

	if gm.gameState.Phase == types.GamePhasePlaying {
		gm.gameState.Elapsed += deltaTime
		gm.updateObstacles(deltaTime)
		gm.spawnObstacles(deltaTime)
		gm.checkCollisions()
	}

	gm.publishState(ctx)
}

// Submit queues a command for the next tick.
func (gm *GameManager) Submit(commandType types.CommandType) error {
	if err := gm.commandQueue.Enqueue(&types.Command{Type: commandType}); err != nil {
		return fmt.Errorf("failed to submit %s command: %w", commandType, err)
	}
	return nil
}

// GameState returns the live game state. It must only be read from the
// goroutine calling Tick.
func (gm *GameManager) GameState() *types.GameState {
	return gm.gameState
}

func (gm *GameManager) Config() *config.Config {
	return gm.config
}

// processCommands applies all pending commands in the order they were queued.
func (gm *GameManager) processCommands() {
	pendingCommands, err := gm.commandQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read commands: %v", err)
		return
	}
	for _, item := range pendingCommands {
		command, ok := item.(*types.Command)
		if !ok {
			log.Error("Unhandled command item type: %T", item)
			continue
		}

		switch command.Type {
		case types.CommandTypeGrowAvatar:
			gm.gameState.Avatar.Grow(gm.config.Avatar, gm.config.Screen.Width)
			gm.avatarResized()
		case types.CommandTypeShrinkAvatar:
			gm.gameState.Avatar.Shrink(gm.config.Avatar, gm.config.Screen.Width)
			gm.avatarResized()
		case types.CommandTypeRestart:
			gm.resetGame()
		default:
			log.Error("Unhandled command type: %s", command.Type)
		}
	}
}

func (gm *GameManager) avatarResized() {
	avatar := gm.gameState.Avatar
	gm.gameState.CollisionSpace.Move(avatar.Object, avatar.Circle().Bounds(gm.config.CollisionTolerance()))
	log.Debug("Avatar resized to %.0f", avatar.Diameter)
	gm.emit(&types.AvatarResizedEvent{Diameter: avatar.Diameter})
}

// resetGame clears the round and restarts the spawner.
func (gm *GameManager) resetGame() {
	gm.spawner.Reset()
	for _, obstacle := range gm.gameState.Obstacles {
		gm.removeObstacle(obstacle, types.RemovalReasonReset)
	}
	gm.gameState.Collisions = 0
	gm.gameState.Elapsed = 0
	gm.gameState.SpawnTimer = 0
	gm.gameState.Phase = types.GamePhasePlaying

	log.Info("Game reset")
	gm.emit(&types.GameResetEvent{})
}

// emit hands an event to the event queue and the broadcast channel.
func (gm *GameManager) emit(event types.Event) {
	if gm.eventQueue != nil {
		if err := gm.eventQueue.Enqueue(event); err != nil {
			log.Warn("Failed to enqueue %s event: %v", event.Type(), err)
		}
	}
	if gm.broadcastChan != nil {
		select {
		case gm.broadcastChan <- event:
		default:
			log.Warn("Broadcast channel is full, dropping %s event", event.Type())
		}
	}
}

// publishState stores a copy of the game state for readers on other goroutines.
func (gm *GameManager) publishState(ctx context.Context) {
	if gm.stateManager == nil {
		return
	}
	if err := gm.stateManager.Set(ctx, gm.gameState.Copy()); err != nil {
		log.Error("Failed to publish game state: %v", err)
	}
}
