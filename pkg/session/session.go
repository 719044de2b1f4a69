package session

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/cbodonnell/circledodge/pkg/api"
	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/cbodonnell/circledodge/pkg/game"
	gametypes "github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/cbodonnell/circledodge/pkg/log"
	"github.com/cbodonnell/circledodge/pkg/network"
	"github.com/cbodonnell/circledodge/pkg/queue"
	"github.com/cbodonnell/circledodge/pkg/state"
	"github.com/cbodonnell/circledodge/pkg/workers"
)

const (
	CommandQueueSize      = 64
	EventQueueSize        = 1024
	BroadcastChannelSize  = 1024
	DebugAPIShutdownGrace = 5 * time.Second
)

// Session wires a game manager to its queues and, in debug mode, to the
// debug API and event feed.
type Session struct {
	Config       *config.Config
	GameManager  *game.GameManager
	EventQueue   queue.Queue
	StateManager state.StateManager

	debug         bool
	broadcastChan chan gametypes.Event
	clientManager *network.ClientManager
}

type NewSessionOptions struct {
	Config *config.Config
	// Seed seeds obstacle placement. Zero uses the current time.
	Seed int64
	// Debug enables the event broadcast used by the debug API.
	Debug bool
	// GameLoopInterval is only needed when the game manager is started
	// with GameManager.Start.
	GameLoopInterval time.Duration
}

func NewSession(opts NewSessionOptions) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		Config:       cfg,
		EventQueue:   queue.NewInMemoryQueue(EventQueueSize),
		StateManager: state.NewInMemoryStateManager(),
		debug:        opts.Debug,
	}

	gameManagerOpts := game.NewGameManagerOptions{
		Config:           cfg,
		CommandQueue:     queue.NewInMemoryQueue(CommandQueueSize),
		EventQueue:       s.EventQueue,
		StateManager:     s.StateManager,
		Rand:             rand.New(rand.NewSource(seed)),
		GameLoopInterval: opts.GameLoopInterval,
	}
	if opts.Debug {
		s.broadcastChan = make(chan gametypes.Event, BroadcastChannelSize)
		s.clientManager = network.NewClientManager()
		gameManagerOpts.BroadcastChan = s.broadcastChan
	}

	gameManager, err := game.NewGameManager(gameManagerOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create game manager: %w", err)
	}
	s.GameManager = gameManager

	return s, nil
}

// DebugRouter returns the debug API handler.
func (s *Session) DebugRouter() http.Handler {
	opts := api.NewAPIServerOptions{
		Config:       s.Config,
		StateManager: s.StateManager,
		Submitter:    s.GameManager,
	}
	if s.clientManager != nil {
		opts.EventFeed = network.NewFeedHandler(network.NewFeedHandlerOptions{
			ClientManager: s.clientManager,
		})
	}
	return api.NewRouter(opts)
}

// StartDebugAPI starts the feed workers and serves the debug API on port
// until the context is cancelled.
func (s *Session) StartDebugAPI(ctx context.Context, port int) error {
	if !s.debug {
		return fmt.Errorf("session was not created in debug mode")
	}

	broadcastWorker := workers.NewBroadcastEventWorker(workers.NewBroadcastEventWorkerOptions{
		ClientManager: s.clientManager,
		BroadcastChan: s.broadcastChan,
	})
	go broadcastWorker.Start(ctx)

	connectionWorker := workers.NewConnectionEventWorker(workers.NewConnectionEventWorkerOptions{
		ClientManager: s.clientManager,
		StateManager:  s.StateManager,
		Config:        s.Config,
	})
	go connectionWorker.Start(ctx)

	apiServer := api.NewAPIServer(api.NewAPIServerOptions{
		Port:    port,
		Handler: s.DebugRouter(),
	})
	go apiServer.Start()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), DebugAPIShutdownGrace)
		defer cancel()
		if err := apiServer.Stop(shutdownCtx); err != nil {
			log.Error("Failed to stop API server: %v", err)
		}
	}()

	return nil
}
