package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/cbodonnell/circledodge/pkg/game"
	gametypes "github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/cbodonnell/circledodge/pkg/log"
	"github.com/cbodonnell/circledodge/pkg/session"
	"github.com/cbodonnell/circledodge/pkg/version"
)

func main() {
	configPath := flag.String("config", os.Getenv(config.PathEnvVar), "Path to a YAML config file")
	logLevel := flag.String("log-level", "info", "Log level")
	debug := flag.Bool("debug", false, "Serve the debug API")
	debugPort := flag.Int("debug-port", 8080, "Port of the debug API")
	tickInterval := flag.Duration("tick-interval", 16*time.Millisecond, "Interval between simulation ticks")
	autoRestart := flag.Bool("auto-restart", false, "Restart the round as soon as it is over")
	duration := flag.Duration("duration", 0, "Stop after this long, zero runs until interrupted")
	seed := flag.Int64("seed", 0, "Seed for obstacle placement, zero uses the current time")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting simulation version %s", version.Get())

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	s, err := session.NewSession(session.NewSessionOptions{
		Config:           cfg,
		Seed:             *seed,
		Debug:            *debug,
		GameLoopInterval: *tickInterval,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create session: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	if *debug {
		if err := s.StartDebugAPI(ctx, *debugPort); err != nil {
			panic(fmt.Sprintf("Failed to start debug API: %v", err))
		}
	}

	go watchEvents(ctx, s, *tickInterval, *autoRestart)

	log.Info("Starting game manager")
	if err := s.GameManager.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to run game manager: %v", err))
	}

	gameState, err := s.StateManager.Get(context.Background())
	if err != nil {
		log.Warn("No final game state: %v", err)
		return
	}
	snapshot := game.SnapshotFromState(cfg, gameState)
	log.Info("Simulation finished after %.1fs in phase %s with %d/%d collisions and %d obstacles in play",
		snapshot.Elapsed, snapshot.Phase, snapshot.Collisions, snapshot.MaxCollisions, len(snapshot.Obstacles))
}

// watchEvents logs the round as it plays out and restarts it when asked to.
func watchEvents(ctx context.Context, s *session.Session, interval time.Duration, autoRestart bool) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	rounds := 1
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		pendingEvents, err := s.EventQueue.ReadAllMessages()
		if err != nil {
			log.Error("Failed to read events: %v", err)
			continue
		}
		for _, item := range pendingEvents {
			switch event := item.(type) {
			case *gametypes.CollisionEvent:
				log.Info("Round %d: collision %d/%d", rounds, event.Collisions, s.Config.Collision.MaxCollisions)
			case *gametypes.GameOverEvent:
				log.Info("Round %d over", rounds)
				if autoRestart {
					if err := s.GameManager.Submit(gametypes.CommandTypeRestart); err != nil {
						log.Error("Failed to restart: %v", err)
					}
				}
			case *gametypes.GameResetEvent:
				rounds++
				log.Info("Round %d started", rounds)
			}
		}
	}
}
