package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/circledodge/client/game"
	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/cbodonnell/circledodge/pkg/log"
	"github.com/cbodonnell/circledodge/pkg/session"
	"github.com/cbodonnell/circledodge/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", os.Getenv(config.PathEnvVar), "Path to a YAML config file")
	logLevel := flag.String("log-level", "info", "Log level")
	debug := flag.Bool("debug", false, "Show the debug overlay and serve the debug API")
	debugPort := flag.Int("debug-port", 8080, "Port of the debug API")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	images, err := game.LoadImages(cfg.Assets)
	if err != nil {
		panic(fmt.Sprintf("Failed to load images: %v", err))
	}

	s, err := session.NewSession(session.NewSessionOptions{
		Config: cfg,
		Debug:  *debug,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create session: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *debug {
		if err := s.StartDebugAPI(ctx, *debugPort); err != nil {
			panic(fmt.Sprintf("Failed to start debug API: %v", err))
		}
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:       *debug,
		GameManager: s.GameManager,
		EventQueue:  s.EventQueue,
		Images:      images,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(int(cfg.Screen.Width), int(cfg.Screen.Height))
	ebiten.SetWindowTitle("Circle Dodge")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
