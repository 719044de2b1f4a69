package game

import (
	"fmt"

	"github.com/cbodonnell/circledodge/client/input"
	"github.com/cbodonnell/circledodge/client/scenes"
	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/cbodonnell/circledodge/pkg/game"
	"github.com/cbodonnell/circledodge/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// config sizes the logical screen.
	config *config.Config
	// gameManager runs the simulation on the ebiten update goroutine.
	gameManager *game.GameManager
	// scene is the current scene.
	scene scenes.Scene
}

type NewGameOptions struct {
	Debug       bool
	GameManager *game.GameManager
	EventQueue  queue.Queue
	// Images holds the optional configured images.
	Images *Images
}

func NewGame(opts NewGameOptions) (*Game, error) {
	images := opts.Images
	if images == nil {
		images = &Images{}
	}

	g := &Game{
		debug:       opts.Debug,
		config:      opts.GameManager.Config(),
		gameManager: opts.GameManager,
	}

	gameScene, err := scenes.NewGameScene(scenes.NewGameSceneOptions{
		GameManager:     opts.GameManager,
		EventQueue:      opts.EventQueue,
		BackgroundImage: images.Background,
		AvatarImage:     images.Avatar,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return nil, fmt.Errorf("failed to set game scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) Update() error {
	if input.IsNegativeJustPressed() {
		return ebiten.Termination
	}

	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	gameState := g.gameManager.GameState()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Obstacles: %d", len(gameState.Obstacles)))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Diameter: %0.0f", gameState.Avatar.Diameter))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Time: %0.1f", gameState.Elapsed))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(g.config.Screen.Width), int(g.config.Screen.Height)
}
