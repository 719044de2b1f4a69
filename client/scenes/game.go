package scenes

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/cbodonnell/circledodge/client/input"
	"github.com/cbodonnell/circledodge/client/objects"
	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/cbodonnell/circledodge/pkg/game"
	gametypes "github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/cbodonnell/circledodge/pkg/log"
	"github.com/cbodonnell/circledodge/pkg/queue"
	"github.com/ebitenui/ebitenui"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	zIndexBackground = iota * 10
	zIndexAvatar
	zIndexObstacle
	zIndexEffect
	zIndexHUD

	// HitEffectTTL is how long the collision text stays on screen in milliseconds.
	HitEffectTTL = 800
	// VibrationDuration is the length of the haptic pulse on a collision.
	VibrationDuration = 150 * time.Millisecond
)

var hitEffectColor = color.RGBA{R: 255, G: 59, B: 48, A: 255}

type GameScene struct {
	*BaseScene

	gameManager *game.GameManager
	eventQueue  queue.Queue
	config      *config.Config

	controls          *ebitenui.UI
	restartDialog     *ebitenui.UI
	showRestartDialog bool

	hud *objects.TextOverlayObject
	// hitCount names the collision text effects
	hitCount int
}

type NewGameSceneOptions struct {
	GameManager *game.GameManager
	// EventQueue must be the event queue the game manager was created with.
	EventQueue queue.Queue
	// BackgroundImage and AvatarImage are optional.
	BackgroundImage *ebiten.Image
	AvatarImage     *ebiten.Image
}

var _ Scene = &GameScene{}

func NewGameScene(opts NewGameSceneOptions) (*GameScene, error) {
	if opts.GameManager == nil || opts.EventQueue == nil {
		return nil, fmt.Errorf("game manager and event queue are required")
	}
	cfg := opts.GameManager.Config()

	s := &GameScene{
		BaseScene:   NewBaseScene(objects.NewSortedZIndexObject("game-root")),
		gameManager: opts.GameManager,
		eventQueue:  opts.EventQueue,
		config:      cfg,
		hud: objects.NewTextOverlayObject("hud", "", objects.NewTextOverlayOptions{
			Y:      64,
			ZIndex: zIndexHUD,
		}),
	}
	s.controls = newControlsUI(
		func() { s.submit(gametypes.CommandTypeShrinkAvatar) },
		func() { s.submit(gametypes.CommandTypeGrowAvatar) },
	)
	s.restartDialog = newRestartDialogUI(func() {
		s.submit(gametypes.CommandTypeRestart)
	})

	root := s.GetRoot()
	if err := root.AddChild("background", objects.NewBackground("background", opts.BackgroundImage, zIndexBackground)); err != nil {
		return nil, fmt.Errorf("failed to add background: %v", err)
	}
	avatar := objects.NewAvatar("avatar", objects.NewAvatarOptions{
		State:          opts.GameManager.GameState().Avatar,
		Image:          opts.AvatarImage,
		RotationPeriod: cfg.Avatar.RotationPeriod,
		ZIndex:         zIndexAvatar,
	})
	if err := root.AddChild("avatar", avatar); err != nil {
		return nil, fmt.Errorf("failed to add avatar: %v", err)
	}
	if err := root.AddChild("hud", s.hud); err != nil {
		return nil, fmt.Errorf("failed to add hud: %v", err)
	}
	s.updateHUD()

	return s, nil
}

func (s *GameScene) Update() error {
	s.handleInput()
	if s.showRestartDialog {
		s.restartDialog.Update()
	} else {
		s.controls.Update()
	}

	s.gameManager.Tick(context.Background(), 1/float64(ebiten.TPS()), time.Now())

	if err := s.processPendingEvents(); err != nil {
		return fmt.Errorf("failed to process pending events: %v", err)
	}
	s.updateHUD()

	if err := s.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}
	return nil
}

func (s *GameScene) Draw(screen *ebiten.Image) {
	s.BaseScene.Draw(screen)
	if s.showRestartDialog {
		s.restartDialog.Draw(screen)
	} else {
		s.controls.Draw(screen)
	}
}

func (s *GameScene) handleInput() {
	if input.IsGrowJustPressed() {
		s.submit(gametypes.CommandTypeGrowAvatar)
	}
	if input.IsShrinkJustPressed() {
		s.submit(gametypes.CommandTypeShrinkAvatar)
	}
	if s.showRestartDialog && input.IsPositiveJustPressed() {
		s.submit(gametypes.CommandTypeRestart)
	}
}

func (s *GameScene) submit(commandType gametypes.CommandType) {
	if err := s.gameManager.Submit(commandType); err != nil {
		log.Error("Failed to submit command: %v", err)
	}
}

func (s *GameScene) processPendingEvents() error {
	pendingEvents, err := s.eventQueue.ReadAllMessages()
	if err != nil {
		return fmt.Errorf("failed to read events: %v", err)
	}

	for _, item := range pendingEvents {
		switch event := item.(type) {
		case *gametypes.ObstacleSpawnedEvent:
			if err := s.handleObstacleSpawned(event); err != nil {
				log.Error("Failed to handle obstacle spawned: %v", err)
			}
		case *gametypes.ObstacleRemovedEvent:
			if err := s.handleObstacleRemoved(event); err != nil {
				log.Error("Failed to handle obstacle removed: %v", err)
			}
		case *gametypes.CollisionEvent:
			if err := s.handleCollision(event); err != nil {
				log.Error("Failed to handle collision: %v", err)
			}
		case *gametypes.GameOverEvent:
			s.showRestartDialog = true
		case *gametypes.GameResetEvent:
			s.showRestartDialog = false
		case *gametypes.AvatarResizedEvent:
			// the avatar object reads the live state
		default:
			log.Error("Unhandled event type: %T", item)
		}
	}

	return nil
}

func obstacleObjectID(id uuid.UUID) string {
	return fmt.Sprintf("obstacle-%s", id)
}

func (s *GameScene) handleObstacleSpawned(event *gametypes.ObstacleSpawnedEvent) error {
	state, ok := s.gameManager.GameState().Obstacles[event.ObstacleID]
	if !ok {
		// spawned and removed within the same tick
		return nil
	}
	id := obstacleObjectID(event.ObstacleID)
	if err := s.GetRoot().AddChild(id, objects.NewObstacle(id, state, zIndexObstacle)); err != nil {
		return fmt.Errorf("failed to add obstacle object: %v", err)
	}
	return nil
}

func (s *GameScene) handleObstacleRemoved(event *gametypes.ObstacleRemovedEvent) error {
	id := obstacleObjectID(event.ObstacleID)
	if s.GetRoot().GetChild(id) == nil {
		return nil
	}
	if err := s.GetRoot().RemoveChild(id); err != nil {
		return fmt.Errorf("failed to remove obstacle object: %v", err)
	}
	return nil
}

func (s *GameScene) handleCollision(event *gametypes.CollisionEvent) error {
	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  VibrationDuration,
		Magnitude: 1,
	})

	s.hitCount++
	hitID := fmt.Sprintf("hit-%d", s.hitCount)
	x := math.Max(32, math.Min(s.config.Screen.Width-32, event.Rect.X+event.Rect.W/2))
	hitObject := objects.NewTextEffect(hitID, objects.NewTextEffectOptions{
		Text:   fmt.Sprintf("%d/%d", event.Collisions, s.config.Collision.MaxCollisions),
		X:      x,
		Y:      event.Rect.Y,
		Color:  hitEffectColor,
		Scroll: true,
		TTL:    HitEffectTTL,
		ZIndex: zIndexEffect,
	})
	if err := s.GetRoot().AddChild(hitID, hitObject); err != nil {
		return fmt.Errorf("failed to add hit object: %v", err)
	}
	return nil
}

func (s *GameScene) updateHUD() {
	gameState := s.gameManager.GameState()
	s.hud.SetText(fmt.Sprintf("%d / %d", gameState.Collisions, s.config.Collision.MaxCollisions))
}
