//go:build mobile

// Package mobile is the binding built with ebitenmobile.
package mobile

import (
	"fmt"

	"github.com/cbodonnell/circledodge/client/game"
	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/cbodonnell/circledodge/pkg/session"
	"github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	s, err := session.NewSession(session.NewSessionOptions{
		Config: config.Default(),
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create session: %v", err))
	}

	g, err := game.NewGame(game.NewGameOptions{
		GameManager: s.GameManager,
		EventQueue:  s.EventQueue,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	mobile.SetGame(g)
}

// Dummy is a dummy exported function.
//
// gomobile doesn't compile a package that doesn't include any exported function.
// Dummy forces gomobile to compile this package.
func Dummy() {}
