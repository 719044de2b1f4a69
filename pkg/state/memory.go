package state

import (
	"context"
	"fmt"
	"sync"

	gametypes "github.com/cbodonnell/circledodge/pkg/game/types"
)

type InMemoryStateManager struct {
	lock      sync.RWMutex
	gameState *gametypes.GameState
}

var _ StateManager = &InMemoryStateManager{}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{}
}

func (m *InMemoryStateManager) Get(ctx context.Context) (*gametypes.GameState, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	if m.gameState == nil {
		return nil, ErrNoState
	}
	return m.gameState.Copy(), nil
}

// Set stores the game state. The caller must not modify it afterwards.
func (m *InMemoryStateManager) Set(ctx context.Context, gameState *gametypes.GameState) error {
	if gameState == nil {
		return fmt.Errorf("game state is nil")
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.gameState = gameState
	return nil
}
