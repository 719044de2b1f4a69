package state

import (
	"context"
	"errors"

	gametypes "github.com/cbodonnell/circledodge/pkg/game/types"
)

// ErrNoState is returned by Get before the game loop has published a tick.
var ErrNoState = errors.New("no game state published yet")

// StateManager hands the latest published game state from the tick goroutine
// to readers such as the debug API. Implementations must be thread-safe.
type StateManager interface {
	// Get returns the last published copy, or ErrNoState.
	Get(ctx context.Context) (*gametypes.GameState, error)
	// Set publishes a copy owned by the manager from now on.
	Set(ctx context.Context, gameState *gametypes.GameState) error
}
