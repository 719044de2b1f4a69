package workers

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/cbodonnell/circledodge/pkg/game"
	"github.com/cbodonnell/circledodge/pkg/log"
	"github.com/cbodonnell/circledodge/pkg/messages"
	"github.com/cbodonnell/circledodge/pkg/network"
	"github.com/cbodonnell/circledodge/pkg/state"
	"github.com/cbodonnell/circledodge/pkg/version"
)

// ConnectionEventWorker greets new feed subscribers with the server version
// and the latest game snapshot.
type ConnectionEventWorker struct {
	clientManager *network.ClientManager
	stateManager  state.StateManager
	config        *config.Config
}

type NewConnectionEventWorkerOptions struct {
	ClientManager *network.ClientManager
	StateManager  state.StateManager
	Config        *config.Config
}

func NewConnectionEventWorker(opts NewConnectionEventWorkerOptions) *ConnectionEventWorker {
	return &ConnectionEventWorker{
		clientManager: opts.ClientManager,
		stateManager:  opts.StateManager,
		config:        opts.Config,
	}
}

func (w *ConnectionEventWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-w.clientManager.GetClientEventChan():
			switch event.Type {
			case network.ClientEventTypeConnect:
				if err := w.handleClientConnect(ctx, event); err != nil {
					log.Error("Failed to greet client %d: %v", event.ClientID, err)
				}
			case network.ClientEventTypeDisconnect:
				log.Debug("Client %d disconnected", event.ClientID)
			default:
				log.Error("Unknown client event type: %v", event.Type)
			}
		}
	}
}

func (w *ConnectionEventWorker) handleClientConnect(ctx context.Context, event network.ClientEvent) error {
	hello, err := messages.NewMessage(messages.MessageTypeServerHello, &messages.ServerHello{
		Version: version.Get(),
	})
	if err != nil {
		return err
	}
	if !w.clientManager.Send(event.ClientID, hello) {
		return fmt.Errorf("client is gone or not reading")
	}

	gameState, err := w.stateManager.Get(ctx)
	if err != nil {
		if errors.Is(err, state.ErrNoState) {
			return nil
		}
		return fmt.Errorf("failed to get game state: %v", err)
	}
	snapshot, err := messages.NewMessage(messages.MessageTypeServerSnapshot, game.SnapshotFromState(w.config, gameState))
	if err != nil {
		return err
	}
	if !w.clientManager.Send(event.ClientID, snapshot) {
		return fmt.Errorf("client is gone or not reading")
	}
	return nil
}
