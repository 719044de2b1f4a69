package workers

import (
	"context"

	gametypes "github.com/cbodonnell/circledodge/pkg/game/types"
	"github.com/cbodonnell/circledodge/pkg/log"
	"github.com/cbodonnell/circledodge/pkg/messages"
	"github.com/cbodonnell/circledodge/pkg/network"
)

// BroadcastEventWorker forwards game events to every feed subscriber.
type BroadcastEventWorker struct {
	clientManager *network.ClientManager
	broadcastChan <-chan gametypes.Event
}

type NewBroadcastEventWorkerOptions struct {
	ClientManager *network.ClientManager
	BroadcastChan <-chan gametypes.Event
}

func NewBroadcastEventWorker(opts NewBroadcastEventWorkerOptions) *BroadcastEventWorker {
	return &BroadcastEventWorker{
		clientManager: opts.ClientManager,
		broadcastChan: opts.BroadcastChan,
	}
}

func (w *BroadcastEventWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.broadcastChan:
			if !ok {
				return
			}
			if err := w.handleEvent(event); err != nil {
				log.Error("Failed to broadcast %s event: %v", event.Type(), err)
			}
		}
	}
}

func (w *BroadcastEventWorker) handleEvent(event gametypes.Event) error {
	msg, err := messages.MessageFromEvent(event)
	if err != nil {
		return err
	}
	if dropped := w.clientManager.Broadcast(msg); dropped > 0 {
		log.Warn("Dropped %s event for %d slow clients", event.Type(), dropped)
	}
	return nil
}
