package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cbodonnell/circledodge/pkg/log"
	"github.com/cbodonnell/circledodge/pkg/messages"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	// DefaultWriteTimeout bounds a single frame write to a subscriber
	DefaultWriteTimeout = 5 * time.Second
)

// FeedHandler upgrades requests to websocket connections and streams the
// messages queued for each client.
type FeedHandler struct {
	clientManager *ClientManager
	writeTimeout  time.Duration
}

type NewFeedHandlerOptions struct {
	ClientManager *ClientManager
	WriteTimeout  time.Duration
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(opts NewFeedHandlerOptions) *FeedHandler {
	writeTimeout := opts.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}
	return &FeedHandler{
		clientManager: opts.ClientManager,
		writeTimeout:  writeTimeout,
	}
}

func (h *FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	format, err := ParseClientFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		log.Error("Failed to upgrade to WebSocket: %v", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "")

	client, err := h.clientManager.AddClient(r.RemoteAddr, format)
	if err != nil {
		log.Error("Failed to add client: %v", err)
		conn.Close(websocket.StatusTryAgainLater, "too many clients")
		return
	}
	defer h.clientManager.RemoveClient(client.ID)
	logger := log.WithFields(log.Fields{"client": client.ID, "format": client.Format.String()})
	logger.Debug("New WebSocket connection from %s", r.RemoteAddr)

	// the feed is write only, reading just handles control frames
	ctx := conn.CloseRead(r.Context())

	for {
		select {
		case <-ctx.Done():
			logger.Trace("Connection closed")
			return
		case msg, ok := <-client.Messages():
			if !ok {
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}
			if err := h.write(ctx, conn, client.Format, msg); err != nil {
				if websocket.CloseStatus(err) == -1 && !errors.Is(err, context.Canceled) {
					logger.Error("Failed to write message: %v", err)
				}
				return
			}
		}
	}
}

func (h *FeedHandler) write(ctx context.Context, conn *websocket.Conn, format ClientFormat, msg *messages.Message) error {
	ctx, cancel := context.WithTimeout(ctx, h.writeTimeout)
	defer cancel()
	if format == ClientFormatJSON {
		return wsjson.Write(ctx, conn, msg)
	}
	return WriteMessageToWS(ctx, conn, msg)
}

// WriteMessageToWS writes a Message to a WebSocket connection
func WriteMessageToWS(ctx context.Context, conn *websocket.Conn, msg *messages.Message) error {
	b, err := messages.SerializeMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to serialize message: %v", err)
	}

	if err := conn.Write(ctx, websocket.MessageBinary, b); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %w", err)
	}

	return nil
}

// ReadMessageFromWS reads a Message from a WebSocket connection in either format
func ReadMessageFromWS(ctx context.Context, conn *websocket.Conn) (*messages.Message, error) {
	typ, b, err := conn.Read(ctx)
	if err != nil {
		return nil, err
	}

	if typ == websocket.MessageText {
		msg := &messages.Message{}
		if err := json.Unmarshal(b, msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %v", err)
		}
		return msg, nil
	}

	msg, err := messages.DeserializeMessage(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return msg, nil
}
