package network

import (
	"fmt"
	"sync"

	"github.com/cbodonnell/circledodge/pkg/messages"
)

const (
	// ClientIDMaxRetries represents the maximum number of retries when generating a unique ID
	ClientIDMaxRetries = 1024
	// ClientEventChannelSize represents the size of the client event channel
	ClientEventChannelSize = 1024
	// ClientSendBufferSize represents the number of messages buffered per client
	ClientSendBufferSize = 256
)

// ClientFormat is the encoding of the frames written to a client.
type ClientFormat uint8

const (
	// ClientFormatBinary frames are zstd compressed message envelopes.
	ClientFormatBinary ClientFormat = iota
	// ClientFormatJSON frames are plain JSON text.
	ClientFormatJSON
)

// ParseClientFormat parses the format query parameter of a feed request.
func ParseClientFormat(s string) (ClientFormat, error) {
	switch s {
	case "", "binary":
		return ClientFormatBinary, nil
	case "json":
		return ClientFormatJSON, nil
	}
	return ClientFormatBinary, fmt.Errorf("unknown client format: %s", s)
}

func (f ClientFormat) String() string {
	if f == ClientFormatJSON {
		return "json"
	}
	return "binary"
}

// Client represents a connected feed subscriber
type Client struct {
	ID         uint32
	RemoteAddr string
	Format     ClientFormat
	send       chan *messages.Message
}

// Messages returns the channel of messages queued for the client.
// It is closed when the client is removed.
func (c *Client) Messages() <-chan *messages.Message {
	return c.send
}

// ClientEvent represents an event that happened to a client
type ClientEvent struct {
	ClientID uint32
	Type     ClientEventType
}

// ClientEventType represents the type of a client event
type ClientEventType int

const (
	ClientEventTypeConnect ClientEventType = iota
	ClientEventTypeDisconnect
)

func (t ClientEventType) String() string {
	switch t {
	case ClientEventTypeConnect:
		return "connect"
	case ClientEventTypeDisconnect:
		return "disconnect"
	}
	return "unknown"
}

// ClientManager manages connected clients
type ClientManager struct {
	clients         map[uint32]*Client
	clientsLock     sync.RWMutex
	nextID          uint32
	clientEventChan chan ClientEvent
}

// NewClientManager creates a new ClientManager
func NewClientManager() *ClientManager {
	return &ClientManager{
		clients:         make(map[uint32]*Client),
		nextID:          1,
		clientEventChan: make(chan ClientEvent, ClientEventChannelSize),
	}
}

// GetClientEventChan returns a one-way channel for receiving client events
func (cm *ClientManager) GetClientEventChan() <-chan ClientEvent {
	return cm.clientEventChan
}

// GetClients returns a slice of all connected clients.
func (cm *ClientManager) GetClients() []*Client {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	clients := make([]*Client, 0, len(cm.clients))
	for _, client := range cm.clients {
		clients = append(clients, client)
	}
	return clients
}

// AddClient registers a new client and returns it
func (cm *ClientManager) AddClient(remoteAddr string, format ClientFormat) (*Client, error) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()
	clientID, err := cm.generateUniqueID(ClientIDMaxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate a unique ID: %v", err)
	}
	client := &Client{
		ID:         clientID,
		RemoteAddr: remoteAddr,
		Format:     format,
		send:       make(chan *messages.Message, ClientSendBufferSize),
	}
	cm.clients[clientID] = client
	cm.triggerEvent(ClientEvent{ClientID: clientID, Type: ClientEventTypeConnect})
	return client, nil
}

// RemoveClient removes a client from the manager and closes its message channel.
func (cm *ClientManager) RemoveClient(clientID uint32) {
	cm.clientsLock.Lock()
	defer cm.clientsLock.Unlock()

	client, exists := cm.clients[clientID]
	if !exists {
		return
	}
	delete(cm.clients, clientID)
	close(client.send)
	cm.triggerEvent(ClientEvent{ClientID: clientID, Type: ClientEventTypeDisconnect})
}

// Exists reports whether a client is connected
func (cm *ClientManager) Exists(clientID uint32) bool {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	_, ok := cm.clients[clientID]
	return ok
}

// Count returns the number of connected clients
func (cm *ClientManager) Count() int {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	return len(cm.clients)
}

// Send queues a message for one client without blocking.
// It returns false if the client is gone or its buffer is full.
func (cm *ClientManager) Send(clientID uint32, msg *messages.Message) bool {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	client, ok := cm.clients[clientID]
	if !ok {
		return false
	}
	return trySend(client, msg)
}

// Broadcast queues a message for every client without blocking and returns
// the number of clients that could not take it.
func (cm *ClientManager) Broadcast(msg *messages.Message) int {
	cm.clientsLock.RLock()
	defer cm.clientsLock.RUnlock()
	dropped := 0
	for _, client := range cm.clients {
		if !trySend(client, msg) {
			dropped++
		}
	}
	return dropped
}

func trySend(client *Client, msg *messages.Message) bool {
	select {
	case client.send <- msg:
		return true
	default:
		return false
	}
}

// triggerEvent writes to the event channel, dropping the event if nobody
// is reading. It must be called with the lock held.
func (cm *ClientManager) triggerEvent(event ClientEvent) {
	select {
	case cm.clientEventChan <- event:
	default:
	}
}

// generateUniqueID generates a unique client ID with a maximum number of retries
// it reads from the clients, so it needs to be locked before calling
func (cm *ClientManager) generateUniqueID(maxRetries int) (uint32, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		id := cm.nextID
		cm.nextID++
		if id == 0 {
			continue
		}
		if _, ok := cm.clients[id]; !ok {
			return id, nil
		}
	}

	return 0, fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}
