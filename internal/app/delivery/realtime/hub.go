// Package realtime pushes cache-invalidation events to connected clients over
// WebSockets. The push channel is advisory: payloads carry a resource key and
// clients respond by refetching that resource, so dropped or reordered
// deliveries are tolerated. Durable notification rows cover offline gaps.
package realtime

import (
	"sync"
	"time"

	"caremind-service/internal/app/contracts"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Event is the wire format pushed to clients.
type Event struct {
	Event     string      `json:"event"`
	Resource  string      `json:"resource"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Client represents a single authenticated WebSocket connection. A user may
// hold several at once (multiple tabs, reconnects).
type Client struct {
	UserID string
	Send   chan []byte
	conn   Conn
	hub    *Hub
}

// Conn abstracts a WebSocket connection for testability.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Hub maintains the user id to connection registry. All operations are
// thread-safe via sync.RWMutex.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{} // user id -> set of clients
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
		log:     log,
	}
}

var _ contracts.RealtimePublisher = (*Hub)(nil)

// Register adds an authenticated client to the registry.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[client.UserID] == nil {
		h.clients[client.UserID] = make(map[*Client]struct{})
	}
	h.clients[client.UserID][client] = struct{}{}
}

// Unregister removes a client and closes its send channel.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	connections, ok := h.clients[client.UserID]
	if !ok {
		return
	}
	if _, ok := connections[client]; !ok {
		return
	}

	delete(connections, client)
	if len(connections) == 0 {
		delete(h.clients, client.UserID)
	}
	close(client.Send)
}

// ConnectionCount reports how many connections a user currently holds.
func (h *Hub) ConnectionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// PublishToUser sends an event to every connection the user holds. Delivery
// is best effort: a client with a full buffer is skipped rather than blocked
// on, and a user with no connections is a no-op.
func (h *Hub) PublishToUser(userID, event, resourceKey string, payload interface{}) {
	data, err := json.Marshal(Event{
		Event:     event,
		Resource:  resourceKey,
		Payload:   payload,
		Timestamp: time.Now(),
	})
	if err != nil {
		h.log.Error("realtime hub failed to marshal event", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[userID] {
		select {
		case client.Send <- data:
		default:
			// Client buffer full; skip to avoid blocking.
		}
	}
}

// PublishToUsers fans the same event out to a set of recipients.
func (h *Hub) PublishToUsers(userIDs []string, event, resourceKey string, payload interface{}) {
	for _, userID := range userIDs {
		h.PublishToUser(userID, event, resourceKey, payload)
	}
}
