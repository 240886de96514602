package realtime

import (
	"testing"

	"caremind-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(hub *Hub, userID string, buffer int) *Client {
	return &Client{
		UserID: userID,
		Send:   make(chan []byte, buffer),
		hub:    hub,
	}
}

func TestRegisterUnregister(t *testing.T) {
	hub := NewHub(zap.NewNop())

	first := newTestClient(hub, "user-1", 1)
	second := newTestClient(hub, "user-1", 1)

	hub.Register(first)
	hub.Register(second)
	assert.Equal(t, 2, hub.ConnectionCount("user-1"))

	hub.Unregister(first)
	assert.Equal(t, 1, hub.ConnectionCount("user-1"))

	hub.Unregister(second)
	assert.Equal(t, 0, hub.ConnectionCount("user-1"))

	// Unregistering twice must not panic or close twice.
	hub.Unregister(second)
}

func TestPublishToUserDeliversToAllConnections(t *testing.T) {
	hub := NewHub(zap.NewNop())

	first := newTestClient(hub, "user-1", 1)
	second := newTestClient(hub, "user-1", 1)
	other := newTestClient(hub, "user-2", 1)
	hub.Register(first)
	hub.Register(second)
	hub.Register(other)

	hub.PublishToUser("user-1",
		constvars.RealtimeEventNotificationCreated,
		constvars.ResourceKeyPendingDischargeRequests,
		map[string]string{"patientId": "p1"},
	)

	for _, client := range []*Client{first, second} {
		select {
		case data := <-client.Send:
			var event Event
			err := json.Unmarshal(data, &event)
			assert.NoError(t, err)
			assert.Equal(t, constvars.RealtimeEventNotificationCreated, event.Event)
			assert.Equal(t, constvars.ResourceKeyPendingDischargeRequests, event.Resource)
			assert.False(t, event.Timestamp.IsZero())
		default:
			t.Fatal("expected event on client send channel")
		}
	}

	select {
	case <-other.Send:
		t.Fatal("user-2 must not receive user-1 events")
	default:
	}
}

func TestPublishToUserSkipsFullBuffers(t *testing.T) {
	hub := NewHub(zap.NewNop())

	client := newTestClient(hub, "user-1", 1)
	hub.Register(client)

	// Fill the buffer, then publish again; the second publish must not block.
	hub.PublishToUser("user-1", "e1", "r1", nil)
	hub.PublishToUser("user-1", "e2", "r2", nil)

	assert.Len(t, client.Send, 1)
}

func TestPublishToUnknownUserIsNoop(t *testing.T) {
	hub := NewHub(zap.NewNop())
	hub.PublishToUser("ghost", "e1", "r1", nil)
}

func TestPublishToUsers(t *testing.T) {
	hub := NewHub(zap.NewNop())

	admin := newTestClient(hub, "admin-1", 1)
	supervisor := newTestClient(hub, "supervisor-1", 1)
	hub.Register(admin)
	hub.Register(supervisor)

	hub.PublishToUsers([]string{"admin-1", "supervisor-1"},
		constvars.RealtimeEventDischargeRequestUpdated,
		constvars.ResourceKeyPendingDischargeRequests,
		nil,
	)

	assert.Len(t, admin.Send, 1)
	assert.Len(t, supervisor.Send, 1)
}
