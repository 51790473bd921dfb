package websocket

import (
	"testing"
	"time"

	"ai-beautybot-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func (h *Hub) clientCount(sessionID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func registerClient(t *testing.T, h *Hub, sessionID uuid.UUID, buffer int) *Client {
	t.Helper()
	c := &Client{Hub: h, SessionID: sessionID, Send: make(chan []byte, buffer)}
	h.register <- c
	require.Eventually(t, func() bool {
		return h.clientCount(sessionID) == 1
	}, time.Second, 5*time.Millisecond)
	return c
}

func TestHubDeliversEventToRegisteredClient(t *testing.T) {
	h := NewHub(nil, nopLogger{})
	go h.Run()

	sessionID := uuid.New()
	c := registerClient(t, h, sessionID, 4)

	h.SendEvent(model.ChatEvent{Type: model.ChatEventTyping, SessionID: sessionID, Active: true})

	select {
	case data := <-c.Send:
		assert.Contains(t, string(data), `"typing"`)
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestHubDropsStalledClientWithoutPanic(t *testing.T) {
	h := NewHub(nil, nopLogger{})
	go h.Run()

	sessionID := uuid.New()
	c := registerClient(t, h, sessionID, 1)

	// Fill the buffer so the next delivery hits the drop path.
	c.Send <- []byte("stuck")

	h.SendEvent(model.ChatEvent{Type: model.ChatEventTyping, SessionID: sessionID, Active: true})

	require.Eventually(t, func() bool {
		return h.clientCount(sessionID) == 0
	}, time.Second, 5*time.Millisecond)

	// Unregister is the only place that closes Send; the buffered item is
	// still readable, then the channel reports closed exactly once.
	data, ok := <-c.Send
	assert.True(t, ok)
	assert.Equal(t, "stuck", string(data))
	_, ok = <-c.Send
	assert.False(t, ok)

	// The hub goroutine survived the drop and keeps serving.
	c2 := registerClient(t, h, sessionID, 4)
	h.SendEvent(model.ChatEvent{Type: model.ChatEventMessage, SessionID: sessionID, Role: "assistant", Content: "hi"})

	select {
	case <-c2.Send:
	case <-time.After(time.Second):
		t.Fatal("hub stopped delivering after dropping a stalled client")
	}
}

func TestHubUnregisterTwiceIsSafe(t *testing.T) {
	h := NewHub(nil, nopLogger{})
	go h.Run()

	sessionID := uuid.New()
	c := registerClient(t, h, sessionID, 1)

	h.unregister <- c
	require.Eventually(t, func() bool {
		return h.clientCount(sessionID) == 0
	}, time.Second, 5*time.Millisecond)

	// A second unregister (read pump exiting after a drop) is a no-op.
	h.unregister <- c

	c2 := registerClient(t, h, sessionID, 1)
	h.SendEvent(model.ChatEvent{Type: model.ChatEventTyping, SessionID: sessionID, Active: true})

	select {
	case <-c2.Send:
	case <-time.After(time.Second):
		t.Fatal("hub stopped delivering after duplicate unregister")
	}
}
