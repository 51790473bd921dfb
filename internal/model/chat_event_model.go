package model

import (
	"time"

	"github.com/google/uuid"
)

// Chat event types pushed to the widget over WebSocket.
const (
	ChatEventTyping  = "typing"  // show/hide the typing indicator
	ChatEventMessage = "message" // append a rendered message bubble
)

// ChatEvent is the UI-facing event envelope. The widget reacts to these; it
// never sees transcript internals.
type ChatEvent struct {
	Type      string    `json:"type"`
	SessionID uuid.UUID `json:"session_id"`
	Active    bool      `json:"active,omitempty"` // typing indicator state
	Role      string    `json:"role,omitempty"`   // message events
	Content   string    `json:"content,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
