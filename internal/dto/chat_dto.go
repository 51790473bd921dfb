package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionResponse struct {
	Id       uuid.UUID `json:"id"`
	Greeting string    `json:"greeting"`
}

type SendChatRequest struct {
	ChatSessionId uuid.UUID `json:"chat_session_id" validate:"required"`
	Chat          string    `json:"chat"`
}

type SendChatResponseChat struct {
	Chat      string    `json:"chat"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	ChatSessionId uuid.UUID             `json:"chat_session_id"`
	Sent          *SendChatResponseChat `json:"sent,omitempty"`
	Reply         *SendChatResponseChat `json:"reply,omitempty"`
	// Skipped marks a whitespace-only submission: nothing was appended and
	// no backend call was made.
	Skipped bool `json:"skipped,omitempty"`
}

type GetChatHistoryResponse struct {
	Role string `json:"role"`
	Chat string `json:"chat"`
}
