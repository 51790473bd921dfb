package store

import (
	"sync"

	"ai-beautybot-be/pkg/chat/profile"
	"ai-beautybot-be/pkg/chat/transcript"
)

// Session is the active conversation state held in memory: the transcript,
// the per-session user context, and the single-flight send guard.
type Session struct {
	ID string

	Transcript *transcript.Store
	Context    *profile.UserContext

	mu      sync.Mutex
	sending bool
}

// NewSession creates a session with a transcript seeded by the base system
// prompt.
func NewSession(id, systemPrompt string) *Session {
	return &Session{
		ID:         id,
		Transcript: transcript.New(systemPrompt),
		Context:    profile.NewUserContext(),
	}
}

// BeginSend acquires the single-flight guard. It reports false when a send is
// already in flight; the caller must drop the submission in that case.
func (s *Session) BeginSend() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sending {
		return false
	}
	s.sending = true
	return true
}

// EndSend releases the guard. Safe to call from a defer on every outcome.
func (s *Session) EndSend() {
	s.mu.Lock()
	s.sending = false
	s.mu.Unlock()
}

// Sending reports whether a send is currently in flight.
func (s *Session) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}
