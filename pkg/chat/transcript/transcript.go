package transcript

import (
	"sync"

	"ai-beautybot-be/pkg/llm"
)

// DefaultMaxMessages caps the retained conversation length.
const DefaultMaxMessages = 40

// Store holds the ordered conversation history for one session. The first
// element is always the base system prompt; Trim never removes or duplicates
// it.
type Store struct {
	mu       sync.RWMutex
	messages []llm.Message
}

// New creates a store seeded with the base system prompt.
func New(systemPrompt string) *Store {
	return &Store{
		messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
		},
	}
}

// Append adds a message to the end of the sequence.
func (s *Store) Append(role, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, llm.Message{Role: role, Content: content})
}

// Trim enforces the retention cap: the leading system message plus the most
// recent (max-1) messages after it. No-op when the sequence already fits.
func (s *Store) Trim(max int) {
	if max < 1 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) <= max {
		return
	}

	tail := s.messages[1:]
	keep := max - 1
	if len(tail) > keep {
		tail = tail[len(tail)-keep:]
	}

	trimmed := make([]llm.Message, 0, keep+1)
	trimmed = append(trimmed, s.messages[0])
	trimmed = append(trimmed, tail...)
	s.messages = trimmed
}

// Len returns the current number of retained messages.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// System returns the base system prompt message.
func (s *Store) System() llm.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.messages[0]
}

// Messages returns a copy of the full sequence.
func (s *Store) Messages() []llm.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]llm.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Rest returns a copy of everything after the base system prompt.
func (s *Store) Rest() []llm.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]llm.Message, len(s.messages)-1)
	copy(out, s.messages[1:])
	return out
}
