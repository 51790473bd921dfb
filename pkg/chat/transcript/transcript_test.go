package transcript

import (
	"fmt"
	"testing"

	"ai-beautybot-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeedsSystemPrompt(t *testing.T) {
	s := New("base prompt")

	require.Equal(t, 1, s.Len())
	assert.Equal(t, llm.RoleSystem, s.System().Role)
	assert.Equal(t, "base prompt", s.System().Content)
}

func TestAppendKeepsOrder(t *testing.T) {
	s := New("base")
	s.Append(llm.RoleUser, "first")
	s.Append(llm.RoleAssistant, "second")

	msgs := s.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[1].Content)
	assert.Equal(t, "second", msgs[2].Content)
}

func TestTrimNoOpWhenWithinCap(t *testing.T) {
	s := New("base")
	for i := 0; i < 10; i++ {
		s.Append(llm.RoleUser, fmt.Sprintf("m%d", i))
	}

	s.Trim(40)
	assert.Equal(t, 11, s.Len())
}

func TestTrimKeepsSystemPlusMostRecent(t *testing.T) {
	s := New("base")
	for i := 1; i <= 44; i++ {
		role := llm.RoleUser
		if i%2 == 0 {
			role = llm.RoleAssistant
		}
		s.Append(role, fmt.Sprintf("m%d", i))
	}
	// 45 messages total, cap at 40
	s.Trim(40)

	msgs := s.Messages()
	require.Len(t, msgs, 40)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Equal(t, "base", msgs[0].Content)

	// The 39 most recent messages follow the system prompt: m6..m44
	for i, msg := range msgs[1:] {
		assert.Equal(t, fmt.Sprintf("m%d", i+6), msg.Content)
	}
}

func TestTrimNeverDuplicatesSystemMessage(t *testing.T) {
	s := New("base")
	for i := 0; i < 100; i++ {
		s.Append(llm.RoleUser, "q")
		s.Trim(5)
	}

	systemCount := 0
	for _, msg := range s.Messages() {
		if msg.Role == llm.RoleSystem {
			systemCount++
		}
	}
	assert.Equal(t, 1, systemCount)
	assert.Equal(t, 5, s.Len())
}

func TestFirstMessageAlwaysSystem(t *testing.T) {
	s := New("base")
	for i := 0; i < 200; i++ {
		s.Append(llm.RoleUser, fmt.Sprintf("u%d", i))
		s.Append(llm.RoleAssistant, fmt.Sprintf("a%d", i))
		if i%3 == 0 {
			s.Trim(40)
		}
		require.Equal(t, llm.RoleSystem, s.Messages()[0].Role)
	}
}

func TestRestExcludesSystemPrompt(t *testing.T) {
	s := New("base")
	s.Append(llm.RoleUser, "hello")

	rest := s.Rest()
	require.Len(t, rest, 1)
	assert.Equal(t, llm.RoleUser, rest[0].Role)
}
