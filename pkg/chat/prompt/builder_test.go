package prompt

import (
	"testing"

	"ai-beautybot-be/pkg/chat/profile"
	"ai-beautybot-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextTextEmpty(t *testing.T) {
	uc := profile.NewUserContext()

	assert.Equal(t, "Conversation context: (none yet)", ContextText(uc))
}

func TestContextTextNameAndQuestions(t *testing.T) {
	uc := profile.NewUserContext()
	uc.SetNameOnce("Ana")
	uc.RecordQuestion("red lipstick")
	uc.RecordQuestion("dry scalp")

	assert.Equal(t,
		"Conversation context: User's name: Ana. User previously asked about: red lipstick; dry scalp.",
		ContextText(uc))
}

func TestContextTextNameOnly(t *testing.T) {
	uc := profile.NewUserContext()
	uc.SetNameOnce("Ana")

	assert.Equal(t, "Conversation context: User's name: Ana.", ContextText(uc))
}

func TestContextTextQuestionsOnly(t *testing.T) {
	uc := profile.NewUserContext()
	uc.RecordQuestion("sunscreen")

	assert.Equal(t, "Conversation context: User previously asked about: sunscreen.", ContextText(uc))
}

func TestBuildOutboundOrder(t *testing.T) {
	base := llm.Message{Role: llm.RoleSystem, Content: "base prompt"}
	uc := profile.NewUserContext()
	uc.SetNameOnce("Ana")
	rest := []llm.Message{
		{Role: llm.RoleUser, Content: "hello"},
		{Role: llm.RoleAssistant, Content: "hi Ana"},
	}

	out := BuildOutbound(base, uc, rest)

	require.Len(t, out, 4)
	assert.Equal(t, base, out[0])
	assert.Equal(t, llm.RoleSystem, out[1].Role)
	assert.Equal(t, "Conversation context: User's name: Ana.", out[1].Content)
	assert.Equal(t, rest[0], out[2])
	assert.Equal(t, rest[1], out[3])
}

func TestBuildOutboundDoesNotMutateInputs(t *testing.T) {
	base := llm.Message{Role: llm.RoleSystem, Content: "base prompt"}
	uc := profile.NewUserContext()
	rest := []llm.Message{{Role: llm.RoleUser, Content: "hello"}}

	out := BuildOutbound(base, uc, rest)
	out[2].Content = "changed"

	assert.Equal(t, "hello", rest[0].Content)
	assert.Empty(t, uc.Name())
	assert.Empty(t, uc.PastQuestions())
}
