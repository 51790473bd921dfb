package prompt

import (
	"fmt"
	"strings"

	"ai-beautybot-be/pkg/chat/profile"
	"ai-beautybot-be/pkg/llm"
)

const (
	contextPrefix   = "Conversation context: "
	contextSentinel = "(none yet)"
)

// ContextText renders the dynamic context line from what is known about the
// user. Exact wording is relied on by the system prompt.
func ContextText(uc *profile.UserContext) string {
	var parts []string

	if name := uc.Name(); name != "" {
		parts = append(parts, fmt.Sprintf("User's name: %s.", name))
	}
	if questions := uc.PastQuestions(); len(questions) > 0 {
		parts = append(parts, fmt.Sprintf("User previously asked about: %s.", strings.Join(questions, "; ")))
	}

	if len(parts) == 0 {
		return contextPrefix + contextSentinel
	}
	return contextPrefix + strings.Join(parts, " ")
}

// BuildOutbound assembles the message list sent to the backend:
// [base system prompt, synthetic context message, rest of the transcript].
// Inputs are never mutated; the result is a fresh slice.
func BuildOutbound(base llm.Message, uc *profile.UserContext, rest []llm.Message) []llm.Message {
	out := make([]llm.Message, 0, len(rest)+2)
	out = append(out, base)
	out = append(out, llm.Message{Role: llm.RoleSystem, Content: ContextText(uc)})
	out = append(out, rest...)
	return out
}
