package service

import (
	"context"
	"errors"
	"testing"

	"ai-beautybot-be/internal/constant"
	"ai-beautybot-be/internal/dto"
	"ai-beautybot-be/internal/repository/memory"
	"ai-beautybot-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider records the histories it was called with and returns canned
// replies or errors.
type fakeProvider struct {
	calls [][]llm.Message
	reply string
	err   error
}

func (f *fakeProvider) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	f.calls = append(f.calls, history)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

type nopPublisher struct{}

func (nopPublisher) PublishTyping(uuid.UUID, bool)            {}
func (nopPublisher) PublishMessage(uuid.UUID, string, string) {}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newTestService(provider llm.LLMProvider) (IChatService, *memory.SessionRepository) {
	repo := memory.NewSessionRepository()
	svc := NewChatService(provider, repo, nopPublisher{}, nopLogger{}, 40, 0)
	return svc, repo
}

func createTestSession(t *testing.T, svc IChatService) uuid.UUID {
	t.Helper()
	res, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	return res.Id
}

func TestCreateSessionSeedsTranscript(t *testing.T) {
	svc, repo := newTestService(&fakeProvider{})
	id := createTestSession(t, svc)

	sess, found := repo.Get(id.String())
	require.True(t, found)

	msgs := sess.Transcript.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Equal(t, constant.BaseSystemPrompt, msgs[0].Content)
	assert.Equal(t, llm.RoleAssistant, msgs[1].Role)
	assert.Equal(t, constant.SessionGreeting, msgs[1].Content)
}

func TestSendChatSuccess(t *testing.T) {
	provider := &fakeProvider{reply: "Try Product X"}
	svc, repo := newTestService(provider)
	id := createTestSession(t, svc)

	res, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		ChatSessionId: id,
		Chat:          "what helps with red lipstick bleeding?",
	})

	require.NoError(t, err)
	require.NotNil(t, res.Reply)
	assert.Equal(t, "Try Product X", res.Reply.Chat)
	assert.Equal(t, llm.RoleAssistant, res.Reply.Role)

	sess, _ := repo.Get(id.String())
	msgs := sess.Transcript.Messages()
	require.Len(t, msgs, 4) // system, greeting, user, reply
	assert.Equal(t, "what helps with red lipstick bleeding?", msgs[2].Content)
	assert.Equal(t, "Try Product X", msgs[3].Content)
	assert.False(t, sess.Sending())
}

func TestSendChatOutboundContainsContextMessage(t *testing.T) {
	provider := &fakeProvider{reply: "hello Ana"}
	svc, _ := newTestService(provider)
	id := createTestSession(t, svc)

	_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		ChatSessionId: id,
		Chat:          "my name is Ana",
	})
	require.NoError(t, err)

	require.Len(t, provider.calls, 1)
	outbound := provider.calls[0]
	// [base system, context message, greeting, user message]
	require.Len(t, outbound, 4)
	assert.Equal(t, llm.RoleSystem, outbound[0].Role)
	assert.Equal(t, constant.BaseSystemPrompt, outbound[0].Content)
	assert.Equal(t, llm.RoleSystem, outbound[1].Role)
	assert.Equal(t,
		"Conversation context: User's name: Ana. User previously asked about: my name is Ana.",
		outbound[1].Content)
	assert.Equal(t, llm.RoleUser, outbound[3].Role)
}

func TestSendChatWhitespaceOnlyIsNoOp(t *testing.T) {
	provider := &fakeProvider{reply: "never"}
	svc, repo := newTestService(provider)
	id := createTestSession(t, svc)

	res, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		ChatSessionId: id,
		Chat:          "   \n\t ",
	})

	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Empty(t, provider.calls)

	sess, _ := repo.Get(id.String())
	assert.Equal(t, 2, sess.Transcript.Len())
	assert.False(t, sess.Sending())
}

func TestSendChatDropsConcurrentSubmission(t *testing.T) {
	provider := &fakeProvider{reply: "ok"}
	svc, repo := newTestService(provider)
	id := createTestSession(t, svc)

	sess, _ := repo.Get(id.String())
	require.True(t, sess.BeginSend()) // simulate an in-flight send
	defer sess.EndSend()

	_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		ChatSessionId: id,
		Chat:          "second submit",
	})

	assert.ErrorIs(t, err, ErrSessionBusy)
	assert.Empty(t, provider.calls)
	assert.Equal(t, 2, sess.Transcript.Len())
}

func TestSendChatBackendFailure(t *testing.T) {
	provider := &fakeProvider{err: llm.NewShapeError()}
	svc, repo := newTestService(provider)
	id := createTestSession(t, svc)

	_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		ChatSessionId: id,
		Chat:          "hello?",
	})

	var backendErr *llm.BackendError
	require.True(t, errors.As(err, &backendErr))

	sess, _ := repo.Get(id.String())
	msgs := sess.Transcript.Messages()
	// The user message stays, but no error text pollutes the transcript
	require.Len(t, msgs, 3)
	assert.Equal(t, llm.RoleUser, msgs[2].Role)
	// Guard is released so the user can resubmit
	assert.False(t, sess.Sending())
}

func TestSendChatUnknownSession(t *testing.T) {
	svc, _ := newTestService(&fakeProvider{})

	_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		ChatSessionId: uuid.New(),
		Chat:          "hello",
	})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSendChatRecordsContext(t *testing.T) {
	provider := &fakeProvider{reply: "sure"}
	svc, repo := newTestService(provider)
	id := createTestSession(t, svc)

	_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{ChatSessionId: id, Chat: "Hi, I'm Renae and I have dry skin"})
	require.NoError(t, err)
	_, err = svc.SendChat(context.Background(), &dto.SendChatRequest{ChatSessionId: id, Chat: "what about dry scalp?"})
	require.NoError(t, err)

	sess, _ := repo.Get(id.String())
	assert.Equal(t, "Renae", sess.Context.Name())
	assert.Equal(t, []string{"Hi, I'm Renae and I have dry skin", "what about dry scalp?"}, sess.Context.PastQuestions())
}

func TestGetChatHistoryHidesSystemMessages(t *testing.T) {
	provider := &fakeProvider{reply: "reply"}
	svc, _ := newTestService(provider)
	id := createTestSession(t, svc)

	_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{ChatSessionId: id, Chat: "question"})
	require.NoError(t, err)

	history, err := svc.GetChatHistory(context.Background(), id)
	require.NoError(t, err)

	require.Len(t, history, 3) // greeting, question, reply
	for _, entry := range history {
		assert.NotEqual(t, llm.RoleSystem, entry.Role)
	}
}

func TestDeleteSession(t *testing.T) {
	svc, repo := newTestService(&fakeProvider{})
	id := createTestSession(t, svc)

	require.NoError(t, svc.DeleteSession(context.Background(), id))

	_, found := repo.Get(id.String())
	assert.False(t, found)
	assert.ErrorIs(t, svc.DeleteSession(context.Background(), id), ErrSessionNotFound)
}
