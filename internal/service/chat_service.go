package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"ai-beautybot-be/internal/constant"
	"ai-beautybot-be/internal/dto"
	"ai-beautybot-be/internal/pkg/logger"
	"ai-beautybot-be/internal/repository/memory"
	"ai-beautybot-be/pkg/chat/profile"
	"ai-beautybot-be/pkg/chat/prompt"
	"ai-beautybot-be/pkg/llm"
	"ai-beautybot-be/pkg/store"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound means the session id is unknown or has expired.
	ErrSessionNotFound = errors.New("chat session not found")
	// ErrSessionBusy means a send is already in flight; the submission is
	// dropped, not queued.
	ErrSessionBusy = errors.New("a send is already in flight for this session")
)

// IChatService defines the chat service interface
type IChatService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetChatHistory(ctx context.Context, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)
	DeleteSession(ctx context.Context, sessionId uuid.UUID) error
}

// chatService owns the send lifecycle: single-flight guard, transcript and
// context mutation, outbound payload construction and the backend call.
type chatService struct {
	llmProvider   llm.LLMProvider
	sessionRepo   *memory.SessionRepository
	events        IChatEventPublisher
	logger        logger.ILogger
	maxTranscript int
	maxTokens     int
}

func NewChatService(
	llmProvider llm.LLMProvider,
	sessionRepo *memory.SessionRepository,
	events IChatEventPublisher,
	log logger.ILogger,
	maxTranscript int,
	maxTokens int,
) IChatService {
	if maxTranscript < 2 {
		maxTranscript = 40
	}
	return &chatService{
		llmProvider:   llmProvider,
		sessionRepo:   sessionRepo,
		events:        events,
		logger:        log,
		maxTranscript: maxTranscript,
		maxTokens:     maxTokens,
	}
}

// CreateSession seeds a new conversation with the base system prompt and the
// widget greeting.
func (cs *chatService) CreateSession(_ context.Context) (*dto.CreateSessionResponse, error) {
	id := uuid.New()

	sess := store.NewSession(id.String(), constant.BaseSystemPrompt)
	sess.Transcript.Append(llm.RoleAssistant, constant.SessionGreeting)
	cs.sessionRepo.Save(sess)

	cs.logger.Info("ChatService", "Session created", map[string]interface{}{"session_id": id})

	return &dto.CreateSessionResponse{
		Id:       id,
		Greeting: constant.SessionGreeting,
	}, nil
}

// SendChat processes one user submission end to end.
//
// Whitespace-only input is a silent no-op. A submission while another send is
// in flight is dropped with ErrSessionBusy. The single-flight guard and the
// typing indicator are released via defers so every outcome, including a
// backend failure, returns the session to an idle, interactive state.
func (cs *chatService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	sess, found := cs.sessionRepo.Get(request.ChatSessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}

	chat := strings.TrimSpace(request.Chat)
	if chat == "" {
		return &dto.SendChatResponse{
			ChatSessionId: request.ChatSessionId,
			Skipped:       true,
		}, nil
	}

	if !sess.BeginSend() {
		return nil, ErrSessionBusy
	}
	defer sess.EndSend()

	cs.events.PublishTyping(request.ChatSessionId, true)
	defer cs.events.PublishTyping(request.ChatSessionId, false)

	now := time.Now()

	// Mutate session state before the suspension point: transcript, past
	// questions, name detection, trim policy.
	sess.Transcript.Append(llm.RoleUser, chat)
	sess.Context.RecordQuestion(chat)
	profile.DetectName(chat, sess.Context)
	sess.Transcript.Trim(cs.maxTranscript)
	cs.sessionRepo.Save(sess)

	cs.events.PublishMessage(request.ChatSessionId, llm.RoleUser, chat)

	outbound := prompt.BuildOutbound(sess.Transcript.System(), sess.Context, sess.Transcript.Rest())

	var opts []llm.Option
	if cs.maxTokens > 0 {
		opts = append(opts, llm.WithMaxTokens(cs.maxTokens))
	}

	reply, err := cs.llmProvider.Chat(ctx, outbound, opts...)
	if err != nil {
		// Diagnostic detail goes to the log; the transcript is never
		// polluted with failures and the caller renders the fallback text.
		cs.logger.Error("ChatService", "LLM call failed", map[string]interface{}{
			"session_id": request.ChatSessionId,
			"error":      err.Error(),
		})
		return nil, err
	}

	sess.Transcript.Append(llm.RoleAssistant, reply)
	cs.sessionRepo.Save(sess)

	cs.events.PublishMessage(request.ChatSessionId, llm.RoleAssistant, reply)

	return &dto.SendChatResponse{
		ChatSessionId: request.ChatSessionId,
		Sent: &dto.SendChatResponseChat{
			Chat:      chat,
			Role:      llm.RoleUser,
			CreatedAt: now,
		},
		Reply: &dto.SendChatResponseChat{
			Chat:      reply,
			Role:      llm.RoleAssistant,
			CreatedAt: time.Now(),
		},
	}, nil
}

// GetChatHistory returns the user-visible transcript. System messages (base
// prompt, context line) stay server-side.
func (cs *chatService) GetChatHistory(_ context.Context, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	sess, found := cs.sessionRepo.Get(sessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}

	messages := sess.Transcript.Messages()
	resp := make([]*dto.GetChatHistoryResponse, 0, len(messages))
	for _, msg := range messages {
		if msg.Role == llm.RoleSystem {
			continue
		}
		resp = append(resp, &dto.GetChatHistoryResponse{
			Role: msg.Role,
			Chat: msg.Content,
		})
	}

	return resp, nil
}

func (cs *chatService) DeleteSession(_ context.Context, sessionId uuid.UUID) error {
	if _, found := cs.sessionRepo.Get(sessionId.String()); !found {
		return ErrSessionNotFound
	}
	cs.sessionRepo.Delete(sessionId.String())
	return nil
}
