package bootstrap

import (
	"context"
	"log"

	"ai-beautybot-be/internal/config"
	"ai-beautybot-be/internal/controller"
	"ai-beautybot-be/internal/handler"
	"ai-beautybot-be/internal/pkg/logger"
	"ai-beautybot-be/internal/repository/memory"
	"ai-beautybot-be/internal/service"
	"ai-beautybot-be/internal/websocket"
	"ai-beautybot-be/pkg/kv"
	"ai-beautybot-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	ChatController       controller.IChatController
	PreferenceController controller.IPreferenceController

	// Background Services (Exposed for main.go to run)
	EventRelayService service.IEventRelayService

	// WebSockets
	ChatWsHandler *handler.ChatWsHandler
	WebSocketHub  *websocket.Hub

	// Core Facades
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Ai.LLMAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 5. Redis (optional: preference persistence + cross-instance events)
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory stores", err)
			rdb = nil
		}
	}

	var prefStore kv.Store
	if rdb != nil {
		prefStore = kv.NewRedisStore(rdb)
	} else {
		prefStore = kv.NewMemoryStore()
	}

	// 6. WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.EventLogFilePath)
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 7. Services
	eventPublisher := service.NewChatEventPublisher(cfg.Chat.EventTopic, pubSub)
	eventRelay := service.NewEventRelayService(pubSub, cfg.Chat.EventTopic, wsHub, wsLogger)

	chatService := service.NewChatService(
		llmProvider,
		sessionRepo,
		eventPublisher,
		sysLogger,
		cfg.Chat.MaxTranscriptMessages,
		cfg.Ai.MaxTokens,
	)
	preferenceService := service.NewPreferenceService(prefStore)

	// 8. Handlers & Controllers
	chatWsHandler := handler.NewChatWsHandler(wsHub, sessionRepo, wsLogger)

	return &Container{
		ChatController:       controller.NewChatController(chatService),
		PreferenceController: controller.NewPreferenceController(preferenceService),
		EventRelayService:    eventRelay,
		ChatWsHandler:        chatWsHandler,
		WebSocketHub:         wsHub,
		Logger:               sysLogger,
	}
}
