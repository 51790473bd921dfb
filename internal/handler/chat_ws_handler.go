package handler

import (
	"ai-beautybot-be/internal/pkg/logger"
	"ai-beautybot-be/internal/repository/memory"
	internalWS "ai-beautybot-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ChatWsHandler upgrades widget connections onto the chat event stream.
type ChatWsHandler struct {
	hub         *internalWS.Hub
	sessionRepo *memory.SessionRepository
	logger      logger.ILogger
}

func NewChatWsHandler(hub *internalWS.Hub, sessionRepo *memory.SessionRepository, log logger.ILogger) *ChatWsHandler {
	return &ChatWsHandler{
		hub:         hub,
		sessionRepo: sessionRepo,
		logger:      log,
	}
}

func (h *ChatWsHandler) RegisterRoutes(app fiber.Router) {
	app.Get("/ws/chat", h.ServeWs)
}

// ServeWs handles websocket requests from the widget. The session id rides in
// as a query parameter; there is no authentication on the widget surface.
func (h *ChatWsHandler) ServeWs(c *fiber.Ctx) error {
	sessionIDStr := c.Query("session_id")
	if sessionIDStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing session_id query parameter"})
	}

	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session id format"})
	}

	if _, found := h.sessionRepo.Get(sessionID.String()); !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found or expired"})
	}

	// Upgrade via Fiber WebSocket Middleware
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("ChatWsHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionID})
			internalWS.ServeWs(h.hub, conn, sessionID)
			h.logger.Info("ChatWsHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
