package service

import (
	"context"
	"encoding/json"

	"ai-beautybot-be/internal/model"
	"ai-beautybot-be/internal/pkg/logger"
	"ai-beautybot-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IEventRelayService consumes chat events from the bus and fans them out to
// connected widgets through the WebSocket hub.
type IEventRelayService interface {
	Relay(ctx context.Context) error
}

type eventRelayService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	hub       *websocket.Hub
	logger    logger.ILogger
}

func NewEventRelayService(
	pubSub *gochannel.GoChannel,
	topicName string,
	hub *websocket.Hub,
	log logger.ILogger,
) IEventRelayService {
	return &eventRelayService{
		pubSub:    pubSub,
		topicName: topicName,
		hub:       hub,
		logger:    log,
	}
}

func (rs *eventRelayService) Relay(ctx context.Context) error {
	messages, err := rs.pubSub.Subscribe(ctx, rs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			rs.processEvent(msg)
		}
	}()

	return nil
}

func (rs *eventRelayService) processEvent(msg *message.Message) {
	var event model.ChatEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		rs.logger.Error("EventRelay", "Failed to unmarshal chat event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads are not retriable
		return
	}

	rs.hub.SendEvent(event)
	msg.Ack()
}
