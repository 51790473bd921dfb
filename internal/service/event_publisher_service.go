package service

import (
	"encoding/json"
	"log"
	"time"

	"ai-beautybot-be/internal/model"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IChatEventPublisher emits UI collaborator events (typing indicator,
// appended bubbles) onto the in-process event bus.
type IChatEventPublisher interface {
	PublishTyping(sessionID uuid.UUID, active bool)
	PublishMessage(sessionID uuid.UUID, role, content string)
}

type chatEventPublisher struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewChatEventPublisher(topicName string, pubSub *gochannel.GoChannel) IChatEventPublisher {
	return &chatEventPublisher{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (p *chatEventPublisher) PublishTyping(sessionID uuid.UUID, active bool) {
	p.publish(model.ChatEvent{
		Type:      model.ChatEventTyping,
		SessionID: sessionID,
		Active:    active,
		CreatedAt: time.Now(),
	})
}

func (p *chatEventPublisher) PublishMessage(sessionID uuid.UUID, role, content string) {
	p.publish(model.ChatEvent{
		Type:      model.ChatEventMessage,
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
}

func (p *chatEventPublisher) publish(event model.ChatEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("[ERROR] Failed to marshal chat event: %v", err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(p.topicName, msg); err != nil {
		// Event delivery is best effort; the chat flow must not fail on it
		log.Printf("[ERROR] Failed to publish chat event: %v", err)
	}
}
