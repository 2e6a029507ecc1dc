// FILE: internal/service/notification_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"finance-advisor-be/internal/repository/contract"
	"finance-advisor-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type INotificationService interface {
	Start(ctx context.Context) error
}

// NotificationDelivery pushes a payload to a user's active connections.
// websocket.Hub is the production implementation.
type NotificationDelivery interface {
	Send(userID uuid.UUID, payload interface{})
}

// notificationService bridges completed-advice events to the websocket hub.
// Users who disabled notifications in their settings are skipped.
type notificationService struct {
	pubSub       *gochannel.GoChannel
	hub          NotificationDelivery
	settingsRepo contract.SettingsRepository
}

func NewNotificationService(
	pubSub *gochannel.GoChannel,
	hub NotificationDelivery,
	settingsRepo contract.SettingsRepository,
) INotificationService {
	return &notificationService{
		pubSub:       pubSub,
		hub:          hub,
		settingsRepo: settingsRepo,
	}
}

func (ns *notificationService) Start(ctx context.Context) error {
	messages, err := ns.pubSub.Subscribe(ctx, events.TopicAdviceCompleted)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ns.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ns *notificationService) processMessage(ctx context.Context, msg *message.Message) {
	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		log.Printf("[ERROR] Failed to unmarshal advice event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	rawUserId, _ := event.Data["user_id"].(string)
	userId, err := uuid.Parse(rawUserId)
	if err != nil {
		log.Printf("[ERROR] Advice event carries invalid user_id %q: %v", rawUserId, err)
		msg.Ack()
		return
	}

	settings, err := ns.settingsRepo.Get(ctx, userId)
	if err != nil {
		log.Printf("[ERROR] Failed to load settings for %s: %v", userId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if !settings.NotificationsEnabled {
		msg.Ack()
		return
	}

	featureName, _ := event.Data["feature"].(string)
	ns.hub.Send(userId, map[string]interface{}{
		"event":      event.Type,
		"request_id": event.Data["request_id"],
		"message":    fmt.Sprintf("Your %s advice is ready.", featureName),
	})
	msg.Ack()
}
