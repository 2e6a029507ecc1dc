package service

import (
	"context"
	"testing"
	"time"

	"finance-advisor-be/internal/repository/memory"
	"finance-advisor-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// recordingDelivery captures hub pushes for assertions.
type recordingDelivery struct {
	sends chan uuid.UUID
}

func (d *recordingDelivery) Send(userID uuid.UUID, payload interface{}) {
	d.sends <- userID
}

func publishCompletedEvent(t *testing.T, publisher IPublisherService, userId uuid.UUID) {
	t.Helper()
	err := publisher.Publish(context.Background(), events.TopicAdviceCompleted, events.BaseEvent{
		Type: events.TypeAdviceCompleted,
		Data: map[string]interface{}{
			"request_id": uuid.New().String(),
			"user_id":    userId.String(),
			"feature":    "Should I sell this asset?",
		},
		OccurredAt: time.Now(),
	})
	assert.NoError(t, err)
}

func TestNotificationsDeliveredToEnabledUser(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	delivery := &recordingDelivery{sends: make(chan uuid.UUID, 4)}
	svc := NewNotificationService(pubSub, delivery, memory.NewSettingsRepository())
	assert.NoError(t, svc.Start(context.Background()))

	// Default settings leave notifications on.
	userId := uuid.New()
	publishCompletedEvent(t, NewPublisherService(pubSub), userId)

	select {
	case got := <-delivery.sends:
		assert.Equal(t, userId, got)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a websocket push for a user with notifications enabled")
	}
}

func TestNotificationsSuppressedWhenDisabled(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	delivery := &recordingDelivery{sends: make(chan uuid.UUID, 4)}
	settingsRepo := memory.NewSettingsRepository()
	svc := NewNotificationService(pubSub, delivery, settingsRepo)
	assert.NoError(t, svc.Start(context.Background()))

	mutedUser := uuid.New()
	settings, err := settingsRepo.Get(context.Background(), mutedUser)
	assert.NoError(t, err)
	settings.NotificationsEnabled = false
	assert.NoError(t, settingsRepo.Save(context.Background(), settings))

	hearingUser := uuid.New()

	// Publish for the muted user first: the subscriber handles messages in
	// order, so the push that arrives proves the first was suppressed.
	publisher := NewPublisherService(pubSub)
	publishCompletedEvent(t, publisher, mutedUser)
	publishCompletedEvent(t, publisher, hearingUser)

	select {
	case got := <-delivery.sends:
		assert.Equal(t, hearingUser, got)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a push for the user with notifications enabled")
	}

	select {
	case got := <-delivery.sends:
		t.Fatalf("unexpected extra push for user %s", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestMalformedEventIsDropped(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	delivery := &recordingDelivery{sends: make(chan uuid.UUID, 4)}
	svc := NewNotificationService(pubSub, delivery, memory.NewSettingsRepository())
	assert.NoError(t, svc.Start(context.Background()))

	publisher := NewPublisherService(pubSub)
	// Event without a usable user_id, then a well-formed one.
	err := publisher.Publish(context.Background(), events.TopicAdviceCompleted, events.BaseEvent{
		Type:       events.TypeAdviceCompleted,
		Data:       map[string]interface{}{"user_id": "not-a-uuid"},
		OccurredAt: time.Now(),
	})
	assert.NoError(t, err)
	userId := uuid.New()
	publishCompletedEvent(t, publisher, userId)

	select {
	case got := <-delivery.sends:
		assert.Equal(t, userId, got)
	case <-time.After(2 * time.Second):
		t.Fatal("expected the well-formed event to still be delivered")
	}
}
