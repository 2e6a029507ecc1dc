// Package events defines the payloads carried on the in-process event bus.
package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "ADVICE_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used across services.
type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func (e BaseEvent) EventType() string { return e.Type }

func (e BaseEvent) Payload() map[string]interface{} { return e.Data }

func (e BaseEvent) Timestamp() time.Time { return e.OccurredAt }

// Event type codes published by this service.
const (
	TypeAdviceCompleted = "ADVICE_COMPLETED"
	TypeFundsDeposited  = "FUNDS_DEPOSITED"
	TypeUserLogin       = "USER_LOGIN"
)

// Topic names on the gochannel bus.
const (
	TopicAdviceCompleted = "advice.completed"
)
