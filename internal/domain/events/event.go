package events

import (
	"time"

	"github.com/google/uuid"
)

// Event represents something that happened within the domain.
type Event interface {
	// EventID returns the unique identifier of this event instance
	EventID() uuid.UUID
	// EventType returns the type of the event
	EventType() string
	// AggregateID returns the ID of the aggregate that produced the event
	AggregateID() string
	// OccurredAt returns when the event occurred
	OccurredAt() time.Time
}

// BaseEvent provides common fields for all domain events
type BaseEvent struct {
	ID         uuid.UUID `json:"event_id"`
	Aggregate  uuid.UUID `json:"aggregate_id"`
	Type       string    `json:"event_type"`
	HappenedAt time.Time `json:"occurred_at"`
}

// NewBaseEvent creates a new base event
func NewBaseEvent(aggregateID uuid.UUID, eventType string) BaseEvent {
	return BaseEvent{
		ID:         uuid.New(),
		Aggregate:  aggregateID,
		Type:       eventType,
		HappenedAt: time.Now(),
	}
}

// EventID returns the unique identifier of this event instance
func (e BaseEvent) EventID() uuid.UUID {
	return e.ID
}

// EventType returns the type of the event
func (e BaseEvent) EventType() string {
	return e.Type
}

// AggregateID returns the ID of the aggregate that produced the event
func (e BaseEvent) AggregateID() string {
	return e.Aggregate.String()
}

// OccurredAt returns when the event occurred
func (e BaseEvent) OccurredAt() time.Time {
	return e.HappenedAt
}
