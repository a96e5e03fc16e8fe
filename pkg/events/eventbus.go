package events

import (
	"context"
	"sync"

	"github.com/coralstream/catalog/pkg/interfaces"
)

// InMemoryEventBus is an in-memory implementation of EventBus
type InMemoryEventBus struct {
	handlers  map[string][]interfaces.EventHandler
	mu        sync.RWMutex
	logger    interfaces.Logger
	published []interfaces.Event
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger interfaces.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]interfaces.EventHandler),
		logger:   logger,
	}
}

// Publish publishes an event to all subscribers
func (eb *InMemoryEventBus) Publish(ctx context.Context, event interfaces.Event) error {
	eb.mu.Lock()
	eb.published = append(eb.published, event)
	handlers := eb.handlers[event.EventType()]
	eb.mu.Unlock()

	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			eb.logger.Error("event handler failed",
				interfaces.String("event_type", event.EventType()),
				interfaces.Error(err))
			// Continue processing other handlers
		}
	}

	return nil
}

// Subscribe registers a handler for a specific event type
func (eb *InMemoryEventBus) Subscribe(eventType string, handler interfaces.EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.handlers[eventType] = append(eb.handlers[eventType], handler)
}

// Published returns a copy of all events published so far.
func (eb *InMemoryEventBus) Published() []interfaces.Event {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	out := make([]interfaces.Event, len(eb.published))
	copy(out, eb.published)
	return out
}
