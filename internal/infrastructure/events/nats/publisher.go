package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	domainevents "github.com/coralstream/catalog/internal/domain/events"
	"github.com/coralstream/catalog/pkg/interfaces"
)

// Publisher implements interfaces.EventBus on NATS JetStream
type Publisher struct {
	client *Client
	logger *zap.Logger
}

// NewPublisher creates a new NATS event publisher
func NewPublisher(client *Client, logger *zap.Logger) *Publisher {
	return &Publisher{
		client: client,
		logger: logger.Named("publisher"),
	}
}

// Publish publishes a domain event to NATS
func (p *Publisher) Publish(ctx context.Context, event interfaces.Event) error {
	subject := subjectForEvent(event)

	envelope := EventEnvelope{
		AggregateID: event.AggregateID(),
		EventType:   event.EventType(),
		OccurredAt:  time.Now(),
		Data:        event,
	}

	var pubOpts []jetstream.PublishOpt
	if de, ok := event.(domainevents.Event); ok {
		envelope.ID = de.EventID().String()
		envelope.OccurredAt = de.OccurredAt()
		pubOpts = append(pubOpts, jetstream.WithMsgID(envelope.ID))
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ack, err := p.client.JetStream().Publish(pubCtx, subject, data, pubOpts...)
	if err != nil {
		p.logger.Error("failed to publish event",
			zap.Error(err),
			zap.String("event_type", event.EventType()),
			zap.String("subject", subject),
		)
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Info("event published",
		zap.String("event_type", event.EventType()),
		zap.String("subject", subject),
		zap.Uint64("sequence", ack.Sequence),
		zap.String("stream", ack.Stream),
	)

	return nil
}

// subjectForEvent maps event types like "video.media.created" onto the
// CATALOG_EVENTS stream's "videos.>" subject space.
func subjectForEvent(event interfaces.Event) string {
	eventType := event.EventType()
	if rest, ok := strings.CutPrefix(eventType, "video."); ok {
		return "videos." + rest
	}
	return "videos." + eventType
}

// EventEnvelope wraps an event with metadata for transport
type EventEnvelope struct {
	ID          string           `json:"id,omitempty"`
	AggregateID string           `json:"aggregate_id"`
	EventType   string           `json:"event_type"`
	OccurredAt  time.Time        `json:"occurred_at"`
	Data        interfaces.Event `json:"data"`
}
