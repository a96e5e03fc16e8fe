package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	domainevents "github.com/coralstream/catalog/internal/domain/events"
	"github.com/coralstream/catalog/pkg/interfaces"
)

// Publisher implements interfaces.EventBus on a Kafka topic
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher creates a new Kafka event publisher
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("creating producer: %w", err)
	}

	return &Publisher{
		producer: producer,
		topic:    topic,
	}, nil
}

// message wraps an event with metadata for transport
type message struct {
	ID          string           `json:"id,omitempty"`
	AggregateID string           `json:"aggregate_id"`
	EventType   string           `json:"event_type"`
	OccurredAt  time.Time        `json:"occurred_at"`
	Data        interfaces.Event `json:"data"`
}

// Publish publishes an event to Kafka, keyed by aggregate ID so events of one
// aggregate stay ordered within a partition.
func (p *Publisher) Publish(ctx context.Context, event interfaces.Event) error {
	msg := message{
		AggregateID: event.AggregateID(),
		EventType:   event.EventType(),
		OccurredAt:  time.Now(),
		Data:        event,
	}
	if de, ok := event.(domainevents.Event); ok {
		msg.ID = de.EventID().String()
		msg.OccurredAt = de.OccurredAt()
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshaling message: %w", err)
	}

	kafkaMsg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.AggregateID()),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{
				Key:   []byte("event_type"),
				Value: []byte(event.EventType()),
			},
		},
	}

	_, _, err = p.producer.SendMessage(kafkaMsg)
	if err != nil {
		return fmt.Errorf("sending message: %w", err)
	}

	return nil
}

// Close closes the publisher
func (p *Publisher) Close() error {
	return p.producer.Close()
}
