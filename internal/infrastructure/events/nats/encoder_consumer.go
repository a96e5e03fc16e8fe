package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	appvideo "github.com/coralstream/catalog/internal/application/video"
	"github.com/coralstream/catalog/internal/domain/video"
	pkgerrors "github.com/coralstream/catalog/pkg/errors"
)

const (
	encoderStatusCompleted = "COMPLETED"
	encoderStatusError     = "ERROR"
)

// encoderMessage is the wire shape of the external encoder's status report.
type encoderMessage struct {
	Status string `json:"status"`
	ID     string `json:"id"`
	Video  struct {
		ResourceID         string `json:"resource_id"`
		EncodedVideoFolder string `json:"encoded_video_folder"`
		FilePath           string `json:"file_path"`
	} `json:"video"`
}

// EncoderStatusConsumer consumes status reports from the external encoder and
// applies them to the matching video aggregate. Reports that cannot be decoded
// or matched are logged and dropped; they never poison the stream.
type EncoderStatusConsumer struct {
	client  *Client
	service *appvideo.Service
	logger  *zap.Logger
	durable string
	subject string
}

// NewEncoderStatusConsumer creates a consumer for encoder status reports
func NewEncoderStatusConsumer(client *Client, service *appvideo.Service, logger *zap.Logger) *EncoderStatusConsumer {
	return &EncoderStatusConsumer{
		client:  client,
		service: service,
		logger:  logger.Named("encoder-consumer"),
		durable: client.config.NATS.DurableName,
		subject: client.config.NATS.EncoderSubject,
	}
}

// Start creates the durable consumer and processes messages until the context
// is cancelled.
func (c *EncoderStatusConsumer) Start(ctx context.Context) error {
	consumer, err := c.client.JetStream().CreateOrUpdateConsumer(ctx, "ENCODER_EVENTS", jetstream.ConsumerConfig{
		Durable:       c.durable,
		FilterSubject: c.subject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       30 * time.Second,
		MaxDeliver:    5,
		MaxAckPending: 100,
	})
	if err != nil {
		return fmt.Errorf("failed to create encoder consumer: %w", err)
	}

	c.logger.Info("encoder status consumer started",
		zap.String("durable", c.durable),
		zap.String("subject", c.subject),
	)

	go c.consumeMessages(ctx, consumer)
	return nil
}

func (c *EncoderStatusConsumer) consumeMessages(ctx context.Context, consumer jetstream.Consumer) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			msgs, err := consumer.Fetch(10, jetstream.FetchMaxWait(5*time.Second))
			if err != nil {
				if err != context.DeadlineExceeded {
					c.logger.Error("failed to fetch messages", zap.Error(err))
					time.Sleep(time.Second)
				}
				continue
			}

			for msg := range msgs.Messages() {
				c.processMessage(ctx, msg)
			}
		}
	}
}

func (c *EncoderStatusConsumer) processMessage(ctx context.Context, msg jetstream.Msg) {
	var report encoderMessage
	if err := json.Unmarshal(msg.Data(), &report); err != nil {
		c.logger.Warn("dropping undecodable encoder message",
			zap.Error(err),
			zap.String("subject", msg.Subject()),
		)
		msg.Ack()
		return
	}

	switch report.Status {
	case encoderStatusCompleted:
		cmd, err := commandFrom(report)
		if err != nil {
			c.logger.Warn("dropping malformed encoder message",
				zap.Error(err),
				zap.String("id", report.ID),
			)
			msg.Ack()
			return
		}

		if err := c.service.UpdateMediaStatus(ctx, cmd); err != nil {
			// A missing video cannot be fixed by redelivery.
			if pkgerrors.IsNotFound(err) {
				c.logger.Warn("dropping encoder report for missing video",
					zap.Error(err),
					zap.String("video_id", cmd.VideoID.String()),
				)
				msg.Ack()
				return
			}
			c.logger.Error("failed to apply encoder status",
				zap.Error(err),
				zap.String("video_id", cmd.VideoID.String()),
				zap.String("checksum", cmd.Checksum),
			)
			msg.Nak()
			return
		}
		msg.Ack()

	case encoderStatusError:
		c.logger.Warn("encoder reported failure",
			zap.String("id", report.ID),
			zap.String("resource_id", report.Video.ResourceID),
		)
		msg.Ack()

	default:
		c.logger.Debug("dropping encoder message with unrecognized status",
			zap.String("status", report.Status),
			zap.String("id", report.ID),
		)
		msg.Ack()
	}
}

func commandFrom(report encoderMessage) (appvideo.UpdateMediaStatusCommand, error) {
	videoID, err := uuid.Parse(report.ID)
	if err != nil {
		return appvideo.UpdateMediaStatusCommand{}, fmt.Errorf("parsing video id %q: %w", report.ID, err)
	}

	return appvideo.UpdateMediaStatusCommand{
		Status:   video.MediaStatusCompleted,
		VideoID:  videoID,
		Checksum: report.Video.ResourceID,
		Folder:   report.Video.EncodedVideoFolder,
		Filename: report.Video.FilePath,
	}, nil
}
