package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/coralstream/catalog/internal/config"
)

// Client wraps NATS and JetStream connections
type Client struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	logger *zap.Logger
	config *config.Config
}

// NewClient creates a new NATS client with JetStream
func NewClient(cfg *config.Config, logger *zap.Logger) (*Client, func(), error) {
	opts := []nats.Option{
		nats.Name(cfg.NATS.ClientID),
		nats.MaxReconnects(cfg.NATS.MaxReconnect),
		nats.ReconnectWait(cfg.NATS.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			logger.Error("NATS async error",
				zap.Error(err),
				zap.String("subject", sub.Subject),
			)
		}),
	}

	nc, err := nats.Connect(cfg.NATS.URL, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	client := &Client{
		nc:     nc,
		js:     js,
		logger: logger.Named("nats"),
		config: cfg,
	}

	if err := client.initializeStreams(context.Background()); err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("failed to initialize streams: %w", err)
	}

	cleanup := func() {
		if err := nc.Drain(); err != nil {
			logger.Error("failed to drain NATS connection", zap.Error(err))
		}
		nc.Close()
	}

	logger.Info("NATS client initialized",
		zap.String("url", cfg.NATS.URL),
		zap.String("client_id", cfg.NATS.ClientID),
	)

	return client, cleanup, nil
}

// initializeStreams creates the necessary JetStream streams
func (c *Client) initializeStreams(ctx context.Context) error {
	// Outbound catalog domain events
	catalogStream := jetstream.StreamConfig{
		Name:        "CATALOG_EVENTS",
		Description: "Stream for catalog domain events",
		Subjects: []string{
			"videos.>",
		},
		Retention:    jetstream.LimitsPolicy,
		MaxAge:       30 * 24 * time.Hour,
		MaxConsumers: -1,
		Replicas:     1,
		Storage:      jetstream.FileStorage,
		Discard:      jetstream.DiscardOld,
		MaxMsgs:      -1,
		MaxBytes:     -1,
	}

	if _, err := c.js.CreateOrUpdateStream(ctx, catalogStream); err != nil {
		return fmt.Errorf("failed to create catalog stream: %w", err)
	}

	// Inbound status reports from the external encoder
	encoderStream := jetstream.StreamConfig{
		Name:        "ENCODER_EVENTS",
		Description: "Stream for encoder status reports",
		Subjects: []string{
			"encoder.>",
		},
		Retention:    jetstream.LimitsPolicy,
		MaxAge:       7 * 24 * time.Hour,
		MaxConsumers: -1,
		Replicas:     1,
		Storage:      jetstream.FileStorage,
		Discard:      jetstream.DiscardOld,
		MaxMsgs:      -1,
		MaxBytes:     -1,
	}

	if _, err := c.js.CreateOrUpdateStream(ctx, encoderStream); err != nil {
		return fmt.Errorf("failed to create encoder stream: %w", err)
	}

	c.logger.Info("JetStream streams initialized")
	return nil
}

// Connection returns the underlying NATS connection
func (c *Client) Connection() *nats.Conn {
	return c.nc
}

// JetStream returns the JetStream context
func (c *Client) JetStream() jetstream.JetStream {
	return c.js
}

// IsConnected checks if the client is connected
func (c *Client) IsConnected() bool {
	return c.nc.IsConnected()
}

// Health checks the health of the NATS connection
func (c *Client) Health() error {
	if !c.IsConnected() {
		return fmt.Errorf("NATS client is not connected")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	info, err := c.js.AccountInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to get JetStream account info: %w", err)
	}

	c.logger.Debug("NATS health check passed",
		zap.Int("streams", info.Streams),
		zap.Int("consumers", info.Consumers),
	)

	return nil
}

// Close closes the NATS connection
func (c *Client) Close() error {
	if c.nc != nil {
		c.nc.Close()
	}
	return nil
}
