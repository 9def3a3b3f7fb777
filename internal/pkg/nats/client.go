package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/fuelops/uppf-engine/internal/pkg/logger"
)

// Client wraps a NATS connection with JetStream enabled
type Client struct {
	conn *nats.Conn
	js   jetstream.JetStream
}

// StreamConfig describes a JetStream stream owned by this application
type StreamConfig struct {
	Name     string
	Subjects []string
	MaxAge   time.Duration
	MaxMsgs  int64
}

// NewClient connects to the NATS server and initializes JetStream
func NewClient(url string) (*Client, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize JetStream: %w", err)
	}

	return &Client{conn: conn, js: js}, nil
}

// GetConn returns the underlying NATS connection
func (c *Client) GetConn() *nats.Conn {
	return c.conn
}

// JetStream returns the JetStream context
func (c *Client) JetStream() jetstream.JetStream {
	return c.js
}

// EnsureStream creates or updates a JetStream stream
func (c *Client) EnsureStream(ctx context.Context, config StreamConfig) error {
	maxAge := config.MaxAge
	if maxAge == 0 {
		maxAge = 24 * time.Hour
	}
	maxMsgs := config.MaxMsgs
	if maxMsgs == 0 {
		maxMsgs = 1_000_000
	}

	_, err := c.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:      config.Name,
		Subjects:  config.Subjects,
		Retention: jetstream.LimitsPolicy,
		Storage:   jetstream.FileStorage,
		MaxAge:    maxAge,
		MaxMsgs:   maxMsgs,
		Discard:   jetstream.DiscardOld,
	})
	if err != nil {
		return fmt.Errorf("failed to ensure stream %s: %w", config.Name, err)
	}

	logger.Debug("Ensured JetStream stream",
		logger.String("stream", config.Name),
		logger.Strings("subjects", config.Subjects))
	return nil
}

// Publish publishes a message to a JetStream subject
func (c *Client) Publish(ctx context.Context, subject string, data []byte) error {
	if _, err := c.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}
	return nil
}

// Close closes the NATS connection
func (c *Client) Close() {
	if c.conn != nil {
		c.conn.Close()
	}
}
