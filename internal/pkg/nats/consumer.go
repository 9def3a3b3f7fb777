package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/fuelops/uppf-engine/internal/pkg/logger"
)

// JetStreamMessageHandler processes a JetStream message. Returning an error
// NAKs the message so it is redelivered, up to MaxDeliver attempts.
type JetStreamMessageHandler func(msg jetstream.Msg) error

// ConsumerConfig describes a durable JetStream consumer
type ConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	FilterSubject string
	AckWait       time.Duration
	MaxDeliver    int
}

// Consumer is a running durable JetStream consumer
type Consumer struct {
	consumeCtx jetstream.ConsumeContext
}

// NewJetStreamConsumer creates the durable consumer if needed and starts
// consuming messages with explicit acknowledgment.
func NewJetStreamConsumer(ctx context.Context, client *Client, config ConsumerConfig, handler JetStreamMessageHandler) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	ackWait := config.AckWait
	if ackWait == 0 {
		ackWait = 30 * time.Second
	}
	maxDeliver := config.MaxDeliver
	if maxDeliver == 0 {
		maxDeliver = 3
	}

	consumer, err := client.JetStream().CreateOrUpdateConsumer(ctx, config.StreamName, jetstream.ConsumerConfig{
		Durable:       config.ConsumerName,
		FilterSubject: config.FilterSubject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       ackWait,
		MaxDeliver:    maxDeliver,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		ReplayPolicy:  jetstream.ReplayInstantPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer %s on stream %s: %w",
			config.ConsumerName, config.StreamName, err)
	}

	consumeCtx, err := consumer.Consume(func(msg jetstream.Msg) {
		if err := handler(msg); err != nil {
			logger.Error("Error processing JetStream message",
				logger.String("subject", msg.Subject()),
				logger.String("consumer", config.ConsumerName),
				logger.Err(err))
			if nakErr := msg.Nak(); nakErr != nil {
				logger.Error("Failed to NAK message", logger.Err(nakErr))
			}
			return
		}
		if ackErr := msg.Ack(); ackErr != nil {
			logger.Error("Failed to ACK message", logger.Err(ackErr))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming %s: %w", config.ConsumerName, err)
	}

	logger.Info("Started JetStream consumer",
		logger.String("stream", config.StreamName),
		logger.String("consumer", config.ConsumerName),
		logger.String("filter_subject", config.FilterSubject))

	return &Consumer{consumeCtx: consumeCtx}, nil
}

// Stop stops the consumer's message delivery
func (c *Consumer) Stop() {
	if c.consumeCtx != nil {
		c.consumeCtx.Stop()
	}
}
