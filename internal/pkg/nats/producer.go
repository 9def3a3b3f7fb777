package nats

import (
	"context"
	"encoding/json"
	"fmt"
)

// PublishJSON marshals payload and publishes it to a JetStream subject
func (c *Client) PublishJSON(ctx context.Context, subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", subject, err)
	}
	return c.Publish(ctx, subject, data)
}
