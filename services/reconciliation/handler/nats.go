package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/fuelops/uppf-engine/internal/pkg/constants"
	"github.com/fuelops/uppf-engine/internal/pkg/logger"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	natspkg "github.com/fuelops/uppf-engine/internal/pkg/nats"
	"github.com/fuelops/uppf-engine/services/reconciliation"
)

// NatsHandler consumes the events that trigger reconciliation runs
type NatsHandler struct {
	reconciliationUC reconciliation.ReconciliationUseCase
	natsClient       *natspkg.Client
	consumers        []*natspkg.Consumer
}

// NewNatsHandler creates a new reconciliation NATS handler
func NewNatsHandler(reconciliationUC reconciliation.ReconciliationUseCase, natsClient *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		reconciliationUC: reconciliationUC,
		natsClient:       natsClient,
	}
}

// InitConsumers starts the durable consumers for the reconciliation service
func (h *NatsHandler) InitConsumers(ctx context.Context) error {
	consumer, err := natspkg.NewJetStreamConsumer(ctx, h.natsClient, natspkg.ConsumerConfig{
		StreamName:    constants.StreamRecon,
		ConsumerName:  "reconciliation-volume-recorded",
		FilterSubject: constants.SubjectVolumeRecorded,
	}, h.handleVolumeRecorded)
	if err != nil {
		return fmt.Errorf("failed to start volume recorded consumer: %w", err)
	}
	h.consumers = append(h.consumers, consumer)
	return nil
}

// Stop stops all running consumers
func (h *NatsHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
}

// handleVolumeRecorded triggers a reconciliation run once the third source's
// record lands. Earlier records leave the consignment Pending.
func (h *NatsHandler) handleVolumeRecorded(msg jetstream.Msg) error {
	var event models.VolumeRecorded
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		// malformed payloads can never succeed on redelivery
		logger.Error("Dropping malformed volume recorded event", logger.Err(err))
		return nil
	}

	if len(event.SourcesPresent) < len(models.AllVolumeSources) {
		logger.Debug("Awaiting remaining volume records",
			logger.String("consignment_id", event.ConsignmentID.String()),
			logger.Int("sources_present", len(event.SourcesPresent)))
		return nil
	}

	result, err := h.reconciliationUC.Reconcile(context.Background(), event.ConsignmentID)
	if err != nil {
		return fmt.Errorf("reconciliation run failed for %s: %w", event.ConsignmentID, err)
	}

	logger.Info("Event-triggered reconciliation finished",
		logger.String("consignment_id", event.ConsignmentID.String()),
		logger.String("status", string(result.Status)))
	return nil
}
