package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/constants"
	"github.com/fuelops/uppf-engine/internal/pkg/logger"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	natspkg "github.com/fuelops/uppf-engine/internal/pkg/nats"
	"github.com/fuelops/uppf-engine/services/claims"
)

// NatsHandler consumes the events that trigger claim computation: a claim is
// derivable once both the reconciliation result and the GPS validation exist,
// so either event arriving last completes the pair.
type NatsHandler struct {
	claimsUC   claims.ClaimsUseCase
	natsClient *natspkg.Client
	consumers  []*natspkg.Consumer
}

// NewNatsHandler creates a new claims NATS handler
func NewNatsHandler(claimsUC claims.ClaimsUseCase, natsClient *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		claimsUC:   claimsUC,
		natsClient: natsClient,
	}
}

// InitConsumers starts the durable consumers for the claims service
func (h *NatsHandler) InitConsumers(ctx context.Context) error {
	reconConsumer, err := natspkg.NewJetStreamConsumer(ctx, h.natsClient, natspkg.ConsumerConfig{
		StreamName:    constants.StreamRecon,
		ConsumerName:  "claims-reconciliation-completed",
		FilterSubject: constants.SubjectReconciliationCompleted,
	}, h.handleReconciliationCompleted)
	if err != nil {
		return fmt.Errorf("failed to start reconciliation completed consumer: %w", err)
	}
	h.consumers = append(h.consumers, reconConsumer)

	traceConsumer, err := natspkg.NewJetStreamConsumer(ctx, h.natsClient, natspkg.ConsumerConfig{
		StreamName:    constants.StreamGPS,
		ConsumerName:  "claims-trace-validated",
		FilterSubject: constants.SubjectTraceValidated,
	}, h.handleTraceValidated)
	if err != nil {
		return fmt.Errorf("failed to start trace validated consumer: %w", err)
	}
	h.consumers = append(h.consumers, traceConsumer)
	return nil
}

// Stop stops all running consumers
func (h *NatsHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
}

func (h *NatsHandler) handleReconciliationCompleted(msg jetstream.Msg) error {
	var event models.ReconciliationCompleted
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		// malformed payloads can never succeed on redelivery
		logger.Error("Dropping malformed reconciliation completed event", logger.Err(err))
		return nil
	}
	return h.compute(event.ConsignmentID.String(), event.ConsignmentID)
}

func (h *NatsHandler) handleTraceValidated(msg jetstream.Msg) error {
	var event models.TraceValidated
	if err := json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error("Dropping malformed trace validated event", logger.Err(err))
		return nil
	}
	return h.compute(event.ConsignmentID.String(), event.ConsignmentID)
}

func (h *NatsHandler) compute(id string, consignmentID uuid.UUID) error {
	claim, err := h.claimsUC.ComputeClaim(context.Background(), consignmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrPending) {
			// the other upstream verdict has not landed yet
			logger.Debug("Claim inputs incomplete", logger.String("consignment_id", id))
			return nil
		}
		if apperrors.IsInputError(err) {
			// e.g. the claim is already submitted; redelivery cannot help
			logger.Warn("Skipping claim computation", logger.String("consignment_id", id), logger.Err(err))
			return nil
		}
		return fmt.Errorf("claim computation failed for %s: %w", id, err)
	}

	logger.Info("Event-triggered claim computed",
		logger.String("consignment_id", id),
		logger.String("claim_id", claim.ID.String()),
		logger.String("status", string(claim.Status)))
	return nil
}
