package nats

import (
	"context"

	"github.com/fuelops/uppf-engine/internal/pkg/constants"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	natspkg "github.com/fuelops/uppf-engine/internal/pkg/nats"
	"github.com/fuelops/uppf-engine/services/settlement"
)

type settlementGW struct {
	natsClient *natspkg.Client
}

// NewSettlementGW creates a new settlement gateway
func NewSettlementGW(natsClient *natspkg.Client) settlement.SettlementGW {
	return &settlementGW{natsClient: natsClient}
}

// PublishSettlementCompleted announces a finished settlement run
func (g *settlementGW) PublishSettlementCompleted(ctx context.Context, event models.SettlementCompleted) error {
	return g.natsClient.PublishJSON(ctx, constants.SubjectSettlementCompleted, event)
}

// PublishLedgerInstructions publishes the posting batch for the accounting
// collaborator, which deduplicates on the idempotency keys
func (g *settlementGW) PublishLedgerInstructions(ctx context.Context, instructions []models.PostingInstruction) error {
	return g.natsClient.PublishJSON(ctx, constants.SubjectLedgerPosting, instructions)
}

// PublishReviewQueued announces a manual-review escalation
func (g *settlementGW) PublishReviewQueued(ctx context.Context, event models.ReviewQueued) error {
	return g.natsClient.PublishJSON(ctx, constants.SubjectReviewQueued, event)
}
