package settlement

import (
	"context"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
)

// SettlementGW defines the interface for settlement event publishing
type SettlementGW interface {
	PublishSettlementCompleted(ctx context.Context, event models.SettlementCompleted) error

	// PublishLedgerInstructions hands the posting instructions to the
	// accounting collaborator's queue
	PublishLedgerInstructions(ctx context.Context, instructions []models.PostingInstruction) error

	PublishReviewQueued(ctx context.Context, event models.ReviewQueued) error
}

// LedgerGW posts instructions to the external accounting service. Calls are
// idempotent on the instruction keys and retried with backoff; exhaustion
// surfaces an ExternalFailureError for escalation.
type LedgerGW interface {
	PostInstructions(ctx context.Context, instructions []models.PostingInstruction) error
}
