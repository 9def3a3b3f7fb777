package settlement

import (
	"context"

	"github.com/google/uuid"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
)

// SettlementRepo defines the interface for settlement data access
type SettlementRepo interface {
	// WithWindowLock runs fn while holding an exclusive lock on the window,
	// so no claim joins the set mid-run. Returns ErrWindowLocked without
	// blocking when another run holds it.
	WithWindowLock(ctx context.Context, windowID string, fn func() error) error

	// ListSubmittedClaims returns the window's claims frozen for settlement
	ListSubmittedClaims(ctx context.Context, windowID string) ([]models.Claim, error)

	// ListSettledClaims returns the window's claims after settlement
	ListSettledClaims(ctx context.Context, windowID string) ([]models.Claim, error)

	// GetSettlementByWindow returns the window's settlement, or ErrNotFound
	GetSettlementByWindow(ctx context.Context, windowID string) (*models.Settlement, error)

	// SaveSettlement atomically persists the settlement, its per-claim
	// variances and posting instructions, and approves the settled claims
	SaveSettlement(ctx context.Context, settlement *models.Settlement, instructions []models.PostingInstruction) error

	// SaveManualReviewItem queues an escalation for a human
	SaveManualReviewItem(ctx context.Context, item *models.ManualReviewItem) error

	// ListClaimEvidence returns the document references backing a claim
	ListClaimEvidence(ctx context.Context, consignmentID uuid.UUID) ([]string, error)
}
