package claims

import (
	"context"

	"github.com/google/uuid"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
)

// ClaimsUseCase defines the interface for claim calculation business logic
type ClaimsUseCase interface {
	// ComputeClaim derives a claim from the consignment's GPS validation and
	// reconciliation outputs. Recomputation replaces an unsubmitted claim.
	ComputeClaim(ctx context.Context, consignmentID uuid.UUID) (*models.Claim, error)

	// GetClaim returns the claim for a consignment
	GetClaim(ctx context.Context, consignmentID uuid.UUID) (*models.Claim, error)

	// SubmitClaim moves a ReadyToSubmit claim into the Submitted state,
	// freezing it for settlement
	SubmitClaim(ctx context.Context, claimID uuid.UUID, actor string) (*models.Claim, error)
}
