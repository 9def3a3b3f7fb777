package claims

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
)

// ClaimsRepo defines the interface for claim data access
type ClaimsRepo interface {
	GetConsignment(ctx context.Context, id uuid.UUID) (*models.Consignment, error)

	// GetValidationResult returns the stored GPS validator verdict, or a
	// wrapped ErrPending while the trace has not been validated yet
	GetValidationResult(ctx context.Context, consignmentID uuid.UUID) (*models.GPSValidationResult, error)

	// GetLatestReconciliation returns the newest non-superseded
	// reconciliation result, or a wrapped ErrPending
	GetLatestReconciliation(ctx context.Context, consignmentID uuid.UUID) (*models.ReconciliationResult, error)

	// GetEqualisationPoint resolves the route threshold effective at asOf
	GetEqualisationPoint(ctx context.Context, routeID string, asOf time.Time) (*models.EqualisationPoint, error)

	// GetTariffRate resolves the tariff effective at asOf, falling back to
	// the national default row when the route has no tariff of its own
	GetTariffRate(ctx context.Context, routeID string, asOf time.Time) (*models.TariffRate, error)

	// RouteVarianceBaseline returns the route's mean reconciliation variance
	// over recent consignments, for risk scoring
	RouteVarianceBaseline(ctx context.Context, routeID string) (float64, error)

	SaveClaim(ctx context.Context, claim *models.Claim) error
	GetClaimByConsignment(ctx context.Context, consignmentID uuid.UUID) (*models.Claim, error)
	GetClaim(ctx context.Context, claimID uuid.UUID) (*models.Claim, error)

	// UpdateClaimStatus transitions a claim from one status to another,
	// failing if the claim is no longer in the expected state
	UpdateClaimStatus(ctx context.Context, claimID uuid.UUID, from, to models.ClaimStatus, at time.Time) error

	// AppendStatusChange records one entry in the claim's audit trail
	AppendStatusChange(ctx context.Context, change *models.ClaimStatusChange) error
}
