package reconciliation

import (
	"context"

	"github.com/google/uuid"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
)

// ReconciliationUseCase defines the interface for three-way volume
// reconciliation business logic
type ReconciliationUseCase interface {
	// UpsertVolumeRecord stores one source's measurement. Resubmission
	// replaces the prior record and invalidates any existing result.
	UpsertVolumeRecord(ctx context.Context, record *models.VolumeRecord) (replaced bool, err error)

	// Reconcile runs the engine over the consignment's current records and
	// persists a new versioned result.
	Reconcile(ctx context.Context, consignmentID uuid.UUID) (*models.ReconciliationResult, error)

	// GetReconciliation returns the latest valid result. A consignment with
	// fewer than three records, or whose result was invalidated by an
	// upsert, is Pending.
	GetReconciliation(ctx context.Context, consignmentID uuid.UUID) (*models.ReconciliationResult, error)
}
