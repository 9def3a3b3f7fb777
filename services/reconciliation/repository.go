package reconciliation

import (
	"context"

	"github.com/google/uuid"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
)

// ReconciliationRepo defines the interface for reconciliation data access
type ReconciliationRepo interface {
	// Volume records; unique per (consignment_id, source)
	UpsertVolumeRecord(ctx context.Context, record *models.VolumeRecord) (replaced bool, err error)
	GetVolumeRecords(ctx context.Context, consignmentID uuid.UUID) ([]models.VolumeRecord, error)

	// Consignment reference data owned by the tracking service
	GetConsignment(ctx context.Context, id uuid.UUID) (*models.Consignment, error)

	// Results are append-only and versioned; an upsert supersedes all
	// existing versions until the next run
	SaveResult(ctx context.Context, result *models.ReconciliationResult) error
	GetLatestResult(ctx context.Context, consignmentID uuid.UUID) (*models.ReconciliationResult, error)
	NextVersion(ctx context.Context, consignmentID uuid.UUID) (int, error)
	SupersedeResults(ctx context.Context, consignmentID uuid.UUID) error
}
