package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
)

// TrackingUseCase defines the interface for consignment tracking business logic
type TrackingUseCase interface {
	// Consignment lifecycle
	CreateConsignment(ctx context.Context, consignment *models.Consignment) error
	GetConsignment(ctx context.Context, id uuid.UUID) (*models.Consignment, error)
	MarkArrival(ctx context.Context, id uuid.UUID, arrivedAt time.Time) (*models.GPSValidationResult, error)

	// GPS trace operations
	IngestPoint(ctx context.Context, point *models.GPSPoint) (duplicate bool, err error)
	ValidateTrace(ctx context.Context, consignmentID uuid.UUID) (*models.GPSValidationResult, error)
	GetValidation(ctx context.Context, consignmentID uuid.UUID) (*models.GPSValidationResult, error)
}
