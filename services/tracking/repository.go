package tracking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/internal/utils"
)

// TrackingRepo defines the interface for tracking data access
type TrackingRepo interface {
	// Consignments (postgres)
	CreateConsignment(ctx context.Context, consignment *models.Consignment) error
	GetConsignment(ctx context.Context, id uuid.UUID) (*models.Consignment, error)
	UpdateConsignmentStatus(ctx context.Context, id uuid.UUID, status models.ConsignmentStatus, arrivedAt *time.Time) error

	// GPS trace (redis sorted set, archived to postgres on arrival)
	AppendPoint(ctx context.Context, point *models.GPSPoint) (duplicate bool, err error)
	GetTrace(ctx context.Context, consignmentID uuid.UUID) ([]models.GPSPoint, error)
	ArchiveTrace(ctx context.Context, consignmentID uuid.UUID, points []models.GPSPoint) error

	// Route reference data
	GetRoutePolyline(ctx context.Context, routeID string) ([]utils.GeoPoint, error)
	IsNearApprovedStop(ctx context.Context, routeID string, lat, lng, radiusM float64) (bool, error)

	// Validation results (postgres)
	SaveValidationResult(ctx context.Context, result *models.GPSValidationResult) error
	GetValidationResult(ctx context.Context, consignmentID uuid.UUID) (*models.GPSValidationResult, error)
}
