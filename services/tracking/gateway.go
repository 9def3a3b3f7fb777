package tracking

import (
	"context"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
)

// TrackingGW defines the interface for publishing tracking events
type TrackingGW interface {
	PublishGPSPointRecorded(ctx context.Context, event models.GPSPointRecorded) error
	PublishTraceValidated(ctx context.Context, event models.TraceValidated) error
}
