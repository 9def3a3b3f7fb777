package reconciliation

import (
	"context"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
)

// ReconciliationGW defines the interface for publishing reconciliation events
type ReconciliationGW interface {
	PublishVolumeRecorded(ctx context.Context, event models.VolumeRecorded) error
	PublishReconciliationCompleted(ctx context.Context, event models.ReconciliationCompleted) error
}
