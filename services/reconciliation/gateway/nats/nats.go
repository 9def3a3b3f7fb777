package nats

import (
	"context"

	"github.com/fuelops/uppf-engine/internal/pkg/constants"
	natspkg "github.com/fuelops/uppf-engine/internal/pkg/nats"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/services/reconciliation"
)

type reconciliationGW struct {
	natsClient *natspkg.Client
}

// NewReconciliationGW creates a new reconciliation event gateway
func NewReconciliationGW(natsClient *natspkg.Client) reconciliation.ReconciliationGW {
	return &reconciliationGW{natsClient: natsClient}
}

// PublishVolumeRecorded publishes a volume record upsert event
func (g *reconciliationGW) PublishVolumeRecorded(ctx context.Context, event models.VolumeRecorded) error {
	return g.natsClient.PublishJSON(ctx, constants.SubjectVolumeRecorded, event)
}

// PublishReconciliationCompleted publishes a completed reconciliation run
func (g *reconciliationGW) PublishReconciliationCompleted(ctx context.Context, event models.ReconciliationCompleted) error {
	return g.natsClient.PublishJSON(ctx, constants.SubjectReconciliationCompleted, event)
}
