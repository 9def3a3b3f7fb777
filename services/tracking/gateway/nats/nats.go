package nats

import (
	"context"

	"github.com/fuelops/uppf-engine/internal/pkg/constants"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	natspkg "github.com/fuelops/uppf-engine/internal/pkg/nats"
	"github.com/fuelops/uppf-engine/services/tracking"
)

type trackingGW struct {
	natsClient *natspkg.Client
}

// NewTrackingGW creates a new tracking event gateway
func NewTrackingGW(natsClient *natspkg.Client) tracking.TrackingGW {
	return &trackingGW{natsClient: natsClient}
}

// PublishGPSPointRecorded publishes a point-accepted event
func (g *trackingGW) PublishGPSPointRecorded(ctx context.Context, event models.GPSPointRecorded) error {
	return g.natsClient.PublishJSON(ctx, constants.SubjectGPSPointRecorded, event)
}

// PublishTraceValidated publishes the validator's verdict for a consignment
func (g *trackingGW) PublishTraceValidated(ctx context.Context, event models.TraceValidated) error {
	return g.natsClient.PublishJSON(ctx, constants.SubjectTraceValidated, event)
}
