package nats

import (
	"context"

	"github.com/fuelops/uppf-engine/internal/pkg/constants"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	natspkg "github.com/fuelops/uppf-engine/internal/pkg/nats"
	"github.com/fuelops/uppf-engine/services/claims"
)

type claimsGW struct {
	natsClient *natspkg.Client
}

// NewClaimsGW creates a new claims gateway
func NewClaimsGW(natsClient *natspkg.Client) claims.ClaimsGW {
	return &claimsGW{natsClient: natsClient}
}

// PublishClaimCreated announces a computed claim
func (g *claimsGW) PublishClaimCreated(ctx context.Context, event models.ClaimCreated) error {
	return g.natsClient.PublishJSON(ctx, constants.SubjectClaimCreated, event)
}

// PublishClaimReady announces a claim that can be submitted without review
func (g *claimsGW) PublishClaimReady(ctx context.Context, event models.ClaimCreated) error {
	return g.natsClient.PublishJSON(ctx, constants.SubjectClaimReady, event)
}
