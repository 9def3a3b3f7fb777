package claims

import (
	"context"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
)

// ClaimsGW defines the interface for claim event publishing
type ClaimsGW interface {
	// PublishClaimCreated announces every computed claim
	PublishClaimCreated(ctx context.Context, event models.ClaimCreated) error

	// PublishClaimReady announces claims that cleared every gate and can be
	// submitted without human review
	PublishClaimReady(ctx context.Context, event models.ClaimCreated) error
}
