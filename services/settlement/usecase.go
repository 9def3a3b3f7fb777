package settlement

import (
	"context"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
)

// SettlementUseCase defines the interface for settlement business logic
type SettlementUseCase interface {
	// RunSettlement nets the window's submitted claims against the external
	// notice and produces the ledger posting instructions. A tie-out failure
	// returns the preserved settlement together with the mismatch error.
	RunSettlement(ctx context.Context, windowID string, notice models.SettlementNotice) (*models.Settlement, []models.PostingInstruction, error)

	// GetSettlement returns the finalized settlement for a window
	GetSettlement(ctx context.Context, windowID string) (*models.Settlement, error)

	// BuildRegulatorSubmission assembles the per-window submission document
	BuildRegulatorSubmission(ctx context.Context, windowID string) (*models.RegulatorSubmission, error)
}
