package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
)

// Processor nets a window's claims against the external settlement notice.
// It is a pure function of its inputs plus configuration; persistence and
// external calls live in the use case.
type Processor struct {
	cfg models.SettlementConfig
}

// NewProcessor creates a settlement processor
func NewProcessor(cfg models.SettlementConfig) *Processor {
	return &Processor{cfg: cfg}
}

// Process computes the settlement and its posting instructions. When the net
// does not tie out against the notice, the computed settlement is still
// returned (marked Mismatch) alongside the mismatch error: the local result
// is preserved for review, never discarded or auto-corrected.
func (p *Processor) Process(windowID string, claims []models.Claim, notice models.SettlementNotice,
	settlementID uuid.UUID, finalizedAt time.Time) (*models.Settlement, []models.PostingInstruction, error) {

	adjustments := make(map[uuid.UUID]models.ClaimAdjustment, len(notice.Adjustments))
	for _, adj := range notice.Adjustments {
		adjustments[adj.ClaimID] = adj
	}

	settlement := &models.Settlement{
		ID:           settlementID,
		WindowID:     windowID,
		Penalties:    notice.Penalties,
		Bonuses:      notice.Bonuses,
		Status:       models.SettlementStatusCompleted,
		NoticeRef:    notice.NoticeRef,
		FinalizedAt:  finalizedAt,
		TotalClaimed: decimal.Zero,
		TotalSettled: decimal.Zero,
	}

	var instructions []models.PostingInstruction
	for _, claim := range claims {
		settled := claim.Amount
		reason := ""
		if adj, ok := adjustments[claim.ID]; ok {
			settled = adj.Amount
			reason = adj.Reason
		}

		variance := p.classifyVariance(claim, settled, reason)
		settlement.ClaimIDs = append(settlement.ClaimIDs, claim.ID)
		settlement.ClaimVariances = append(settlement.ClaimVariances, variance)
		settlement.TotalClaimed = settlement.TotalClaimed.Add(claim.Amount)
		settlement.TotalSettled = settlement.TotalSettled.Add(settled)

		instructions = append(instructions, p.claimInstruction(settlementID, claim, settled))
	}

	settlement.NetAmount = settlement.TotalSettled.Sub(notice.Penalties).Add(notice.Bonuses)
	instructions = append(instructions, p.windowInstructions(settlementID, windowID, notice)...)

	if delta := settlement.NetAmount.Sub(notice.TotalAmount).Abs(); delta.GreaterThan(p.tolerance()) {
		settlement.Status = models.SettlementStatusMismatch
		return settlement, instructions, &apperrors.ReconciliationMismatchError{
			WindowID: windowID,
			Computed: settlement.NetAmount.String(),
			Reported: notice.TotalAmount.String(),
			Delta:    delta.String(),
		}
	}

	return settlement, instructions, nil
}

// classifyVariance grades how far the settled amount departed from the claim
func (p *Processor) classifyVariance(claim models.Claim, settled decimal.Decimal, reason string) models.ClaimVariance {
	varianceAmount := settled.Sub(claim.Amount)

	pct := 100.0
	if claim.Amount.IsPositive() {
		ratio, _ := varianceAmount.Abs().Div(claim.Amount).Float64()
		pct = ratio * 100
	} else if varianceAmount.IsZero() {
		pct = 0
	}

	return models.ClaimVariance{
		ClaimID:        claim.ID,
		OriginalAmount: claim.Amount,
		SettledAmount:  settled,
		VarianceAmount: varianceAmount,
		VariancePct:    pct,
		Category:       p.categorize(pct),
		Reason:         reason,
	}
}

func (p *Processor) categorize(pct float64) models.RiskCategory {
	switch {
	case pct < p.cfg.NegligiblePct:
		return models.RiskNegligible
	case pct < p.cfg.MinorPct:
		return models.RiskMinor
	case pct < p.cfg.SignificantPct:
		return models.RiskSignificant
	}
	return models.RiskCritical
}

func (p *Processor) claimInstruction(settlementID uuid.UUID, claim models.Claim, settled decimal.Decimal) models.PostingInstruction {
	claimID := claim.ID
	return models.PostingInstruction{
		SettlementID: settlementID,
		ClaimID:      &claimID,
		AccountCode:  p.cfg.LedgerAccountCode,
		Credit:       settled,
		Description:  fmt.Sprintf("UPPF claim %s, window %s, route %s", claim.ID, claim.WindowID, claim.RouteID),
		IdempotencyKey: fmt.Sprintf("%s:%s:%s",
			settlementID, claim.ID, p.cfg.LedgerAccountCode),
	}
}

// windowInstructions emits the penalty and bonus postings for the window.
// Zero figures produce no posting.
func (p *Processor) windowInstructions(settlementID uuid.UUID, windowID string, notice models.SettlementNotice) []models.PostingInstruction {
	var instructions []models.PostingInstruction
	if !notice.Penalties.IsZero() {
		instructions = append(instructions, models.PostingInstruction{
			SettlementID: settlementID,
			AccountCode:  p.cfg.PenaltyAccountCode,
			Debit:        notice.Penalties,
			Description:  fmt.Sprintf("UPPF penalties, window %s", windowID),
			IdempotencyKey: fmt.Sprintf("%s:window:%s",
				settlementID, p.cfg.PenaltyAccountCode),
		})
	}
	if !notice.Bonuses.IsZero() {
		instructions = append(instructions, models.PostingInstruction{
			SettlementID: settlementID,
			AccountCode:  p.cfg.BonusAccountCode,
			Credit:       notice.Bonuses,
			Description:  fmt.Sprintf("UPPF bonuses, window %s", windowID),
			IdempotencyKey: fmt.Sprintf("%s:window:%s",
				settlementID, p.cfg.BonusAccountCode),
		})
	}
	return instructions
}

func (p *Processor) tolerance() decimal.Decimal {
	return decimal.NewFromFloat(p.cfg.RoundingTolerance)
}
