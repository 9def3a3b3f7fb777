package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/internal/utils"
)

// CalculatorInput bundles everything a claim is derived from. All fields are
// read-only; the calculator never reaches outside this struct.
type CalculatorInput struct {
	Consignment    *models.Consignment
	Validation     *models.GPSValidationResult
	Reconciliation *models.ReconciliationResult
	ThresholdKm    float64
	Tariff         models.TariffRate

	// HistoricalVariancePct is the route's recent mean reconciliation
	// variance, used only for risk scoring
	HistoricalVariancePct float64
}

// Calculator computes claims as a pure function of its input plus
// configuration. Identical inputs always produce an identical claim.
type Calculator struct {
	cfg     models.ClaimsConfig
	ceiling float64
}

// NewCalculator creates a claim calculator
func NewCalculator(cfg models.ClaimsConfig, hardFailCeilingPct float64) *Calculator {
	return &Calculator{cfg: cfg, ceiling: hardFailCeilingPct}
}

// Compute derives the claim. The amount uses the actual GPS distance, never
// the planned distance: a trip that never exceeded the equalisation threshold
// earns nothing regardless of what was claimed on paper.
func (c *Calculator) Compute(in CalculatorInput, now time.Time) *models.Claim {
	kmExcess := in.Validation.TotalDistanceKm - in.ThresholdKm
	if kmExcess < 0 {
		kmExcess = 0
	}

	litres := in.Reconciliation.ReconciledLitres
	ratio := decimal.NewFromInt(1)
	if c.cfg.ReferenceLitres > 0 && litres < c.cfg.ReferenceLitres {
		ratio = decimal.NewFromFloat(litres).Div(decimal.NewFromFloat(c.cfg.ReferenceLitres))
	}

	rate := decimal.NewFromFloat(in.Tariff.RatePerKm)
	amount := decimal.NewFromFloat(kmExcess).Mul(rate).Mul(ratio).Round(4)

	claim := &models.Claim{
		ID:                   uuid.New(),
		ConsignmentID:        in.Consignment.ID,
		RouteID:              in.Consignment.RouteID,
		WindowID:             WindowIDFor(in.Consignment.DispatchedAt),
		KmExcess:             kmExcess,
		LitresMoved:          litres,
		TariffRate:           rate,
		Amount:               amount,
		Currency:             c.currency(in.Tariff),
		GPSConfidence:        in.Validation.Confidence,
		ReconciliationStatus: in.Reconciliation.Status,
		RiskScore:            c.riskScore(in),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	claim.Status, claim.ReviewReason = c.classify(in, amount)
	return claim
}

// classify decides the claim's initial lifecycle state. Failed reconciliation
// or an invalid trace always goes to a human; the amount stays on the claim
// so the reviewer sees what is at stake.
func (c *Calculator) classify(in CalculatorInput, amount decimal.Decimal) (models.ClaimStatus, string) {
	if in.Reconciliation.Status == models.ReconciliationFailed {
		return models.ClaimStatusNeedsReview,
			fmt.Sprintf("reconciliation failed: max variance %.2f%% against %.2f%% ceiling",
				in.Reconciliation.MaxVariancePct, c.ceiling)
	}
	if !in.Validation.IsValid {
		return models.ClaimStatusNeedsReview,
			fmt.Sprintf("gps trace invalid: confidence %.2f, %d anomalies",
				in.Validation.Confidence, len(in.Validation.Anomalies))
	}

	ready := in.Reconciliation.Status == models.ReconciliationMatched ||
		in.Reconciliation.Status == models.ReconciliationVarianceDetected
	if ready && amount.IsPositive() {
		return models.ClaimStatusReadyToSubmit, ""
	}
	return models.ClaimStatusDraft, ""
}

// riskScore blends trace confidence, this run's variance and the route's
// historical variance into a [0,1] prioritization score. It never changes
// the claim amount.
func (c *Calculator) riskScore(in CalculatorInput) float64 {
	variance := in.Reconciliation.MaxVariancePct
	historical := in.HistoricalVariancePct
	if c.ceiling > 0 {
		variance = utils.Clamp01(variance / c.ceiling)
		historical = utils.Clamp01(historical / c.ceiling)
	}

	score := c.cfg.RiskGPSWeight*(1-in.Validation.Confidence) +
		c.cfg.RiskVarianceWeight*variance +
		c.cfg.RiskHistoryWeight*historical
	return utils.Clamp01(score)
}

func (c *Calculator) currency(tariff models.TariffRate) string {
	if tariff.Currency != "" {
		return tariff.Currency
	}
	return c.cfg.Currency
}

// WindowIDFor maps a dispatch time onto its biweekly settlement window:
// days 1-15 are the month's first half, the remainder the second.
func WindowIDFor(dispatchedAt time.Time) string {
	t := dispatchedAt.UTC()
	half := 1
	if t.Day() > 15 {
		half = 2
	}
	return fmt.Sprintf("%04d-%02d-H%d", t.Year(), int(t.Month()), half)
}
