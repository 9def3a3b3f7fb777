package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
)

func testClaimsConfig() models.ClaimsConfig {
	return models.ClaimsConfig{
		DefaultTariffRate:  0.15,
		ReferenceLitres:    36000,
		Currency:           "GHS",
		RiskGPSWeight:      0.5,
		RiskVarianceWeight: 0.3,
		RiskHistoryWeight:  0.2,
	}
}

func newTestCalculator() *Calculator {
	return NewCalculator(testClaimsConfig(), 5.0)
}

func testInput(id uuid.UUID) CalculatorInput {
	dispatched := time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC)
	arrived := dispatched.Add(9 * time.Hour)
	return CalculatorInput{
		Consignment: &models.Consignment{
			ID:                id,
			RouteID:           "TEMA-KUMASI-01",
			PlannedDistanceKm: 713.4,
			DispatchedAt:      dispatched,
			ArrivedAt:         &arrived,
		},
		Validation: &models.GPSValidationResult{
			ConsignmentID:   id,
			TotalDistanceKm: 713.4,
			Confidence:      1.0,
			IsValid:         true,
		},
		Reconciliation: &models.ReconciliationResult{
			ConsignmentID:    id,
			Version:          1,
			ReconciledLitres: 36000,
			MaxVariancePct:   0.14,
			Status:           models.ReconciliationMatched,
			Confidence:       0.97,
		},
		ThresholdKm: 450,
		Tariff: models.TariffRate{
			RouteID:   "TEMA-KUMASI-01",
			RatePerKm: 0.15,
			Currency:  "GHS",
		},
	}
}

func TestComputeWorkedExample(t *testing.T) {
	calc := newTestCalculator()
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)

	claim := calc.Compute(testInput(uuid.New()), now)

	// 713.4 km actual - 450 km threshold = 263.4 km excess
	// 263.4 * 0.15 * (36000/36000) = 39.51
	assert.InDelta(t, 263.4, claim.KmExcess, 1e-9)
	assert.True(t, claim.Amount.Equal(decimal.RequireFromString("39.51")),
		"amount was %s", claim.Amount)
	assert.Equal(t, models.ClaimStatusReadyToSubmit, claim.Status)
	assert.Equal(t, "GHS", claim.Currency)
	assert.Equal(t, "2026-03-H1", claim.WindowID)
	assert.Empty(t, claim.ReviewReason)
}

func TestComputePartialLoadScalesDown(t *testing.T) {
	calc := newTestCalculator()
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)

	in := testInput(uuid.New())
	in.Reconciliation.ReconciledLitres = 18000 // half a reference load

	claim := calc.Compute(in, now)
	assert.True(t, claim.Amount.Equal(decimal.RequireFromString("19.755")),
		"amount was %s", claim.Amount)
}

func TestComputeOverloadedTruckCappedAtFullLoad(t *testing.T) {
	calc := newTestCalculator()
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)

	full := testInput(uuid.New())
	over := testInput(uuid.New())
	over.Reconciliation.ReconciledLitres = 40000

	fullClaim := calc.Compute(full, now)
	overClaim := calc.Compute(over, now)

	// no over-claiming for overloaded trucks
	assert.True(t, overClaim.Amount.Equal(fullClaim.Amount),
		"overloaded %s vs full %s", overClaim.Amount, fullClaim.Amount)
}

func TestComputeKmExcessNeverNegative(t *testing.T) {
	calc := newTestCalculator()
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)

	in := testInput(uuid.New())
	in.Validation.TotalDistanceKm = 300 // below the 450 km threshold

	claim := calc.Compute(in, now)
	assert.Equal(t, 0.0, claim.KmExcess)
	assert.True(t, claim.Amount.IsZero())
	assert.Equal(t, models.ClaimStatusDraft, claim.Status)
}

func TestComputeMonotonicInKmExcess(t *testing.T) {
	calc := newTestCalculator()
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)

	previous := decimal.NewFromInt(-1)
	for _, distance := range []float64{400, 450, 500, 600, 713.4, 900} {
		in := testInput(uuid.New())
		in.Validation.TotalDistanceKm = distance

		claim := calc.Compute(in, now)
		require.True(t, claim.Amount.GreaterThanOrEqual(previous),
			"amount decreased at distance %.1f: %s < %s", distance, claim.Amount, previous)
		previous = claim.Amount
	}
}

func TestComputeFailedReconciliationNeedsReview(t *testing.T) {
	calc := newTestCalculator()
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)

	in := testInput(uuid.New())
	in.Reconciliation.Status = models.ReconciliationFailed
	in.Reconciliation.MaxVariancePct = 6.0

	claim := calc.Compute(in, now)
	assert.Equal(t, models.ClaimStatusNeedsReview, claim.Status)
	assert.NotEmpty(t, claim.ReviewReason)
	// the amount stays on the claim for the reviewer, never silently zeroed
	assert.True(t, claim.Amount.IsPositive())
}

func TestComputeInvalidTraceNeedsReview(t *testing.T) {
	calc := newTestCalculator()
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)

	in := testInput(uuid.New())
	in.Validation.IsValid = false
	in.Validation.Confidence = 0.3

	claim := calc.Compute(in, now)
	assert.Equal(t, models.ClaimStatusNeedsReview, claim.Status)
	assert.NotEmpty(t, claim.ReviewReason)
}

func TestRiskScoreBlendsWeightedInputs(t *testing.T) {
	calc := newTestCalculator()
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)

	in := testInput(uuid.New())
	in.Validation.Confidence = 0.9
	in.Reconciliation.MaxVariancePct = 2.5
	in.HistoricalVariancePct = 1.0

	claim := calc.Compute(in, now)
	// 0.5*(1-0.9) + 0.3*(2.5/5) + 0.2*(1.0/5)
	assert.InDelta(t, 0.24, claim.RiskScore, 1e-9)
}

func TestComputeIsDeterministic(t *testing.T) {
	calc := newTestCalculator()
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	in := testInput(uuid.New())

	first := calc.Compute(in, now)
	second := calc.Compute(in, now)

	second.ID = first.ID // only the generated id may differ
	assert.Equal(t, first, second)
}

func TestWindowIDFor(t *testing.T) {
	assert.Equal(t, "2026-03-H1", WindowIDFor(time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-03-H1", WindowIDFor(time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2026-03-H2", WindowIDFor(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-12-H2", WindowIDFor(time.Date(2026, 12, 31, 12, 0, 0, 0, time.UTC)))
}
