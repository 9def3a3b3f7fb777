package usecase

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/internal/utils"
)

func testReconConfig() models.ReconciliationConfig {
	return models.ReconciliationConfig{
		VolumeTolerancePct: 0.5,
		HardFailCeilingPct: 5.0,
		ReferenceTempC:     15.0,
		AmbientTempC:       27.0,
		AmbientTempDeltaC:  10.0,
		MaxTransitSpeedKmh: 110.0,
		DefaultDensityKgM3: 830.0,
	}
}

func testConsignment(id uuid.UUID) *models.Consignment {
	dispatched := time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC)
	arrived := dispatched.Add(9 * time.Hour)
	return &models.Consignment{
		ID:                id,
		RouteID:           "TEMA-KUMASI-01",
		PlannedDistanceKm: 713.4,
		DispatchedAt:      dispatched,
		ArrivedAt:         &arrived,
	}
}

func record(id uuid.UUID, source models.VolumeSource, litres, tempC float64, recordedAt time.Time) models.VolumeRecord {
	return models.VolumeRecord{
		ConsignmentID: id,
		Source:        source,
		Litres:        litres,
		TemperatureC:  tempC,
		DocumentRef:   "WB-2026-000" + string(source[0]),
		RecordedAt:    recordedAt,
	}
}

func TestReconcilePendingUntilThreeRecords(t *testing.T) {
	engine := NewEngine(testReconConfig())
	id := uuid.New()
	consignment := testConsignment(id)
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	records := []models.VolumeRecord{
		record(id, models.SourceDepot, 36000, 30, consignment.DispatchedAt),
		record(id, models.SourceTransporter, 35850, 28, consignment.DispatchedAt.Add(8*time.Hour)),
	}

	result, err := engine.Reconcile(consignment, records, 1, at)
	require.NoError(t, err)
	assert.Equal(t, models.ReconciliationPending, result.Status)
	assert.Empty(t, result.Variances)
}

func TestReconcileMatchedThreeWay(t *testing.T) {
	engine := NewEngine(testReconConfig())
	id := uuid.New()
	consignment := testConsignment(id)
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	records := []models.VolumeRecord{
		record(id, models.SourceDepot, 36000, 30, consignment.DispatchedAt),
		record(id, models.SourceTransporter, 35850, 28, consignment.DispatchedAt.Add(8*time.Hour)),
		record(id, models.SourceStation, 35800, 27, consignment.DispatchedAt.Add(9*time.Hour)),
	}

	result, err := engine.Reconcile(consignment, records, 1, at)
	require.NoError(t, err)

	assert.Equal(t, models.ReconciliationMatched, result.Status)
	assert.Less(t, result.MaxVariancePct, 0.5)

	// matched consignments settle on the station's corrected receipt
	stationCorrected, err := utils.CorrectVolume(35800, 27, 830)
	require.NoError(t, err)
	assert.InDelta(t, stationCorrected, result.ReconciledLitres, 1e-9)
	assert.Greater(t, result.Confidence, 0.9)
	assert.Len(t, result.CorrectedVolumes, 3)
}

func TestReconcileFailsAboveHardCeiling(t *testing.T) {
	engine := NewEngine(testReconConfig())
	id := uuid.New()
	consignment := testConsignment(id)
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	// station receives 6% less than the depot loaded, all at reference temp
	records := []models.VolumeRecord{
		record(id, models.SourceDepot, 36000, 15, consignment.DispatchedAt),
		record(id, models.SourceTransporter, 36000, 15, consignment.DispatchedAt.Add(8*time.Hour)),
		record(id, models.SourceStation, 33840, 15, consignment.DispatchedAt.Add(9*time.Hour)),
	}

	result, err := engine.Reconcile(consignment, records, 1, at)
	require.NoError(t, err)

	assert.Equal(t, models.ReconciliationFailed, result.Status)
	assert.InDelta(t, 6.0, result.MaxVariancePct, 0.01)
	// the outlier is rejected in favour of the median
	assert.InDelta(t, 36000.0, result.ReconciledLitres, 1e-9)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestReconcileVarianceDetectedUsesMedian(t *testing.T) {
	engine := NewEngine(testReconConfig())
	id := uuid.New()
	consignment := testConsignment(id)
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	records := []models.VolumeRecord{
		record(id, models.SourceDepot, 36000, 15, consignment.DispatchedAt),
		record(id, models.SourceTransporter, 36000, 15, consignment.DispatchedAt.Add(8*time.Hour)),
		record(id, models.SourceStation, 35000, 15, consignment.DispatchedAt.Add(9*time.Hour)),
	}

	result, err := engine.Reconcile(consignment, records, 1, at)
	require.NoError(t, err)

	assert.Equal(t, models.ReconciliationVarianceDetected, result.Status)
	assert.InDelta(t, 36000.0, result.ReconciledLitres, 1e-9)
	assert.Greater(t, result.MaxVariancePct, 0.5)
	assert.LessOrEqual(t, result.MaxVariancePct, 5.0)
}

func TestReconcileMissingWaybillIsHardFail(t *testing.T) {
	engine := NewEngine(testReconConfig())
	id := uuid.New()
	consignment := testConsignment(id)
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	records := []models.VolumeRecord{
		record(id, models.SourceDepot, 36000, 15, consignment.DispatchedAt),
		record(id, models.SourceTransporter, 36000, 15, consignment.DispatchedAt.Add(8*time.Hour)),
		record(id, models.SourceStation, 36000, 15, consignment.DispatchedAt.Add(9*time.Hour)),
	}
	records[1].DocumentRef = ""

	result, err := engine.Reconcile(consignment, records, 1, at)
	require.NoError(t, err)

	// volumes agree exactly, but a missing waybill still fails the run
	assert.Equal(t, models.ReconciliationFailed, result.Status)
	require.NotEmpty(t, result.Variances)
	found := false
	for _, v := range result.Variances {
		if v.Type == models.VarianceDocumentation {
			found = true
			assert.Equal(t, models.SeverityCritical, v.Severity)
			assert.Equal(t, models.SourceTransporter, v.SourceA)
		}
	}
	assert.True(t, found)
}

func TestReconcileFlagsImplausibleTemperature(t *testing.T) {
	engine := NewEngine(testReconConfig())
	id := uuid.New()
	consignment := testConsignment(id)
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	records := []models.VolumeRecord{
		record(id, models.SourceDepot, 36000, 30, consignment.DispatchedAt),
		record(id, models.SourceTransporter, 35900, 28, consignment.DispatchedAt.Add(8*time.Hour)),
		record(id, models.SourceStation, 35850, 45, consignment.DispatchedAt.Add(9*time.Hour)),
	}

	result, err := engine.Reconcile(consignment, records, 1, at)
	require.NoError(t, err)

	found := false
	for _, v := range result.Variances {
		if v.Type == models.VarianceTemperature {
			found = true
			assert.Equal(t, models.SeverityMedium, v.Severity)
			assert.Equal(t, models.SourceStation, v.SourceA)
		}
	}
	assert.True(t, found, "expected a temperature variance for 45C against 27C ambient")
}

func TestReconcileFlagsStationReceiptBeforeDepotLoading(t *testing.T) {
	engine := NewEngine(testReconConfig())
	id := uuid.New()
	consignment := testConsignment(id)
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	records := []models.VolumeRecord{
		record(id, models.SourceDepot, 36000, 15, consignment.DispatchedAt),
		record(id, models.SourceTransporter, 36000, 15, consignment.DispatchedAt.Add(8*time.Hour)),
		record(id, models.SourceStation, 36000, 15, consignment.DispatchedAt.Add(-1*time.Hour)),
	}

	result, err := engine.Reconcile(consignment, records, 1, at)
	require.NoError(t, err)

	found := false
	for _, v := range result.Variances {
		if v.Type == models.VarianceTiming {
			found = true
			assert.Equal(t, models.SeverityCritical, v.Severity)
		}
	}
	assert.True(t, found, "expected a timing variance for receipt before loading")
}

func TestReconcileRejectsOutOfRangeTemperature(t *testing.T) {
	engine := NewEngine(testReconConfig())
	id := uuid.New()
	consignment := testConsignment(id)
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	records := []models.VolumeRecord{
		record(id, models.SourceDepot, 36000, 75, consignment.DispatchedAt),
		record(id, models.SourceTransporter, 36000, 15, consignment.DispatchedAt.Add(8*time.Hour)),
		record(id, models.SourceStation, 36000, 15, consignment.DispatchedAt.Add(9*time.Hour)),
	}

	_, err := engine.Reconcile(consignment, records, 1, at)
	require.Error(t, err)

	var rangeErr *utils.TemperatureRangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestReconcileIsPure(t *testing.T) {
	engine := NewEngine(testReconConfig())
	id := uuid.New()
	consignment := testConsignment(id)
	at := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	records := []models.VolumeRecord{
		record(id, models.SourceDepot, 36000, 30, consignment.DispatchedAt),
		record(id, models.SourceTransporter, 35850, 28, consignment.DispatchedAt.Add(8*time.Hour)),
		record(id, models.SourceStation, 35800, 27, consignment.DispatchedAt.Add(9*time.Hour)),
	}

	first, err := engine.Reconcile(consignment, records, 3, at)
	require.NoError(t, err)
	second, err := engine.Reconcile(consignment, records, 3, at)
	require.NoError(t, err)

	// audit reproducibility: identical inputs, identical result
	assert.Equal(t, first, second)
}
