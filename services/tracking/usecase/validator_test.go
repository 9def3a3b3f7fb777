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

func testGPSConfig() models.GPSConfig {
	return models.GPSConfig{
		MaxSpeedKmh:         120,
		SignalLossGapMin:    30,
		StopRadiusM:         200,
		StopDurationMin:     45,
		BacktrackEpsilonKm:  0.2,
		BacktrackWindow:     50,
		BacktrackMinGapMin:  20,
		MinConfidence:       0.5,
		RouteDeviationKm:    5.0,
		ApprovedStopRadiusM: 500,
	}
}

// point builds a trace point offset north of Accra. Each 0.09 degrees of
// latitude is roughly 10 km.
func point(consignmentID uuid.UUID, latOffset float64, at time.Time) models.GPSPoint {
	return models.GPSPoint{
		ConsignmentID: consignmentID,
		Latitude:      5.6 + latOffset,
		Longitude:     -0.2,
		Timestamp:     at,
	}
}

func noStops(lat, lng float64) (bool, error) {
	return false, nil
}

func anomalyTypes(result *models.GPSValidationResult) []models.AnomalyType {
	types := make([]models.AnomalyType, 0, len(result.Anomalies))
	for _, a := range result.Anomalies {
		types = append(types, a.Type)
	}
	return types
}

func TestValidateInsufficientData(t *testing.T) {
	v := NewValidator(testGPSConfig())
	id := uuid.New()
	start := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	for _, points := range [][]models.GPSPoint{
		nil,
		{point(id, 0, start)},
	} {
		result, err := v.Validate(points, nil, noStops)
		require.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, 0.0, result.Confidence)
		require.Len(t, result.Anomalies, 1)
		assert.Equal(t, models.AnomalyInsufficientData, result.Anomalies[0].Type)
	}
}

func TestValidateCleanTrace(t *testing.T) {
	v := NewValidator(testGPSConfig())
	id := uuid.New()
	start := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	// steady 60 km/h northbound, a point every 10 minutes
	points := make([]models.GPSPoint, 6)
	for i := range points {
		points[i] = point(id, float64(i)*0.09, start.Add(time.Duration(i)*10*time.Minute))
	}

	result, err := v.Validate(points, nil, noStops)
	require.NoError(t, err)

	assert.Empty(t, result.Anomalies)
	assert.Equal(t, 1.0, result.Confidence)
	assert.True(t, result.IsValid)
	assert.InDelta(t, 50.0, result.TotalDistanceKm, 1.0)
	assert.InDelta(t, 60.0, result.AverageSpeedKmh, 2.0)
	assert.Equal(t, 6, result.PointCount)
}

func TestValidateSignalLossFiftyMinuteGap(t *testing.T) {
	v := NewValidator(testGPSConfig())
	id := uuid.New()
	start := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	points := []models.GPSPoint{
		point(id, 0, start),
		point(id, 0.09, start.Add(10*time.Minute)),
		// 50 minutes of silence while the vehicle keeps moving
		point(id, 0.18, start.Add(60*time.Minute)),
		point(id, 0.27, start.Add(70*time.Minute)),
	}

	result, err := v.Validate(points, nil, noStops)
	require.NoError(t, err)

	require.Len(t, result.Anomalies, 1)
	anomaly := result.Anomalies[0]
	assert.Equal(t, models.AnomalySignalLoss, anomaly.Type)
	assert.Equal(t, models.SeverityMedium, anomaly.Severity)
	assert.InDelta(t, 50.0, anomaly.Value, 0.1)
	assert.InDelta(t, 0.92, result.Confidence, 1e-9)
	assert.True(t, result.IsValid)
}

func TestValidateSpeedViolationSeverities(t *testing.T) {
	v := NewValidator(testGPSConfig())
	id := uuid.New()
	start := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	t.Run("moderate excess is medium", func(t *testing.T) {
		points := []models.GPSPoint{
			point(id, 0, start),
			// ~21.7 km in 10 minutes, about 130 km/h
			point(id, 0.195, start.Add(10*time.Minute)),
		}
		result, err := v.Validate(points, nil, noStops)
		require.NoError(t, err)
		require.Len(t, result.Anomalies, 1)
		assert.Equal(t, models.AnomalySpeedViolation, result.Anomalies[0].Type)
		assert.Equal(t, models.SeverityMedium, result.Anomalies[0].Severity)
		assert.True(t, result.IsValid)
	})

	t.Run("teleporting jump is critical and fails validation", func(t *testing.T) {
		points := []models.GPSPoint{
			point(id, 0, start),
			// ~40 km in 10 minutes, about 240 km/h
			point(id, 0.36, start.Add(10*time.Minute)),
		}
		result, err := v.Validate(points, nil, noStops)
		require.NoError(t, err)
		require.Len(t, result.Anomalies, 1)
		assert.Equal(t, models.SeverityCritical, result.Anomalies[0].Severity)
		assert.False(t, result.IsValid)
	})
}

func TestValidateBacktracking(t *testing.T) {
	v := NewValidator(testGPSConfig())
	id := uuid.New()
	start := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	points := []models.GPSPoint{
		point(id, 0, start),
		point(id, 0.09, start.Add(10*time.Minute)),
		point(id, 0.18, start.Add(20*time.Minute)),
		// back to the exact starting position at plausible road speed
		point(id, 0, start.Add(40*time.Minute)),
	}

	result, err := v.Validate(points, nil, noStops)
	require.NoError(t, err)

	require.Len(t, result.Anomalies, 1)
	assert.Contains(t, anomalyTypes(result), models.AnomalyBacktracking)
	for _, a := range result.Anomalies {
		if a.Type == models.AnomalyBacktracking {
			assert.Equal(t, models.SeverityHigh, a.Severity)
		}
	}
}

func TestValidateStationaryClusterIsNotBacktracking(t *testing.T) {
	v := NewValidator(testGPSConfig())
	id := uuid.New()
	start := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	// parked for 50 minutes: an unauthorized stop, but never backtracking
	points := make([]models.GPSPoint, 6)
	for i := range points {
		points[i] = point(id, 0, start.Add(time.Duration(i)*10*time.Minute))
	}

	result, err := v.Validate(points, nil, noStops)
	require.NoError(t, err)

	types := anomalyTypes(result)
	assert.Contains(t, types, models.AnomalyUnauthorizedStop)
	assert.NotContains(t, types, models.AnomalyBacktracking)
}

func TestValidateStopAtApprovedLocation(t *testing.T) {
	v := NewValidator(testGPSConfig())
	id := uuid.New()
	start := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	points := make([]models.GPSPoint, 6)
	for i := range points {
		points[i] = point(id, 0, start.Add(time.Duration(i)*10*time.Minute))
	}

	approved := func(lat, lng float64) (bool, error) { return true, nil }

	result, err := v.Validate(points, nil, approved)
	require.NoError(t, err)

	assert.NotContains(t, anomalyTypes(result), models.AnomalyUnauthorizedStop)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestValidateOutOfOrderPoints(t *testing.T) {
	v := NewValidator(testGPSConfig())
	id := uuid.New()
	start := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	points := []models.GPSPoint{
		point(id, 0, start),
		point(id, 0.18, start.Add(20*time.Minute)), // arrived before its predecessor
		point(id, 0.09, start.Add(10*time.Minute)),
		point(id, 0.27, start.Add(30*time.Minute)),
	}

	result, err := v.Validate(points, nil, noStops)
	require.NoError(t, err)

	require.Len(t, result.Anomalies, 1)
	assert.Equal(t, models.AnomalyOutOfOrder, result.Anomalies[0].Type)
	assert.Equal(t, models.SeverityMedium, result.Anomalies[0].Severity)
	// once re-sorted the trace itself is clean
	assert.InDelta(t, 30.0, result.TotalDistanceKm, 1.0)
}

func TestValidateDuplicateTimestamps(t *testing.T) {
	v := NewValidator(testGPSConfig())
	id := uuid.New()
	start := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	points := []models.GPSPoint{
		point(id, 0, start),
		point(id, 0.09, start.Add(10*time.Minute)),
		// identical timestamp: zero-duration segment, no speed computed
		point(id, 0.091, start.Add(10*time.Minute)),
		point(id, 0.18, start.Add(20*time.Minute)),
	}

	result, err := v.Validate(points, nil, noStops)
	require.NoError(t, err)

	assert.NotContains(t, anomalyTypes(result), models.AnomalySpeedViolation)
	assert.True(t, result.IsValid)
}

func TestValidateDeviationsFromPlannedRoute(t *testing.T) {
	cfg := testGPSConfig()
	v := NewValidator(cfg)
	id := uuid.New()
	start := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	points := []models.GPSPoint{
		point(id, 0, start),
		point(id, 0.09, start.Add(10*time.Minute)),
	}
	// planned route is far east of the actual trace
	polyline := []utils.GeoPoint{
		{Latitude: 5.6, Longitude: 0.5},
		{Latitude: 5.69, Longitude: 0.5},
	}

	result, err := v.Validate(points, polyline, noStops)
	require.NoError(t, err)

	assert.Len(t, result.Deviations, 2)
	// deviations inform reviewers but do not reduce confidence
	assert.Equal(t, 1.0, result.Confidence)
}

func TestValidateIsDeterministic(t *testing.T) {
	v := NewValidator(testGPSConfig())
	id := uuid.New()
	start := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	points := []models.GPSPoint{
		point(id, 0, start),
		point(id, 0.09, start.Add(10*time.Minute)),
		point(id, 0.18, start.Add(60*time.Minute)),
		point(id, 0.27, start.Add(70*time.Minute)),
	}

	first, err := v.Validate(points, nil, noStops)
	require.NoError(t, err)
	second, err := v.Validate(points, nil, noStops)
	require.NoError(t, err)

	assert.Equal(t, first.TotalDistanceKm, second.TotalDistanceKm)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.IsValid, second.IsValid)
	assert.Equal(t, anomalyTypes(first), anomalyTypes(second))
}

func TestValidateAnomaliesCarryLocationHash(t *testing.T) {
	v := NewValidator(testGPSConfig())
	id := uuid.New()
	start := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)

	// a 10 km jump in one minute plus a 50 minute gap produce located anomalies
	points := []models.GPSPoint{
		point(id, 0, start),
		point(id, 0.09, start.Add(time.Minute)),
		point(id, 0.18, start.Add(51*time.Minute)),
	}

	result, err := v.Validate(points, nil, noStops)
	require.NoError(t, err)
	require.NotEmpty(t, result.Anomalies)

	for _, a := range result.Anomalies {
		require.Len(t, a.LocationHash, anomalyGeohashPrecision, "anomaly %s", a.Type)
		cell := utils.DecodeGeohash(a.LocationHash)
		assert.InDelta(t, a.Latitude, cell.Latitude, 0.01)
		assert.InDelta(t, a.Longitude, cell.Longitude, 0.01)
	}
}
