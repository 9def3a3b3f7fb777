package usecase

import (
	"fmt"
	"sort"
	"time"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/internal/utils"
)

// StopAuthorizer reports whether a coordinate falls inside an approved stop
// for the consignment's route.
type StopAuthorizer func(lat, lng float64) (bool, error)

// Validator analyses a consignment's GPS trace for anomalies and produces a
// confidence-scored verdict. It is a pure pass over the ordered trace, so
// validating after every point and validating once after arrival produce the
// same result.
type Validator struct {
	cfg models.GPSConfig
}

// NewValidator creates a trace validator with the given thresholds
func NewValidator(cfg models.GPSConfig) *Validator {
	return &Validator{cfg: cfg}
}

// Validate runs the full anomaly analysis over a trace. The planned route
// polyline is optional; when present, points far from it are recorded as
// deviations. isApprovedStop resolves detected stop clusters against the
// route's sanctioned rest locations.
func (v *Validator) Validate(points []models.GPSPoint, polyline []utils.GeoPoint, isApprovedStop StopAuthorizer) (*models.GPSValidationResult, error) {
	result := &models.GPSValidationResult{
		Deviations:  []models.Deviation{},
		Anomalies:   []models.Anomaly{},
		ValidatedAt: models.Now(),
	}
	if len(points) > 0 {
		result.ConsignmentID = points[0].ConsignmentID
	}
	result.PointCount = len(points)

	if len(points) < 2 {
		result.Anomalies = append(result.Anomalies, models.Anomaly{
			Type:        models.AnomalyInsufficientData,
			Severity:    models.SeverityCritical,
			Description: fmt.Sprintf("trace has %d point(s), at least 2 required", len(points)),
			StartedAt:   result.ValidatedAt,
			EndedAt:     result.ValidatedAt,
		})
		result.Confidence = 0
		result.IsValid = false
		return result, nil
	}

	ordered, wasSorted := sortChronologically(points)
	if wasSorted {
		result.Anomalies = append(result.Anomalies, models.Anomaly{
			Type:        models.AnomalyOutOfOrder,
			Severity:    models.SeverityMedium,
			Description: "points arrived out of chronological order and were re-sorted",
			StartedAt:   ordered[0].Timestamp,
			EndedAt:     ordered[len(ordered)-1].Timestamp,
		})
	}

	v.analyseSegments(ordered, result)
	v.detectBacktracking(ordered, result)
	if err := v.detectUnauthorizedStops(ordered, result, isApprovedStop); err != nil {
		return nil, err
	}
	v.recordDeviations(ordered, polyline, result)

	confidence := 1.0
	for _, a := range result.Anomalies {
		confidence -= a.Severity.ConfidencePenalty()
	}
	result.Confidence = utils.Clamp01(confidence)
	result.IsValid = result.Confidence >= v.cfg.MinConfidence && !result.HasCriticalAnomaly()

	return result, nil
}

// anomalyGeohashPrecision sizes the geohash cell stamped on located
// anomalies; precision 7 is roughly a 150 m cell, matching the stop radius
const anomalyGeohashPrecision = 7

// locationHash returns the geohash cell for an anomaly position
func locationHash(p models.GPSPoint) string {
	return utils.EncodeGeohash(geoPoint(p), anomalyGeohashPrecision)
}

// sortChronologically returns the trace in timestamp order and whether any
// reordering was needed. The input slice is never mutated.
func sortChronologically(points []models.GPSPoint) ([]models.GPSPoint, bool) {
	sorted := sort.SliceIsSorted(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})
	ordered := make([]models.GPSPoint, len(points))
	copy(ordered, points)
	if !sorted {
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Timestamp.Before(ordered[j].Timestamp)
		})
	}
	return ordered, !sorted
}

// analyseSegments accumulates distance and speed statistics and flags
// speed violations and signal-loss gaps between consecutive points.
func (v *Validator) analyseSegments(points []models.GPSPoint, result *models.GPSValidationResult) {
	gapThreshold := time.Duration(v.cfg.SignalLossGapMin) * time.Minute

	var totalKm, maxSpeed float64
	for i := 1; i < len(points); i++ {
		prev, curr := points[i-1], points[i]
		segmentKm := utils.HaversineDistanceKm(geoPoint(prev), geoPoint(curr))
		totalKm += segmentKm

		elapsed := curr.Timestamp.Sub(prev.Timestamp)
		if elapsed <= 0 {
			// duplicate timestamp: zero-duration segment, no speed
			continue
		}

		if elapsed > gapThreshold {
			gapMin := elapsed.Minutes()
			severity := models.SeverityMedium
			if gapMin > 2*float64(v.cfg.SignalLossGapMin) {
				severity = models.SeverityHigh
			}
			result.Anomalies = append(result.Anomalies, models.Anomaly{
				Type:         models.AnomalySignalLoss,
				Severity:     severity,
				Description:  fmt.Sprintf("no points for %.0f minutes (threshold %d)", gapMin, v.cfg.SignalLossGapMin),
				Latitude:     prev.Latitude,
				Longitude:    prev.Longitude,
				LocationHash: locationHash(prev),
				StartedAt:    prev.Timestamp,
				EndedAt:      curr.Timestamp,
				Value:        gapMin,
			})
		}

		impliedKmh := segmentKm / elapsed.Hours()
		if impliedKmh > maxSpeed {
			maxSpeed = impliedKmh
		}
		if impliedKmh > v.cfg.MaxSpeedKmh {
			result.Anomalies = append(result.Anomalies, models.Anomaly{
				Type:         models.AnomalySpeedViolation,
				Severity:     speedSeverity(impliedKmh, v.cfg.MaxSpeedKmh),
				Description:  fmt.Sprintf("implied speed %.1f km/h exceeds ceiling %.0f km/h", impliedKmh, v.cfg.MaxSpeedKmh),
				Latitude:     curr.Latitude,
				Longitude:    curr.Longitude,
				LocationHash: locationHash(curr),
				StartedAt:    prev.Timestamp,
				EndedAt:      curr.Timestamp,
				Value:        impliedKmh,
			})
		}
	}

	result.TotalDistanceKm = totalKm
	result.MaxSpeedKmh = maxSpeed

	duration := points[len(points)-1].Timestamp.Sub(points[0].Timestamp)
	if duration > 0 {
		result.AverageSpeedKmh = totalKm / duration.Hours()
	}
}

// speedSeverity grades a violation by how far it exceeds the ceiling. A
// speed past double the ceiling cannot be the vehicle moving and is treated
// as evidence of spoofed coordinates.
func speedSeverity(impliedKmh, ceilingKmh float64) models.Severity {
	switch {
	case impliedKmh > 2*ceilingKmh:
		return models.SeverityCritical
	case impliedKmh > 1.5*ceilingKmh:
		return models.SeverityHigh
	default:
		return models.SeverityMedium
	}
}

// backtrackDepartureFactor scales the epsilon into the distance the vehicle
// must have moved away before a return counts as backtracking rather than a
// stationary period.
const backtrackDepartureFactor = 5.0

// detectBacktracking flags points that return close to a much earlier
// position after having genuinely departed from it, which indicates spoofing
// or a parked tracker replaying positions. Staying put is not backtracking;
// that is handled by stop detection.
func (v *Validator) detectBacktracking(points []models.GPSPoint, result *models.GPSValidationResult) {
	minGap := time.Duration(v.cfg.BacktrackMinGapMin) * time.Minute
	departureKm := backtrackDepartureFactor * v.cfg.BacktrackEpsilonKm

	for i := 2; i < len(points); i++ {
		lookback := i - v.cfg.BacktrackWindow
		if lookback < 0 {
			lookback = 0
		}
		// skip the immediate predecessor: being near it is just slow driving
		for j := lookback; j < i-1; j++ {
			elapsed := points[i].Timestamp.Sub(points[j].Timestamp)
			if elapsed < minGap {
				continue
			}
			if utils.HaversineDistanceKm(geoPoint(points[i]), geoPoint(points[j])) <= v.cfg.BacktrackEpsilonKm &&
				departedBetween(points, j, i, departureKm) {
				result.Anomalies = append(result.Anomalies, models.Anomaly{
					Type:         models.AnomalyBacktracking,
					Severity:     models.SeverityHigh,
					Description:  fmt.Sprintf("returned within %.2f km of a position from %.0f minutes earlier", v.cfg.BacktrackEpsilonKm, elapsed.Minutes()),
					Latitude:     points[i].Latitude,
					Longitude:    points[i].Longitude,
					LocationHash: locationHash(points[i]),
					StartedAt:    points[j].Timestamp,
					EndedAt:      points[i].Timestamp,
					Value:        elapsed.Minutes(),
				})
				break
			}
		}
	}
}

// departedBetween reports whether any point strictly between indices j and i
// moved further than departureKm from points[j]
func departedBetween(points []models.GPSPoint, j, i int, departureKm float64) bool {
	for k := j + 1; k < i; k++ {
		if utils.HaversineDistanceKm(geoPoint(points[k]), geoPoint(points[j])) > departureKm {
			return true
		}
	}
	return false
}

// detectUnauthorizedStops finds clusters of points that stay within the stop
// radius for longer than the stop-duration threshold and checks each cluster
// against the route's approved stop list.
func (v *Validator) detectUnauthorizedStops(points []models.GPSPoint, result *models.GPSValidationResult, isApprovedStop StopAuthorizer) error {
	radiusKm := v.cfg.StopRadiusM / 1000.0
	minDuration := time.Duration(v.cfg.StopDurationMin) * time.Minute

	i := 0
	for i < len(points) {
		anchor := points[i]
		j := i
		for j+1 < len(points) && utils.HaversineDistanceKm(geoPoint(anchor), geoPoint(points[j+1])) <= radiusKm {
			j++
		}

		dwell := points[j].Timestamp.Sub(anchor.Timestamp)
		if j > i && dwell >= minDuration {
			approved := false
			if isApprovedStop != nil {
				var err error
				approved, err = isApprovedStop(anchor.Latitude, anchor.Longitude)
				if err != nil {
					return fmt.Errorf("failed to resolve approved stops: %w", err)
				}
			}
			if !approved {
				severity := models.SeverityMedium
				if dwell.Minutes() > 2*float64(v.cfg.StopDurationMin) {
					severity = models.SeverityHigh
				}
				result.Anomalies = append(result.Anomalies, models.Anomaly{
					Type:         models.AnomalyUnauthorizedStop,
					Severity:     severity,
					Description:  fmt.Sprintf("stationary for %.0f minutes at an unapproved location (threshold %d)", dwell.Minutes(), v.cfg.StopDurationMin),
					Latitude:     anchor.Latitude,
					Longitude:    anchor.Longitude,
					LocationHash: locationHash(anchor),
					StartedAt:    anchor.Timestamp,
					EndedAt:      points[j].Timestamp,
					Value:        dwell.Minutes(),
				})
			}
			i = j + 1
			continue
		}
		i++
	}
	return nil
}

// recordDeviations notes points further from the planned polyline than the
// route-deviation threshold. Deviations inform reviewers but carry no
// confidence penalty on their own.
func (v *Validator) recordDeviations(points []models.GPSPoint, polyline []utils.GeoPoint, result *models.GPSValidationResult) {
	if len(polyline) == 0 {
		return
	}
	for _, p := range points {
		d := utils.DistanceToPolylineKm(geoPoint(p), polyline)
		if d > v.cfg.RouteDeviationKm {
			result.Deviations = append(result.Deviations, models.Deviation{
				Latitude:   p.Latitude,
				Longitude:  p.Longitude,
				DistanceKm: d,
				Timestamp:  p.Timestamp,
			})
		}
	}
}

func geoPoint(p models.GPSPoint) utils.GeoPoint {
	return utils.GeoPoint{Latitude: p.Latitude, Longitude: p.Longitude}
}
