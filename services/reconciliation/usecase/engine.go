package usecase

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/internal/utils"
)

// Engine performs three-way volume reconciliation. It is a pure function of
// the consignment, its volume records and the configured tolerances:
// identical inputs always produce an identical result, which the audit
// process relies on.
type Engine struct {
	cfg models.ReconciliationConfig
}

// NewEngine creates a reconciliation engine with the given tolerances
func NewEngine(cfg models.ReconciliationConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Reconcile cross-checks the depot, transporter and station measurements.
// Fewer than three records yields a Pending result, a waiting state rather
// than a failure. The timestamp is injected so repeat runs over the same
// inputs are bit-identical.
func (e *Engine) Reconcile(consignment *models.Consignment, records []models.VolumeRecord, version int, reconciledAt time.Time) (*models.ReconciliationResult, error) {
	result := &models.ReconciliationResult{
		ConsignmentID:    consignment.ID,
		Version:          version,
		CorrectedVolumes: []models.CorrectedVolume{},
		Variances:        []models.Variance{},
		ReconciledAt:     reconciledAt,
	}

	bySource := map[models.VolumeSource]models.VolumeRecord{}
	for _, r := range records {
		bySource[r.Source] = r
	}
	if len(bySource) < len(models.AllVolumeSources) {
		result.Status = models.ReconciliationPending
		return result, nil
	}

	corrected := map[models.VolumeSource]float64{}
	for _, source := range models.AllVolumeSources {
		record := bySource[source]
		density := e.cfg.DefaultDensityKgM3
		if record.DensityKgM3 != nil {
			density = *record.DensityKgM3
		}
		litres, err := utils.CorrectVolume(record.Litres, record.TemperatureC, density)
		if err != nil {
			return nil, fmt.Errorf("cannot correct %s volume for consignment %s: %w", source, consignment.ID, err)
		}
		corrected[source] = litres
		result.CorrectedVolumes = append(result.CorrectedVolumes, models.CorrectedVolume{
			Source:          source,
			RawLitres:       record.Litres,
			TemperatureC:    record.TemperatureC,
			CorrectedLitres: litres,
		})
	}

	e.compareVolumes(corrected, result)
	e.checkTemperatures(bySource, result)
	e.checkTiming(consignment, bySource, result)
	e.checkDocumentation(bySource, result)

	allWithinTolerance := result.MaxVariancePct <= e.cfg.VolumeTolerancePct
	if allWithinTolerance {
		result.ReconciledLitres = corrected[models.SourceStation]
	} else {
		result.ReconciledLitres = medianOf(
			corrected[models.SourceDepot],
			corrected[models.SourceTransporter],
			corrected[models.SourceStation])
	}

	switch {
	case result.MaxVariancePct > e.cfg.HardFailCeilingPct || hasCriticalDocumentation(result.Variances):
		result.Status = models.ReconciliationFailed
	case allWithinTolerance:
		result.Status = models.ReconciliationMatched
	default:
		result.Status = models.ReconciliationVarianceDetected
	}

	result.Confidence = utils.Clamp01(1.0 - result.MaxVariancePct/e.cfg.HardFailCeilingPct)
	return result, nil
}

// volumePairs fixes the comparison order so results are reproducible
var volumePairs = [][2]models.VolumeSource{
	{models.SourceDepot, models.SourceTransporter},
	{models.SourceTransporter, models.SourceStation},
	{models.SourceDepot, models.SourceStation},
}

// compareVolumes computes the pairwise variances between corrected volumes,
// as a percentage of the larger value
func (e *Engine) compareVolumes(corrected map[models.VolumeSource]float64, result *models.ReconciliationResult) {
	for _, pair := range volumePairs {
		a, b := corrected[pair[0]], corrected[pair[1]]
		pct := utils.VariancePct(a, b)
		if pct > result.MaxVariancePct {
			result.MaxVariancePct = pct
		}
		if pct == 0 {
			continue
		}
		result.Variances = append(result.Variances, models.Variance{
			Type:     models.VarianceVolume,
			Severity: gradeByToleranceMultiple(pct, e.cfg.VolumeTolerancePct),
			SourceA:  pair[0],
			SourceB:  pair[1],
			Description: fmt.Sprintf("%s corrected %.1fL vs %s corrected %.1fL differ by %.3f%%",
				pair[0], a, pair[1], b, pct),
			ValueA: a,
			ValueB: b,
			Pct:    pct,
		})
	}
}

// checkTemperatures flags reported temperatures implausibly far from the
// expected ambient temperature
func (e *Engine) checkTemperatures(bySource map[models.VolumeSource]models.VolumeRecord, result *models.ReconciliationResult) {
	for _, source := range models.AllVolumeSources {
		record := bySource[source]
		delta := math.Abs(record.TemperatureC - e.cfg.AmbientTempC)
		if delta <= e.cfg.AmbientTempDeltaC {
			continue
		}
		result.Variances = append(result.Variances, models.Variance{
			Type:     models.VarianceTemperature,
			Severity: gradeByToleranceMultiple(delta, e.cfg.AmbientTempDeltaC),
			SourceA:  source,
			Description: fmt.Sprintf("%s reported %.1fC, %.1fC from expected ambient %.1fC (allowed %.1fC)",
				source, record.TemperatureC, delta, e.cfg.AmbientTempC, e.cfg.AmbientTempDeltaC),
			ValueA: record.TemperatureC,
			ValueB: e.cfg.AmbientTempC,
		})
	}
}

// checkTiming flags physically impossible transits: arrival before dispatch,
// station receipt before depot loading, or an implied transit speed no
// tanker can sustain
func (e *Engine) checkTiming(consignment *models.Consignment, bySource map[models.VolumeSource]models.VolumeRecord, result *models.ReconciliationResult) {
	depot := bySource[models.SourceDepot]
	station := bySource[models.SourceStation]

	if station.RecordedAt.Before(depot.RecordedAt) {
		result.Variances = append(result.Variances, models.Variance{
			Type:     models.VarianceTiming,
			Severity: models.SeverityCritical,
			SourceA:  models.SourceStation,
			SourceB:  models.SourceDepot,
			Description: fmt.Sprintf("station receipt %s precedes depot loading %s",
				models.FormatTime(station.RecordedAt), models.FormatTime(depot.RecordedAt)),
		})
		return
	}

	if consignment.ArrivedAt != nil {
		if consignment.ArrivedAt.Before(consignment.DispatchedAt) {
			result.Variances = append(result.Variances, models.Variance{
				Type:     models.VarianceTiming,
				Severity: models.SeverityCritical,
				Description: fmt.Sprintf("arrival %s precedes dispatch %s",
					models.FormatTime(*consignment.ArrivedAt), models.FormatTime(consignment.DispatchedAt)),
			})
			return
		}
		transit := consignment.ArrivedAt.Sub(consignment.DispatchedAt)
		if transit.Hours() > 0 && consignment.PlannedDistanceKm > 0 {
			impliedKmh := consignment.PlannedDistanceKm / transit.Hours()
			if impliedKmh > e.cfg.MaxTransitSpeedKmh {
				result.Variances = append(result.Variances, models.Variance{
					Type:     models.VarianceTiming,
					Severity: models.SeverityHigh,
					Description: fmt.Sprintf("%.0f km transit in %.1f hours implies %.0f km/h, above plausible %.0f km/h",
						consignment.PlannedDistanceKm, transit.Hours(), impliedKmh, e.cfg.MaxTransitSpeedKmh),
					ValueA: impliedKmh,
					ValueB: e.cfg.MaxTransitSpeedKmh,
				})
			}
		}
	}
}

// checkDocumentation flags records missing their waybill reference. A
// missing reference is a hard fail regardless of how well volumes match.
func (e *Engine) checkDocumentation(bySource map[models.VolumeSource]models.VolumeRecord, result *models.ReconciliationResult) {
	for _, source := range models.AllVolumeSources {
		if bySource[source].DocumentRef == "" {
			result.Variances = append(result.Variances, models.Variance{
				Type:        models.VarianceDocumentation,
				Severity:    models.SeverityCritical,
				SourceA:     source,
				Description: fmt.Sprintf("%s record is missing its waybill document reference", source),
			})
		}
	}
}

// gradeByToleranceMultiple maps how far a value exceeds its tolerance to a
// severity: within 1x LOW, up to 2x MEDIUM, up to 4x HIGH, beyond CRITICAL
func gradeByToleranceMultiple(value, tolerance float64) models.Severity {
	if tolerance <= 0 {
		return models.SeverityCritical
	}
	switch multiple := value / tolerance; {
	case multiple <= 1:
		return models.SeverityLow
	case multiple <= 2:
		return models.SeverityMedium
	case multiple <= 4:
		return models.SeverityHigh
	default:
		return models.SeverityCritical
	}
}

func hasCriticalDocumentation(variances []models.Variance) bool {
	for _, v := range variances {
		if v.Type == models.VarianceDocumentation && v.Severity == models.SeverityCritical {
			return true
		}
	}
	return false
}

func medianOf(values ...float64) float64 {
	sort.Float64s(values)
	return values[len(values)/2]
}
