package models

import (
	"time"

	"github.com/google/uuid"
)

// ReconciliationStatus is the verdict of a three-way reconciliation run
type ReconciliationStatus string

const (
	ReconciliationPending          ReconciliationStatus = "pending"
	ReconciliationMatched          ReconciliationStatus = "matched"
	ReconciliationVarianceDetected ReconciliationStatus = "variance_detected"
	ReconciliationFailed           ReconciliationStatus = "failed"
)

// VarianceType classifies why two records disagree
type VarianceType string

const (
	VarianceVolume        VarianceType = "volume"
	VarianceTemperature   VarianceType = "temperature"
	VarianceTiming        VarianceType = "timing"
	VarianceDocumentation VarianceType = "documentation"
)

// Variance is one typed discrepancy found during reconciliation
type Variance struct {
	Type        VarianceType `json:"type"`
	Severity    Severity     `json:"severity"`
	SourceA     VolumeSource `json:"source_a"`
	SourceB     VolumeSource `json:"source_b,omitempty"`
	Description string       `json:"description"`
	ValueA      float64      `json:"value_a"`
	ValueB      float64      `json:"value_b"`
	Pct         float64      `json:"pct"` // variance as a percentage of the larger value
}

// CorrectedVolume pairs a source with its temperature-corrected litres
type CorrectedVolume struct {
	Source          VolumeSource `json:"source"`
	RawLitres       float64      `json:"raw_litres"`
	TemperatureC    float64      `json:"temperature_c"`
	CorrectedLitres float64      `json:"corrected_litres"`
}

// ReconciliationResult is the immutable output of one reconciliation run.
// Re-reconciliation after a record upsert writes a new version, never
// overwriting a prior result.
type ReconciliationResult struct {
	ConsignmentID    uuid.UUID            `json:"consignment_id" db:"consignment_id"`
	Version          int                  `json:"version" db:"version"`
	CorrectedVolumes []CorrectedVolume    `json:"corrected_volumes"`
	ReconciledLitres float64              `json:"reconciled_litres" db:"reconciled_litres"`
	MaxVariancePct   float64              `json:"max_variance_pct" db:"max_variance_pct"`
	Variances        []Variance           `json:"variances"`
	Status           ReconciliationStatus `json:"status" db:"status"`
	Confidence       float64              `json:"confidence" db:"confidence"`
	ReconciledAt     time.Time            `json:"reconciled_at" db:"reconciled_at"`
}
