package models

import (
	"time"

	"github.com/google/uuid"
)

// VolumeSource tags which party produced a volume record
type VolumeSource string

const (
	SourceDepot       VolumeSource = "depot"
	SourceTransporter VolumeSource = "transporter"
	SourceStation     VolumeSource = "station"
)

// AllVolumeSources lists the three records required before reconciliation
var AllVolumeSources = []VolumeSource{SourceDepot, SourceTransporter, SourceStation}

// ValidVolumeSource reports whether s is one of the three known sources
func ValidVolumeSource(s string) bool {
	switch VolumeSource(s) {
	case SourceDepot, SourceTransporter, SourceStation:
		return true
	}
	return false
}

// VolumeRecord is one independently submitted volume measurement for a
// consignment. Each source submits exactly once; resubmission replaces the
// prior record and invalidates any existing reconciliation result.
type VolumeRecord struct {
	ConsignmentID uuid.UUID    `json:"consignment_id" db:"consignment_id"`
	Source        VolumeSource `json:"source" db:"source"`
	Litres        float64      `json:"litres" db:"litres"`
	TemperatureC  float64      `json:"temperature_c" db:"temperature_c"`
	DensityKgM3   *float64     `json:"density_kg_m3,omitempty" db:"density_kg_m3"`
	DocumentRef   string       `json:"document_ref" db:"document_ref"`
	RecordedAt    time.Time    `json:"recorded_at" db:"recorded_at"`
	SubmittedAt   time.Time    `json:"submitted_at" db:"submitted_at"`
}
