package models

import (
	"time"

	"github.com/google/uuid"
)

// GPSPoint represents one position report from a tracker device.
// A consignment's trace is the ordered, append-only set of points
// between dispatch and arrival.
type GPSPoint struct {
	ConsignmentID uuid.UUID `json:"consignment_id" db:"consignment_id"`
	Latitude      float64   `json:"latitude" db:"latitude"`
	Longitude     float64   `json:"longitude" db:"longitude"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
	SpeedKmh      *float64  `json:"speed_kmh,omitempty" db:"speed_kmh"`
	Heading       *float64  `json:"heading,omitempty" db:"heading"`
}

// Severity grades anomalies and variances for confidence scoring
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ConfidencePenalty returns the confidence deduction for one finding
// of this severity.
func (s Severity) ConfidencePenalty() float64 {
	switch s {
	case SeverityLow:
		return 0.02
	case SeverityMedium:
		return 0.08
	case SeverityHigh:
		return 0.2
	case SeverityCritical:
		return 0.4
	}
	return 0
}

// AnomalyType classifies trace anomalies detected by the GPS validator
type AnomalyType string

const (
	AnomalyInsufficientData AnomalyType = "insufficient_data"
	AnomalySpeedViolation   AnomalyType = "speed_violation"
	AnomalySignalLoss       AnomalyType = "signal_loss"
	AnomalyBacktracking     AnomalyType = "backtracking"
	AnomalyUnauthorizedStop AnomalyType = "unauthorized_stop"
	AnomalyOutOfOrder       AnomalyType = "out_of_order"
)

// Anomaly is one suspicious finding in a GPS trace
type Anomaly struct {
	Type         AnomalyType `json:"type"`
	Severity     Severity    `json:"severity"`
	Description  string      `json:"description"`
	Latitude     float64     `json:"latitude,omitempty"`
	Longitude    float64     `json:"longitude,omitempty"`
	LocationHash string      `json:"location_hash,omitempty"` // geohash cell, groups nearby incidents for review tooling
	StartedAt    time.Time   `json:"started_at"`
	EndedAt      time.Time   `json:"ended_at"`
	Value        float64     `json:"value,omitempty"` // e.g. implied speed, gap minutes, stop minutes
}

// Deviation is a departure from the planned route polyline
type Deviation struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	DistanceKm float64   `json:"distance_km"` // distance from the planned route
	Timestamp  time.Time `json:"timestamp"`
}

// GPSValidationResult is the GPS validator's verdict for one consignment
type GPSValidationResult struct {
	ConsignmentID   uuid.UUID   `json:"consignment_id"`
	TotalDistanceKm float64     `json:"total_distance_km"`
	AverageSpeedKmh float64     `json:"average_speed_kmh"`
	MaxSpeedKmh     float64     `json:"max_speed_kmh"`
	PointCount      int         `json:"point_count"`
	Deviations      []Deviation `json:"deviations"`
	Anomalies       []Anomaly   `json:"anomalies"`
	Confidence      float64     `json:"confidence"`
	IsValid         bool        `json:"is_valid"`
	ValidatedAt     time.Time   `json:"validated_at"`
}

// HasCriticalAnomaly reports whether any anomaly is graded critical
func (r *GPSValidationResult) HasCriticalAnomaly() bool {
	for _, a := range r.Anomalies {
		if a.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// ApprovedStop is a sanctioned rest location on a route
type ApprovedStop struct {
	ID        uuid.UUID `json:"id" db:"id"`
	RouteID   string    `json:"route_id" db:"route_id"`
	Name      string    `json:"name" db:"name"`
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	RadiusM   float64   `json:"radius_m" db:"radius_m"`
}
