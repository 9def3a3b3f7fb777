package models

import (
	"time"

	"github.com/google/uuid"
)

// ConsignmentStatus represents the lifecycle state of a fuel movement
type ConsignmentStatus string

const (
	ConsignmentStatusDispatched ConsignmentStatus = "dispatched"
	ConsignmentStatusInTransit  ConsignmentStatus = "in_transit"
	ConsignmentStatusArrived    ConsignmentStatus = "arrived"
	ConsignmentStatusReconciled ConsignmentStatus = "reconciled"
	ConsignmentStatusClosed     ConsignmentStatus = "closed"
)

// Consignment represents one fuel movement event from depot to station.
// It is immutable once reconciliation completes.
type Consignment struct {
	ID                uuid.UUID         `json:"id" db:"id"`
	DepotID           uuid.UUID         `json:"depot_id" db:"depot_id"`
	StationID         uuid.UUID         `json:"station_id" db:"station_id"`
	ProductType       string            `json:"product_type" db:"product_type"`
	RouteID           string            `json:"route_id" db:"route_id"`
	PlannedDistanceKm float64           `json:"planned_distance_km" db:"planned_distance_km"`
	Status            ConsignmentStatus `json:"status" db:"status"`
	DispatchedAt      time.Time         `json:"dispatched_at" db:"dispatched_at"`
	ArrivedAt         *time.Time        `json:"arrived_at,omitempty" db:"arrived_at"`
	CreatedAt         time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at" db:"updated_at"`
}

// EqualisationPoint is route-level reference data: the distance below which
// no subsidy is payable. Versioned by effective date, never mutated here.
type EqualisationPoint struct {
	RouteID       string    `json:"route_id" db:"route_id"`
	ThresholdKm   float64   `json:"threshold_km" db:"threshold_km"`
	EffectiveFrom time.Time `json:"effective_from" db:"effective_from"`
}

// TariffRate is the effective-dated subsidy tariff for a route. A row with
// an empty route id is the national default.
type TariffRate struct {
	RouteID       string    `json:"route_id" db:"route_id"`
	RatePerKm     float64   `json:"rate_per_km" db:"rate_per_km"`
	Currency      string    `json:"currency" db:"currency"`
	EffectiveFrom time.Time `json:"effective_from" db:"effective_from"`
}
