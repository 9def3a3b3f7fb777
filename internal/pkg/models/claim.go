package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClaimStatus is the lifecycle state of a subsidy claim
type ClaimStatus string

const (
	ClaimStatusDraft         ClaimStatus = "draft"
	ClaimStatusNeedsReview   ClaimStatus = "needs_review"
	ClaimStatusReadyToSubmit ClaimStatus = "ready_to_submit"
	ClaimStatusSubmitted     ClaimStatus = "submitted"
	ClaimStatusApproved      ClaimStatus = "approved"
	ClaimStatusPaid          ClaimStatus = "paid"
	ClaimStatusRejected      ClaimStatus = "rejected"
)

// Claim is one subsidy claim computed from a consignment's GPS validation
// and reconciliation outputs. Amounts are decimal because settlement
// netting must tie out to the cent.
type Claim struct {
	ID                   uuid.UUID       `json:"id" db:"id"`
	ConsignmentID        uuid.UUID       `json:"consignment_id" db:"consignment_id"`
	RouteID              string          `json:"route_id" db:"route_id"`
	WindowID             string          `json:"window_id" db:"window_id"`
	KmExcess             float64         `json:"km_excess" db:"km_excess"`
	LitresMoved          float64         `json:"litres_moved" db:"litres_moved"`
	TariffRate           decimal.Decimal `json:"tariff_rate" db:"tariff_rate"`
	Amount               decimal.Decimal `json:"amount" db:"amount"`
	Currency             string          `json:"currency" db:"currency"`
	GPSConfidence        float64         `json:"gps_confidence" db:"gps_confidence"`
	ReconciliationStatus ReconciliationStatus `json:"reconciliation_status" db:"reconciliation_status"`
	RiskScore            float64         `json:"risk_score" db:"risk_score"`
	ReviewReason         string          `json:"review_reason,omitempty" db:"review_reason"`
	Status               ClaimStatus     `json:"status" db:"status"`
	CreatedAt            time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at" db:"updated_at"`
}

// ClaimStatusChange is one append-only entry in a claim's audit trail
type ClaimStatusChange struct {
	ClaimID   uuid.UUID   `json:"claim_id" db:"claim_id"`
	From      ClaimStatus `json:"from" db:"from_status"`
	To        ClaimStatus `json:"to" db:"to_status"`
	Actor     string      `json:"actor" db:"actor"`
	Reason    string      `json:"reason,omitempty" db:"reason"`
	ChangedAt time.Time   `json:"changed_at" db:"changed_at"`
}
