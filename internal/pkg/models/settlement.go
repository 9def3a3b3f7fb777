package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementStatus is the lifecycle state of a settlement window run
type SettlementStatus string

const (
	SettlementStatusCompleted SettlementStatus = "completed"
	SettlementStatusMismatch  SettlementStatus = "mismatch"
)

// RiskCategory grades how far a settled amount departed from the claim
type RiskCategory string

const (
	RiskNegligible  RiskCategory = "negligible"
	RiskMinor       RiskCategory = "minor"
	RiskSignificant RiskCategory = "significant"
	RiskCritical    RiskCategory = "critical"
)

// ClaimAdjustment is a regulator-supplied override of one claim's amount
type ClaimAdjustment struct {
	ClaimID uuid.UUID       `json:"claim_id"`
	Amount  decimal.Decimal `json:"amount"`
	Reason  string          `json:"reason"`
}

// SettlementNotice is the externally reported settlement for one window
type SettlementNotice struct {
	WindowID    string            `json:"window_id"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Adjustments []ClaimAdjustment `json:"adjustments"`
	Penalties   decimal.Decimal   `json:"penalties"`
	Bonuses     decimal.Decimal   `json:"bonuses"`
	NoticeRef   string            `json:"notice_ref"`
}

// ClaimVariance records the difference between a claim's original and
// settled amounts
type ClaimVariance struct {
	ClaimID        uuid.UUID       `json:"claim_id" db:"claim_id"`
	OriginalAmount decimal.Decimal `json:"original_amount" db:"original_amount"`
	SettledAmount  decimal.Decimal `json:"settled_amount" db:"settled_amount"`
	VarianceAmount decimal.Decimal `json:"variance_amount" db:"variance_amount"`
	VariancePct    float64         `json:"variance_pct" db:"variance_pct"`
	Category       RiskCategory    `json:"category" db:"category"`
	Reason         string          `json:"reason,omitempty" db:"reason"`
}

// Settlement is the immutable record of one settlement window run
type Settlement struct {
	ID             uuid.UUID        `json:"id" db:"id"`
	WindowID       string           `json:"window_id" db:"window_id"`
	ClaimIDs       []uuid.UUID      `json:"claim_ids"`
	TotalClaimed   decimal.Decimal  `json:"total_claimed" db:"total_claimed"`
	TotalSettled   decimal.Decimal  `json:"total_settled" db:"total_settled"`
	Penalties      decimal.Decimal  `json:"penalties" db:"penalties"`
	Bonuses        decimal.Decimal  `json:"bonuses" db:"bonuses"`
	NetAmount      decimal.Decimal  `json:"net_amount" db:"net_amount"`
	ClaimVariances []ClaimVariance  `json:"claim_variances"`
	Status         SettlementStatus `json:"status" db:"status"`
	NoticeRef      string           `json:"notice_ref" db:"notice_ref"`
	FinalizedAt    time.Time        `json:"finalized_at" db:"finalized_at"`
}

// PostingInstruction is one ledger entry for the external accounting
// collaborator. The idempotency key prevents duplicate posting on retry.
type PostingInstruction struct {
	SettlementID   uuid.UUID       `json:"settlement_id" db:"settlement_id"`
	ClaimID        *uuid.UUID      `json:"claim_id,omitempty" db:"claim_id"`
	AccountCode    string          `json:"account_code" db:"account_code"`
	Debit          decimal.Decimal `json:"debit" db:"debit"`
	Credit         decimal.Decimal `json:"credit" db:"credit"`
	Description    string          `json:"description" db:"description"`
	IdempotencyKey string          `json:"idempotency_key" db:"idempotency_key"`
}

// RegulatorClaimLine is one claim in the regulator submission payload
type RegulatorClaimLine struct {
	ClaimID      uuid.UUID       `json:"claim_id"`
	RouteID      string          `json:"route_id"`
	KmExcess     float64         `json:"km_excess"`
	Litres       float64         `json:"litres"`
	Amount       decimal.Decimal `json:"amount"`
	EvidenceRefs []string        `json:"evidence_refs"`
}

// RegulatorSubmission is the structured document submitted once per window
type RegulatorSubmission struct {
	SchemaVersion string               `json:"schema_version"`
	WindowID      string               `json:"window_id"`
	SettlementID  uuid.UUID            `json:"settlement_id"`
	Lines         []RegulatorClaimLine `json:"lines"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
	GeneratedAt   time.Time            `json:"generated_at"`
}

// ManualReviewItem is an escalation: either a NeedsReview claim or an
// external call that exhausted its retries. The locally computed result
// is preserved, never lost.
type ManualReviewItem struct {
	ID         uuid.UUID `json:"id" db:"id"`
	EntityType string    `json:"entity_type" db:"entity_type"`
	EntityID   string    `json:"entity_id" db:"entity_id"`
	Reason     string    `json:"reason" db:"reason"`
	Detail     string    `json:"detail" db:"detail"`
	QueuedAt   time.Time `json:"queued_at" db:"queued_at"`
}
