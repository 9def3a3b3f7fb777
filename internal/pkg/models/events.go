package models

import (
	"time"

	"github.com/google/uuid"
)

// GPSPointRecorded is published after a point is accepted into a trace
type GPSPointRecorded struct {
	ConsignmentID uuid.UUID `json:"consignment_id"`
	Timestamp     time.Time `json:"timestamp"`
	Duplicate     bool      `json:"duplicate"`
}

// TraceValidated is published when the GPS validator completes a trace
type TraceValidated struct {
	ConsignmentID uuid.UUID           `json:"consignment_id"`
	Result        GPSValidationResult `json:"result"`
	ValidatedAt   time.Time           `json:"validated_at"`
}

// VolumeRecorded is published after a volume record upsert. Consumers use
// SourcesPresent to decide whether reconciliation can run.
type VolumeRecorded struct {
	ConsignmentID  uuid.UUID      `json:"consignment_id"`
	Source         VolumeSource   `json:"source"`
	Replaced       bool           `json:"replaced"`
	SourcesPresent []VolumeSource `json:"sources_present"`
	RecordedAt     time.Time      `json:"recorded_at"`
}

// ReconciliationCompleted is published after a reconciliation run
type ReconciliationCompleted struct {
	ConsignmentID uuid.UUID            `json:"consignment_id"`
	Version       int                  `json:"version"`
	Status        ReconciliationStatus `json:"status"`
	CompletedAt   time.Time            `json:"completed_at"`
}

// ClaimCreated is published when the claim calculator produces a claim
type ClaimCreated struct {
	ClaimID       uuid.UUID   `json:"claim_id"`
	ConsignmentID uuid.UUID   `json:"consignment_id"`
	Status        ClaimStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
}

// SettlementCompleted is published after a settlement window run
type SettlementCompleted struct {
	SettlementID uuid.UUID        `json:"settlement_id"`
	WindowID     string           `json:"window_id"`
	Status       SettlementStatus `json:"status"`
	CompletedAt  time.Time        `json:"completed_at"`
}

// ReviewQueued is published when an item lands on the manual-review queue
type ReviewQueued struct {
	ItemID     uuid.UUID `json:"item_id"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Reason     string    `json:"reason"`
	QueuedAt   time.Time `json:"queued_at"`
}
