package constants

// NATS Subjects
const (
	// Tracking service
	SubjectGPSPointRecorded = "gps.point.recorded"
	SubjectTraceValidated   = "gps.trace.validated"

	// Reconciliation service
	SubjectVolumeRecorded          = "volume.recorded"
	SubjectReconciliationCompleted = "reconciliation.completed"

	// Claims service
	SubjectClaimCreated = "claim.created"
	SubjectClaimReady   = "claim.ready"

	// Settlement service
	SubjectSettlementCompleted = "settlement.completed"
	SubjectLedgerPosting       = "ledger.posting"

	// Manual review escalations
	SubjectReviewQueued = "review.queued"
)

// JetStream stream names
const (
	StreamGPS        = "GPS_STREAM"
	StreamRecon      = "RECON_STREAM"
	StreamClaim      = "CLAIM_STREAM"
	StreamSettlement = "SETTLEMENT_STREAM"
)
