package constants

// Redis key formats
const (
	// Tracking service
	KeyConsignmentTrace  = "consignment:trace:%s"  // Format: consignment:trace:{consignment_id}, sorted set scored by unix nanos
	KeyConsignmentPoints = "consignment:points:%s" // Format: consignment:points:{consignment_id}, set of seen timestamps
	KeyApprovedStopsGeo  = "route:stops:geo:%s"    // Format: route:stops:geo:{route_id}, geo set of approved stops

	// Reconciliation service
	KeyReconciliationLock = "recon:lock:%s" // Format: recon:lock:{consignment_id}

	// Settlement service
	KeySettlementWindowLock = "settlement:window:lock:%s" // Format: settlement:window:lock:{window_id}
)
