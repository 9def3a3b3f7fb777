// Package metrics exposes Prometheus counters for the reconciliation and
// claims pipeline.
package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// GPSPointsIngested counts accepted GPS points, including duplicates
	GPSPointsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uppf_gps_points_ingested_total",
		Help: "GPS points received, labelled by outcome (accepted, duplicate, rejected).",
	}, []string{"outcome"})

	// AnomaliesDetected counts trace anomalies by type and severity
	AnomaliesDetected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uppf_gps_anomalies_total",
		Help: "GPS trace anomalies detected, labelled by type and severity.",
	}, []string{"type", "severity"})

	// Reconciliations counts reconciliation runs by resulting status
	Reconciliations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uppf_reconciliations_total",
		Help: "Reconciliation runs, labelled by resulting status.",
	}, []string{"status"})

	// ClaimsCreated counts claims by initial status
	ClaimsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uppf_claims_created_total",
		Help: "Claims created, labelled by initial status.",
	}, []string{"status"})

	// SettlementMismatches counts windows whose netting failed to tie out
	SettlementMismatches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uppf_settlement_mismatches_total",
		Help: "Settlement windows whose net amount did not match the external notice.",
	})

	// ExternalCallFailures counts exhausted external calls by target
	ExternalCallFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uppf_external_call_failures_total",
		Help: "External calls that exhausted their retries, labelled by target.",
	}, []string{"target"})
)

// RegisterEndpoint exposes /metrics on the router
func RegisterEndpoint(e *echo.Echo) {
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
