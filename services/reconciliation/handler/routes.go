package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fuelops/uppf-engine/internal/pkg/middleware"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/services/reconciliation"
	httpHandler "github.com/fuelops/uppf-engine/services/reconciliation/handler/http"
)

// Handler combines all handlers for the reconciliation service
type Handler struct {
	reconciliationHTTP *httpHandler.ReconciliationHandler
	reconciliationNATS *NatsHandler
	cfg                *models.Config
}

// NewHandler creates a new combined reconciliation handler
func NewHandler(reconciliationUC reconciliation.ReconciliationUseCase, natsHandler *NatsHandler, cfg *models.Config) *Handler {
	return &Handler{
		reconciliationHTTP: httpHandler.NewReconciliationHandler(reconciliationUC),
		reconciliationNATS: natsHandler,
		cfg:                cfg,
	}
}

// RegisterRoutes registers all reconciliation routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// depots, transporters and stations submit through the API key surface
	ingest := e.Group("", middleware.ValidateAPIKey(h.cfg.Server.APIKey))
	ingest.POST("/consignments/:id/volume-records/:source", h.reconciliationHTTP.SubmitVolumeRecord)

	// operators read results and can force a re-run
	operator := e.Group("", middleware.ValidateJWT(h.cfg.JWT))
	operator.GET("/consignments/:id/reconciliation", h.reconciliationHTTP.GetReconciliation)
	operator.POST("/consignments/:id/reconciliation/runs", h.reconciliationHTTP.TriggerReconciliation)
}
