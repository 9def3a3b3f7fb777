package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fuelops/uppf-engine/internal/pkg/middleware"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/services/settlement"
	httpHandler "github.com/fuelops/uppf-engine/services/settlement/handler/http"
)

// Handler combines all handlers for the settlement service
type Handler struct {
	settlementHTTP *httpHandler.SettlementHandler
	cfg            *models.Config
}

// NewHandler creates a new combined settlement handler
func NewHandler(settlementUC settlement.SettlementUseCase, cfg *models.Config) *Handler {
	return &Handler{
		settlementHTTP: httpHandler.NewSettlementHandler(settlementUC),
		cfg:            cfg,
	}
}

// RegisterRoutes registers all settlement routes. Settlement is operator-only.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	operator := e.Group("", middleware.ValidateJWT(h.cfg.JWT))
	operator.POST("/settlements/:windowId", h.settlementHTTP.RunSettlement)
	operator.GET("/settlements/:windowId", h.settlementHTTP.GetSettlement)
	operator.GET("/settlements/:windowId/regulator-submission", h.settlementHTTP.GetRegulatorSubmission)
}
