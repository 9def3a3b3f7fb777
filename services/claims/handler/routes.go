package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fuelops/uppf-engine/internal/pkg/middleware"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/services/claims"
	httpHandler "github.com/fuelops/uppf-engine/services/claims/handler/http"
)

// Handler combines all handlers for the claims service
type Handler struct {
	claimsHTTP *httpHandler.ClaimsHandler
	claimsNATS *NatsHandler
	cfg        *models.Config
}

// NewHandler creates a new combined claims handler
func NewHandler(claimsUC claims.ClaimsUseCase, natsHandler *NatsHandler, cfg *models.Config) *Handler {
	return &Handler{
		claimsHTTP: httpHandler.NewClaimsHandler(claimsUC),
		claimsNATS: natsHandler,
		cfg:        cfg,
	}
}

// RegisterRoutes registers all claims routes. Claims are an operator surface
// end to end; no ingest API key routes here.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	operator := e.Group("", middleware.ValidateJWT(h.cfg.JWT))
	operator.POST("/consignments/:id/claims", h.claimsHTTP.GenerateClaim)
	operator.GET("/consignments/:id/claims", h.claimsHTTP.GetClaim)
	operator.POST("/claims/:claimId/submission", h.claimsHTTP.SubmitClaim)
}
