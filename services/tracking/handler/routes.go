package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fuelops/uppf-engine/internal/pkg/middleware"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/services/tracking"
	httpHandler "github.com/fuelops/uppf-engine/services/tracking/handler/http"
)

// Handler combines all handlers for the tracking service
type Handler struct {
	trackingHTTP *httpHandler.TrackingHandler
	deviceWS     *WebSocketHandler
	cfg          *models.Config
}

// NewHandler creates a new combined tracking handler
func NewHandler(trackingUC tracking.TrackingUseCase, cfg *models.Config) *Handler {
	return &Handler{
		trackingHTTP: httpHandler.NewTrackingHandler(trackingUC),
		deviceWS:     NewWebSocketHandler(trackingUC),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all tracking routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// device and depot integrations authenticate with the service API key
	ingest := e.Group("", middleware.ValidateAPIKey(h.cfg.Server.APIKey))
	ingest.POST("/consignments", h.trackingHTTP.CreateConsignment)
	ingest.POST("/consignments/:id/gps-points", h.trackingHTTP.IngestGPSPoint)
	ingest.POST("/consignments/:id/arrival", h.trackingHTTP.MarkArrival)
	ingest.GET("/ws/tracking", h.deviceWS.HandleDeviceFeed)

	// operator read endpoints require a JWT
	operator := e.Group("", middleware.ValidateJWT(h.cfg.JWT))
	operator.GET("/consignments/:id", h.trackingHTTP.GetConsignment)
	operator.GET("/consignments/:id/gps-points/validation", h.trackingHTTP.GetValidation)
}
