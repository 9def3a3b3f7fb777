package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
)

// Status represents the health of the service
type Status struct {
	Service   string    `json:"service"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Checker reports whether a dependency is reachable
type Checker func() error

// Handler serves liveness and readiness probes
type Handler struct {
	service  string
	checkers map[string]Checker
}

// NewHandler creates a health handler with optional dependency checkers
func NewHandler(service string, checkers map[string]Checker) *Handler {
	return &Handler{service: service, checkers: checkers}
}

// RegisterHealthEndpoints registers /health and /ready on the router
func RegisterHealthEndpoints(e *echo.Echo, service string, checkers map[string]Checker) {
	h := NewHandler(service, checkers)
	e.GET("/health", h.Health)
	e.GET("/ready", h.Ready)
}

// Health is the liveness probe
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, Status{
		Service:   h.service,
		Status:    "ok",
		Timestamp: models.Now(),
	})
}

// Ready is the readiness probe: every registered dependency must answer
func (h *Handler) Ready(c echo.Context) error {
	failures := map[string]string{}
	for name, check := range h.checkers {
		if err := check(); err != nil {
			failures[name] = err.Error()
		}
	}

	if len(failures) > 0 {
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"service":  h.service,
			"status":   "degraded",
			"failures": failures,
		})
	}

	return c.JSON(http.StatusOK, Status{
		Service:   h.service,
		Status:    "ready",
		Timestamp: models.Now(),
	})
}
