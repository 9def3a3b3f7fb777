package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/logger"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/internal/utils"
	"github.com/fuelops/uppf-engine/services/tracking"
)

// TrackingHandler handles HTTP requests for consignment tracking
type TrackingHandler struct {
	trackingUC tracking.TrackingUseCase
}

// NewTrackingHandler creates a new tracking HTTP handler
func NewTrackingHandler(trackingUC tracking.TrackingUseCase) *TrackingHandler {
	return &TrackingHandler{trackingUC: trackingUC}
}

// CreateConsignment registers a new consignment
func (h *TrackingHandler) CreateConsignment(c echo.Context) error {
	var consignment models.Consignment
	if err := c.Bind(&consignment); err != nil {
		logger.Error("Failed to bind consignment request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	if err := h.trackingUC.CreateConsignment(c.Request().Context(), &consignment); err != nil {
		if apperrors.IsInputError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to create consignment", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to create consignment")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Consignment created", consignment)
}

// GetConsignment returns a consignment by id
func (h *TrackingHandler) GetConsignment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid consignment id")
	}

	consignment, err := h.trackingUC.GetConsignment(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to get consignment",
			logger.String("consignment_id", id.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to get consignment")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Consignment retrieved", consignment)
}

// IngestGPSPoint appends one GPS point to a consignment's trace. Idempotent
// on (consignment id, timestamp).
func (h *TrackingHandler) IngestGPSPoint(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid consignment id")
	}

	var point models.GPSPoint
	if err := c.Bind(&point); err != nil {
		logger.Error("Failed to bind gps point", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	point.ConsignmentID = id

	duplicate, err := h.trackingUC.IngestPoint(c.Request().Context(), &point)
	if err != nil {
		if apperrors.IsInputError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to ingest gps point",
			logger.String("consignment_id", id.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to ingest gps point")
	}

	if duplicate {
		return utils.SuccessResponse(c, http.StatusOK, "Duplicate point ignored", map[string]bool{"duplicate": true})
	}
	return utils.SuccessResponse(c, http.StatusAccepted, "Point recorded", map[string]bool{"duplicate": false})
}

// MarkArrival records the consignment's arrival and triggers trace validation
func (h *TrackingHandler) MarkArrival(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid consignment id")
	}

	var req struct {
		ArrivedAt time.Time `json:"arrived_at"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	result, err := h.trackingUC.MarkArrival(c.Request().Context(), id, req.ArrivedAt)
	if err != nil {
		if apperrors.IsInputError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to mark arrival",
			logger.String("consignment_id", id.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to mark arrival")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Arrival recorded", result)
}

// GetValidation returns the stored trace validation verdict
func (h *TrackingHandler) GetValidation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid consignment id")
	}

	result, err := h.trackingUC.GetValidation(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to get validation result",
			logger.String("consignment_id", id.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to get validation result")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Validation result retrieved", result)
}
