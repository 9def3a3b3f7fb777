package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/logger"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/internal/utils"
	"github.com/fuelops/uppf-engine/services/reconciliation"
)

// ReconciliationHandler handles HTTP requests for volume records and
// reconciliation results
type ReconciliationHandler struct {
	reconciliationUC reconciliation.ReconciliationUseCase
}

// NewReconciliationHandler creates a new reconciliation HTTP handler
func NewReconciliationHandler(reconciliationUC reconciliation.ReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationUC: reconciliationUC}
}

// SubmitVolumeRecord upserts one source's volume record for a consignment
func (h *ReconciliationHandler) SubmitVolumeRecord(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid consignment id")
	}
	source := c.Param("source")
	if !models.ValidVolumeSource(source) {
		return utils.BadRequestResponse(c, "source must be depot, transporter or station")
	}

	var record models.VolumeRecord
	if err := c.Bind(&record); err != nil {
		logger.Error("Failed to bind volume record", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	record.ConsignmentID = id
	record.Source = models.VolumeSource(source)

	replaced, err := h.reconciliationUC.UpsertVolumeRecord(c.Request().Context(), &record)
	if err != nil {
		if apperrors.IsInputError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to upsert volume record",
			logger.String("consignment_id", id.String()),
			logger.String("source", source),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to store volume record")
	}

	status := http.StatusCreated
	message := "Volume record stored"
	if replaced {
		status = http.StatusOK
		message = "Volume record replaced; reconciliation will be recomputed"
	}
	return utils.SuccessResponse(c, status, message, map[string]bool{"replaced": replaced})
}

// GetReconciliation returns the latest reconciliation result, or 404 while
// the consignment is still Pending
func (h *ReconciliationHandler) GetReconciliation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid consignment id")
	}

	result, err := h.reconciliationUC.GetReconciliation(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPending) {
			return utils.NotFoundResponse(c, err.Error())
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to get reconciliation result",
			logger.String("consignment_id", id.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to get reconciliation result")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reconciliation result retrieved", result)
}

// TriggerReconciliation forces a reconciliation run, useful to operators
// when a consumer missed an event
func (h *ReconciliationHandler) TriggerReconciliation(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid consignment id")
	}

	result, err := h.reconciliationUC.Reconcile(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to run reconciliation",
			logger.String("consignment_id", id.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to run reconciliation")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Reconciliation run completed", result)
}
