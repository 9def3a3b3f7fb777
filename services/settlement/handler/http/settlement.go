package http

import (
	"errors"
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/logger"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/internal/utils"
	"github.com/fuelops/uppf-engine/services/settlement"
)

// SettlementHandler handles HTTP requests for settlement runs and the
// regulator submission
type SettlementHandler struct {
	settlementUC settlement.SettlementUseCase
}

// NewSettlementHandler creates a new settlement HTTP handler
func NewSettlementHandler(settlementUC settlement.SettlementUseCase) *SettlementHandler {
	return &SettlementHandler{settlementUC: settlementUC}
}

type settlementResponse struct {
	Settlement   *models.Settlement          `json:"settlement"`
	Instructions []models.PostingInstruction `json:"posting_instructions"`
}

// RunSettlement nets the window's submitted claims against the external
// notice in the request body
func (h *SettlementHandler) RunSettlement(c echo.Context) error {
	windowID := c.Param("windowId")

	var notice models.SettlementNotice
	if err := c.Bind(&notice); err != nil {
		logger.Error("Failed to bind settlement notice", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid settlement notice body")
	}

	result, instructions, err := h.settlementUC.RunSettlement(c.Request().Context(), windowID, notice)
	if err != nil {
		var mismatch *apperrors.ReconciliationMismatchError
		if errors.As(err, &mismatch) {
			// the computed settlement is preserved; the caller gets both it
			// and the tie-out failure
			return utils.SuccessResponse(c, nethttp.StatusUnprocessableEntity, mismatch.Error(),
				settlementResponse{Settlement: result, Instructions: instructions})
		}
		if errors.Is(err, apperrors.ErrWindowLocked) {
			return utils.ConflictResponse(c, err.Error())
		}
		if errors.Is(err, apperrors.ErrDuplicateSettlement) {
			return utils.ConflictResponse(c, err.Error())
		}
		if apperrors.IsInputError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to run settlement",
			logger.String("window_id", windowID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to run settlement")
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Settlement completed",
		settlementResponse{Settlement: result, Instructions: instructions})
}

// GetSettlement returns the finalized settlement for a window
func (h *SettlementHandler) GetSettlement(c echo.Context) error {
	windowID := c.Param("windowId")

	result, err := h.settlementUC.GetSettlement(c.Request().Context(), windowID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to get settlement",
			logger.String("window_id", windowID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to get settlement")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Settlement retrieved", result)
}

// GetRegulatorSubmission returns the window's regulator submission document
func (h *SettlementHandler) GetRegulatorSubmission(c echo.Context) error {
	windowID := c.Param("windowId")

	submission, err := h.settlementUC.BuildRegulatorSubmission(c.Request().Context(), windowID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to build regulator submission",
			logger.String("window_id", windowID),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to build regulator submission")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Regulator submission generated", submission)
}
