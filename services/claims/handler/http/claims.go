package http

import (
	"errors"
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/logger"
	"github.com/fuelops/uppf-engine/internal/utils"
	"github.com/fuelops/uppf-engine/services/claims"
)

// ClaimsHandler handles HTTP requests for claim generation and retrieval
type ClaimsHandler struct {
	claimsUC claims.ClaimsUseCase
}

// NewClaimsHandler creates a new claims HTTP handler
func NewClaimsHandler(claimsUC claims.ClaimsUseCase) *ClaimsHandler {
	return &ClaimsHandler{claimsUC: claimsUC}
}

// GenerateClaim computes (or recomputes) the claim for a consignment
func (h *ClaimsHandler) GenerateClaim(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid consignment id")
	}

	claim, err := h.claimsUC.ComputeClaim(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPending) {
			return utils.NotFoundResponse(c, err.Error())
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		if apperrors.IsInputError(err) {
			return utils.ConflictResponse(c, err.Error())
		}
		logger.Error("Failed to compute claim",
			logger.String("consignment_id", id.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to compute claim")
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Claim computed", claim)
}

// GetClaim returns the claim for a consignment
func (h *ClaimsHandler) GetClaim(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid consignment id")
	}

	claim, err := h.claimsUC.GetClaim(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to get claim",
			logger.String("consignment_id", id.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to get claim")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Claim retrieved", claim)
}

// SubmitClaim freezes a ReadyToSubmit claim for settlement. The actor comes
// from the authenticated operator token.
func (h *ClaimsHandler) SubmitClaim(c echo.Context) error {
	claimID, err := uuid.Parse(c.Param("claimId"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid claim id")
	}

	actor, _ := c.Get("user_id").(string)
	if actor == "" {
		actor = "operator"
	}

	claim, err := h.claimsUC.SubmitClaim(c.Request().Context(), claimID, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		if apperrors.IsInputError(err) {
			return utils.ConflictResponse(c, err.Error())
		}
		logger.Error("Failed to submit claim",
			logger.String("claim_id", claimID.String()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "failed to submit claim")
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Claim submitted", claim)
}
