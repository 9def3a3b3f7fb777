package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/keylock"
	"github.com/fuelops/uppf-engine/internal/pkg/logger"
	"github.com/fuelops/uppf-engine/internal/pkg/metrics"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/services/claims"
)

// ClaimsUC implements the claims.ClaimsUseCase interface. Computation per
// consignment is serialized through a keyed lock so concurrent triggers
// (reconciliation completed, trace validated, operator request) never race
// into duplicate claims.
type ClaimsUC struct {
	cfg        *models.Config
	repo       claims.ClaimsRepo
	gw         claims.ClaimsGW
	calculator *Calculator
	locks      *keylock.KeyLock
}

// NewClaimsUC creates a new claims use case
func NewClaimsUC(cfg *models.Config, repo claims.ClaimsRepo, gw claims.ClaimsGW) claims.ClaimsUseCase {
	return &ClaimsUC{
		cfg:        cfg,
		repo:       repo,
		gw:         gw,
		calculator: NewCalculator(cfg.Claims, cfg.Reconciliation.HardFailCeilingPct),
		locks:      keylock.New(),
	}
}

// ComputeClaim derives the claim once both upstream verdicts exist. While
// either is missing it returns a wrapped ErrPending rather than a partial
// claim. Recomputation after a record upsert replaces the unsubmitted claim
// under the same id.
func (uc *ClaimsUC) ComputeClaim(ctx context.Context, consignmentID uuid.UUID) (*models.Claim, error) {
	consignment, err := uc.repo.GetConsignment(ctx, consignmentID)
	if err != nil {
		return nil, err
	}

	var claim *models.Claim
	err = uc.locks.WithLock(consignmentID.String(), func() error {
		validation, err := uc.repo.GetValidationResult(ctx, consignmentID)
		if err != nil {
			return err
		}
		reconciliation, err := uc.repo.GetLatestReconciliation(ctx, consignmentID)
		if err != nil {
			return err
		}

		input, err := uc.buildInput(ctx, consignment, validation, reconciliation)
		if err != nil {
			return err
		}

		existing, err := uc.repo.GetClaimByConsignment(ctx, consignmentID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if existing != nil && submitted(existing.Status) {
			return apperrors.NewInputError("claim", existing.ID.String(),
				"submitted claims are immutable", "status is %q", existing.Status)
		}

		claim = uc.calculator.Compute(*input, models.Now())
		previous := models.ClaimStatus("")
		if existing != nil {
			// recomputation keeps the claim's identity and audit trail
			claim.ID = existing.ID
			claim.CreatedAt = existing.CreatedAt
			previous = existing.Status
		}

		if err := uc.repo.SaveClaim(ctx, claim); err != nil {
			return fmt.Errorf("failed to save claim: %w", err)
		}
		return uc.repo.AppendStatusChange(ctx, &models.ClaimStatusChange{
			ClaimID:   claim.ID,
			From:      previous,
			To:        claim.Status,
			Actor:     "system",
			Reason:    claim.ReviewReason,
			ChangedAt: claim.UpdatedAt,
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.ClaimsCreated.WithLabelValues(string(claim.Status)).Inc()
	uc.publish(ctx, claim)

	logger.Info("Claim computed",
		logger.String("claim_id", claim.ID.String()),
		logger.String("consignment_id", consignmentID.String()),
		logger.String("status", string(claim.Status)),
		logger.Float64("km_excess", claim.KmExcess),
		logger.String("amount", claim.Amount.String()))
	return claim, nil
}

// GetClaim returns the claim for a consignment
func (uc *ClaimsUC) GetClaim(ctx context.Context, consignmentID uuid.UUID) (*models.Claim, error) {
	return uc.repo.GetClaimByConsignment(ctx, consignmentID)
}

// SubmitClaim freezes a ReadyToSubmit claim for settlement
func (uc *ClaimsUC) SubmitClaim(ctx context.Context, claimID uuid.UUID, actor string) (*models.Claim, error) {
	claim, err := uc.repo.GetClaim(ctx, claimID)
	if err != nil {
		return nil, err
	}
	if claim.Status != models.ClaimStatusReadyToSubmit {
		return nil, apperrors.NewInputError("claim", claimID.String(),
			"only ready_to_submit claims can be submitted", "status is %q", claim.Status)
	}

	now := models.Now()
	if err := uc.repo.UpdateClaimStatus(ctx, claimID, models.ClaimStatusReadyToSubmit, models.ClaimStatusSubmitted, now); err != nil {
		return nil, err
	}
	if err := uc.repo.AppendStatusChange(ctx, &models.ClaimStatusChange{
		ClaimID:   claimID,
		From:      models.ClaimStatusReadyToSubmit,
		To:        models.ClaimStatusSubmitted,
		Actor:     actor,
		ChangedAt: now,
	}); err != nil {
		return nil, err
	}

	claim.Status = models.ClaimStatusSubmitted
	claim.UpdatedAt = now

	logger.Info("Claim submitted",
		logger.String("claim_id", claimID.String()),
		logger.String("window_id", claim.WindowID),
		logger.String("actor", actor))
	return claim, nil
}

// buildInput resolves the effective-dated reference data for the dispatch
// date. A missing tariff row falls back to the configured national default;
// a missing equalisation point is an error because no threshold means no
// defensible claim.
func (uc *ClaimsUC) buildInput(ctx context.Context, consignment *models.Consignment,
	validation *models.GPSValidationResult, reconciliation *models.ReconciliationResult) (*CalculatorInput, error) {

	point, err := uc.repo.GetEqualisationPoint(ctx, consignment.RouteID, consignment.DispatchedAt)
	if err != nil {
		return nil, fmt.Errorf("no equalisation point for route %s: %w", consignment.RouteID, err)
	}

	tariff, err := uc.repo.GetTariffRate(ctx, consignment.RouteID, consignment.DispatchedAt)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		tariff = &models.TariffRate{
			RatePerKm:     uc.cfg.Claims.DefaultTariffRate,
			Currency:      uc.cfg.Claims.Currency,
			EffectiveFrom: consignment.DispatchedAt,
		}
	}

	baseline, err := uc.repo.RouteVarianceBaseline(ctx, consignment.RouteID)
	if err != nil {
		// risk scoring degrades gracefully without history
		logger.Warn("Failed to load route variance baseline",
			logger.String("route_id", consignment.RouteID),
			logger.Err(err))
		baseline = 0
	}

	return &CalculatorInput{
		Consignment:           consignment,
		Validation:            validation,
		Reconciliation:        reconciliation,
		ThresholdKm:           point.ThresholdKm,
		Tariff:                *tariff,
		HistoricalVariancePct: baseline,
	}, nil
}

func (uc *ClaimsUC) publish(ctx context.Context, claim *models.Claim) {
	event := models.ClaimCreated{
		ClaimID:       claim.ID,
		ConsignmentID: claim.ConsignmentID,
		Status:        claim.Status,
		CreatedAt:     claim.UpdatedAt,
	}
	if err := uc.gw.PublishClaimCreated(ctx, event); err != nil {
		logger.Warn("Failed to publish claim created event",
			logger.String("claim_id", claim.ID.String()),
			logger.Err(err))
	}
	if claim.Status == models.ClaimStatusReadyToSubmit {
		if err := uc.gw.PublishClaimReady(ctx, event); err != nil {
			logger.Warn("Failed to publish claim ready event",
				logger.String("claim_id", claim.ID.String()),
				logger.Err(err))
		}
	}
}

func submitted(status models.ClaimStatus) bool {
	switch status {
	case models.ClaimStatusSubmitted, models.ClaimStatusApproved, models.ClaimStatusPaid, models.ClaimStatusRejected:
		return true
	}
	return false
}
