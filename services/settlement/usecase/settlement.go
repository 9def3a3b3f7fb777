package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/logger"
	"github.com/fuelops/uppf-engine/internal/pkg/metrics"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/services/settlement"
)

// regulatorSchemaVersion tags the submission payload layout
const regulatorSchemaVersion = "1.0"

// SettlementUC implements the settlement.SettlementUseCase interface
type SettlementUC struct {
	cfg       *models.Config
	repo      settlement.SettlementRepo
	gw        settlement.SettlementGW
	ledger    settlement.LedgerGW
	processor *Processor
}

// NewSettlementUC creates a new settlement use case
func NewSettlementUC(cfg *models.Config, repo settlement.SettlementRepo, gw settlement.SettlementGW, ledger settlement.LedgerGW) settlement.SettlementUseCase {
	return &SettlementUC{
		cfg:       cfg,
		repo:      repo,
		gw:        gw,
		ledger:    ledger,
		processor: NewProcessor(cfg.Settlement),
	}
}

// RunSettlement nets the window under an exclusive window lock. The local
// settlement is persisted before any external call, and a failed ledger post
// never rolls it back; it is escalated instead.
func (uc *SettlementUC) RunSettlement(ctx context.Context, windowID string, notice models.SettlementNotice) (*models.Settlement, []models.PostingInstruction, error) {
	if windowID == "" {
		return nil, nil, apperrors.NewInputError("settlement", "", "window id is required", "got empty string")
	}
	if notice.WindowID != "" && notice.WindowID != windowID {
		return nil, nil, apperrors.NewInputError("settlement", windowID,
			"notice window must match the request", "notice is for %q", notice.WindowID)
	}

	var result *models.Settlement
	var instructions []models.PostingInstruction
	var mismatch error

	err := uc.repo.WithWindowLock(ctx, windowID, func() error {
		if existing, err := uc.repo.GetSettlementByWindow(ctx, windowID); err == nil &&
			existing.Status == models.SettlementStatusCompleted {
			return fmt.Errorf("window %s: %w", windowID, apperrors.ErrDuplicateSettlement)
		} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}

		claims, err := uc.repo.ListSubmittedClaims(ctx, windowID)
		if err != nil {
			return fmt.Errorf("failed to list submitted claims: %w", err)
		}
		if len(claims) == 0 {
			return apperrors.NewInputError("settlement", windowID,
				"window has no submitted claims", "nothing to settle")
		}

		result, instructions, mismatch = uc.processor.Process(windowID, claims, notice, uuid.New(), models.Now())
		if mismatch != nil {
			var mismatchErr *apperrors.ReconciliationMismatchError
			if !errors.As(mismatch, &mismatchErr) {
				return mismatch
			}
		}

		// the computed settlement is stored either way; a mismatch is an
		// escalation, not a rollback
		return uc.repo.SaveSettlement(ctx, result, instructions)
	})
	if err != nil {
		return nil, nil, err
	}

	event := models.SettlementCompleted{
		SettlementID: result.ID,
		WindowID:     windowID,
		Status:       result.Status,
		CompletedAt:  result.FinalizedAt,
	}
	if pubErr := uc.gw.PublishSettlementCompleted(ctx, event); pubErr != nil {
		logger.Warn("Failed to publish settlement completed event",
			logger.String("window_id", windowID), logger.Err(pubErr))
	}

	if mismatch != nil {
		metrics.SettlementMismatches.Inc()
		uc.escalate(ctx, "settlement", result.ID.String(), "settlement totals do not tie out", mismatch.Error())
		logger.Error("Settlement mismatch",
			logger.String("window_id", windowID),
			logger.String("settlement_id", result.ID.String()),
			logger.Err(mismatch))
		return result, instructions, mismatch
	}

	uc.postToLedger(ctx, result, instructions)

	logger.Info("Settlement completed",
		logger.String("window_id", windowID),
		logger.String("settlement_id", result.ID.String()),
		logger.Int("claims", len(result.ClaimIDs)),
		logger.String("net_amount", result.NetAmount.String()))
	return result, instructions, nil
}

// GetSettlement returns the finalized settlement for a window
func (uc *SettlementUC) GetSettlement(ctx context.Context, windowID string) (*models.Settlement, error) {
	return uc.repo.GetSettlementByWindow(ctx, windowID)
}

// BuildRegulatorSubmission assembles the window's submission from the settled
// claims and their evidence document references
func (uc *SettlementUC) BuildRegulatorSubmission(ctx context.Context, windowID string) (*models.RegulatorSubmission, error) {
	result, err := uc.repo.GetSettlementByWindow(ctx, windowID)
	if err != nil {
		return nil, err
	}

	claims, err := uc.repo.ListSettledClaims(ctx, windowID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settled claims: %w", err)
	}

	submission := &models.RegulatorSubmission{
		SchemaVersion: regulatorSchemaVersion,
		WindowID:      windowID,
		SettlementID:  result.ID,
		TotalAmount:   result.TotalSettled,
		GeneratedAt:   models.Now(),
	}
	for _, claim := range claims {
		evidence, err := uc.repo.ListClaimEvidence(ctx, claim.ConsignmentID)
		if err != nil {
			return nil, fmt.Errorf("failed to list evidence for claim %s: %w", claim.ID, err)
		}
		submission.Lines = append(submission.Lines, models.RegulatorClaimLine{
			ClaimID:      claim.ID,
			RouteID:      claim.RouteID,
			KmExcess:     claim.KmExcess,
			Litres:       claim.LitresMoved,
			Amount:       claim.Amount,
			EvidenceRefs: evidence,
		})
	}
	return submission, nil
}

// postToLedger hands the instructions to the collaborator queue and the
// ledger service. The ledger consumes idempotently, so redelivery after a
// partial failure is safe.
func (uc *SettlementUC) postToLedger(ctx context.Context, result *models.Settlement, instructions []models.PostingInstruction) {
	if err := uc.gw.PublishLedgerInstructions(ctx, instructions); err != nil {
		logger.Warn("Failed to publish ledger instructions",
			logger.String("settlement_id", result.ID.String()), logger.Err(err))
	}

	if err := uc.ledger.PostInstructions(ctx, instructions); err != nil {
		metrics.ExternalCallFailures.WithLabelValues("ledger").Inc()
		uc.escalate(ctx, "ledger_posting", result.ID.String(),
			"ledger posting exhausted its retries", err.Error())
		logger.Error("Ledger posting failed; settlement preserved and escalated",
			logger.String("settlement_id", result.ID.String()),
			logger.Err(err))
	}
}

// escalate queues a manual-review item with the computed result preserved
func (uc *SettlementUC) escalate(ctx context.Context, entityType, entityID, reason, detail string) {
	item := &models.ManualReviewItem{
		ID:         uuid.New(),
		EntityType: entityType,
		EntityID:   entityID,
		Reason:     reason,
		Detail:     detail,
		QueuedAt:   models.Now(),
	}
	if err := uc.repo.SaveManualReviewItem(ctx, item); err != nil {
		logger.Error("Failed to queue manual review item",
			logger.String("entity_id", entityID), logger.Err(err))
		return
	}
	if err := uc.gw.PublishReviewQueued(ctx, models.ReviewQueued{
		ItemID:     item.ID,
		EntityType: item.EntityType,
		EntityID:   item.EntityID,
		Reason:     item.Reason,
		QueuedAt:   item.QueuedAt,
	}); err != nil {
		logger.Warn("Failed to publish review queued event",
			logger.String("item_id", item.ID.String()), logger.Err(err))
	}
}
