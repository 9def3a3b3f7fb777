package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/keylock"
	"github.com/fuelops/uppf-engine/internal/pkg/logger"
	"github.com/fuelops/uppf-engine/internal/pkg/metrics"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/internal/utils"
	"github.com/fuelops/uppf-engine/services/reconciliation"
)

// ReconciliationUC implements the reconciliation.ReconciliationUseCase
// interface. Work per consignment is serialized through a keyed lock so an
// upsert and a reconciliation run never interleave for the same id.
type ReconciliationUC struct {
	cfg    *models.Config
	repo   reconciliation.ReconciliationRepo
	gw     reconciliation.ReconciliationGW
	engine *Engine
	locks  *keylock.KeyLock
}

// NewReconciliationUC creates a new reconciliation use case
func NewReconciliationUC(cfg *models.Config, repo reconciliation.ReconciliationRepo, gw reconciliation.ReconciliationGW) reconciliation.ReconciliationUseCase {
	return &ReconciliationUC{
		cfg:    cfg,
		repo:   repo,
		gw:     gw,
		engine: NewEngine(cfg.Reconciliation),
		locks:  keylock.New(),
	}
}

// UpsertVolumeRecord stores a source's measurement, superseding any existing
// reconciliation result, and announces which sources are now present.
func (uc *ReconciliationUC) UpsertVolumeRecord(ctx context.Context, record *models.VolumeRecord) (bool, error) {
	if err := uc.validateRecord(record); err != nil {
		return false, err
	}

	if _, err := uc.repo.GetConsignment(ctx, record.ConsignmentID); err != nil {
		return false, err
	}

	var replaced bool
	var present []models.VolumeSource
	err := uc.locks.WithLock(record.ConsignmentID.String(), func() error {
		var err error
		record.SubmittedAt = models.Now()
		replaced, err = uc.repo.UpsertVolumeRecord(ctx, record)
		if err != nil {
			return fmt.Errorf("failed to upsert volume record: %w", err)
		}

		// any prior result no longer reflects the records on file
		if err := uc.repo.SupersedeResults(ctx, record.ConsignmentID); err != nil {
			return fmt.Errorf("failed to supersede reconciliation results: %w", err)
		}

		records, err := uc.repo.GetVolumeRecords(ctx, record.ConsignmentID)
		if err != nil {
			return fmt.Errorf("failed to list volume records: %w", err)
		}
		for _, r := range records {
			present = append(present, r.Source)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	event := models.VolumeRecorded{
		ConsignmentID:  record.ConsignmentID,
		Source:         record.Source,
		Replaced:       replaced,
		SourcesPresent: present,
		RecordedAt:     record.SubmittedAt,
	}
	if err := uc.gw.PublishVolumeRecorded(ctx, event); err != nil {
		logger.Warn("Failed to publish volume recorded event",
			logger.String("consignment_id", record.ConsignmentID.String()),
			logger.Err(err))
	}

	logger.Info("Volume record stored",
		logger.String("consignment_id", record.ConsignmentID.String()),
		logger.String("source", string(record.Source)),
		logger.Bool("replaced", replaced),
		logger.Int("sources_present", len(present)))
	return replaced, nil
}

// Reconcile runs the engine over the consignment's current records and
// persists a new versioned result. Safe to call when records are still
// missing; the Pending verdict is stored and surfaced as such.
func (uc *ReconciliationUC) Reconcile(ctx context.Context, consignmentID uuid.UUID) (*models.ReconciliationResult, error) {
	consignment, err := uc.repo.GetConsignment(ctx, consignmentID)
	if err != nil {
		return nil, err
	}

	var result *models.ReconciliationResult
	err = uc.locks.WithLock(consignmentID.String(), func() error {
		records, err := uc.repo.GetVolumeRecords(ctx, consignmentID)
		if err != nil {
			return fmt.Errorf("failed to list volume records: %w", err)
		}

		version, err := uc.repo.NextVersion(ctx, consignmentID)
		if err != nil {
			return fmt.Errorf("failed to allocate result version: %w", err)
		}

		result, err = uc.engine.Reconcile(consignment, records, version, models.Now())
		if err != nil {
			return err
		}

		if result.Status == models.ReconciliationPending {
			// nothing worth persisting yet
			return nil
		}
		return uc.repo.SaveResult(ctx, result)
	})
	if err != nil {
		return nil, err
	}

	metrics.Reconciliations.WithLabelValues(string(result.Status)).Inc()

	if result.Status != models.ReconciliationPending {
		event := models.ReconciliationCompleted{
			ConsignmentID: consignmentID,
			Version:       result.Version,
			Status:        result.Status,
			CompletedAt:   result.ReconciledAt,
		}
		if err := uc.gw.PublishReconciliationCompleted(ctx, event); err != nil {
			logger.Warn("Failed to publish reconciliation completed event",
				logger.String("consignment_id", consignmentID.String()),
				logger.Err(err))
		}

		logger.Info("Reconciliation completed",
			logger.String("consignment_id", consignmentID.String()),
			logger.Int("version", result.Version),
			logger.String("status", string(result.Status)),
			logger.Float64("max_variance_pct", result.MaxVariancePct),
			logger.Float64("reconciled_litres", result.ReconciledLitres))
	}

	return result, nil
}

// GetReconciliation returns the latest valid result for a consignment
func (uc *ReconciliationUC) GetReconciliation(ctx context.Context, consignmentID uuid.UUID) (*models.ReconciliationResult, error) {
	result, err := uc.repo.GetLatestResult(ctx, consignmentID)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *ReconciliationUC) validateRecord(record *models.VolumeRecord) error {
	if record == nil {
		return apperrors.NewInputError("volume_record", "", "record is required", "got nil")
	}
	id := record.ConsignmentID.String()
	if record.ConsignmentID == uuid.Nil {
		return apperrors.NewInputError("volume_record", id, "consignment_id is required", "got zero uuid")
	}
	if !models.ValidVolumeSource(string(record.Source)) {
		return apperrors.NewInputError("volume_record", id,
			"source must be depot, transporter or station", "got %q", record.Source)
	}
	if record.Litres <= 0 {
		return apperrors.NewInputError("volume_record", id,
			"litres must be positive", "got %f", record.Litres)
	}
	if record.RecordedAt.IsZero() {
		return apperrors.NewInputError("volume_record", id, "recorded_at is required", "got zero time")
	}
	// reject out-of-range temperatures at the door rather than at engine time
	if _, err := utils.VolumeCorrectionFactor(record.TemperatureC, uc.cfg.Reconciliation.DefaultDensityKgM3); err != nil {
		return apperrors.NewInputError("volume_record", id,
			"temperature outside measurable range", "%v", err)
	}
	return nil
}
