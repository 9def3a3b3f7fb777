package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/database"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/services/reconciliation"
)

type reconciliationRepo struct {
	db *database.PostgresClient
}

// NewReconciliationRepository creates a new reconciliation repository
func NewReconciliationRepository(db *database.PostgresClient) reconciliation.ReconciliationRepo {
	return &reconciliationRepo{db: db}
}

// UpsertVolumeRecord stores one source's measurement for a consignment,
// replacing the prior record on resubmission
func (r *reconciliationRepo) UpsertVolumeRecord(ctx context.Context, record *models.VolumeRecord) (bool, error) {
	query := `
		INSERT INTO volume_records (
			consignment_id, source, litres, temperature_c, density_kg_m3,
			document_ref, recorded_at, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (consignment_id, source) DO UPDATE
		SET litres = EXCLUDED.litres,
		    temperature_c = EXCLUDED.temperature_c,
		    density_kg_m3 = EXCLUDED.density_kg_m3,
		    document_ref = EXCLUDED.document_ref,
		    recorded_at = EXCLUDED.recorded_at,
		    submitted_at = EXCLUDED.submitted_at
		RETURNING (xmax <> 0) AS replaced`

	var replaced bool
	err := r.db.GetDB().QueryRowxContext(ctx, query,
		record.ConsignmentID, record.Source, record.Litres, record.TemperatureC,
		record.DensityKgM3, record.DocumentRef, record.RecordedAt, record.SubmittedAt,
	).Scan(&replaced)
	if err != nil {
		return false, fmt.Errorf("failed to upsert volume record: %w", err)
	}
	return replaced, nil
}

// GetVolumeRecords lists all submitted records for a consignment
func (r *reconciliationRepo) GetVolumeRecords(ctx context.Context, consignmentID uuid.UUID) ([]models.VolumeRecord, error) {
	var records []models.VolumeRecord
	query := `
		SELECT consignment_id, source, litres, temperature_c, density_kg_m3,
		       document_ref, recorded_at, submitted_at
		FROM volume_records
		WHERE consignment_id = $1
		ORDER BY source`

	if err := r.db.GetDB().SelectContext(ctx, &records, query, consignmentID); err != nil {
		return nil, fmt.Errorf("failed to list volume records: %w", err)
	}
	return records, nil
}

// GetConsignment reads the consignment row shared with the tracking service
func (r *reconciliationRepo) GetConsignment(ctx context.Context, id uuid.UUID) (*models.Consignment, error) {
	var c models.Consignment
	query := `SELECT * FROM consignments WHERE id = $1`

	if err := r.db.GetDB().GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("consignment %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get consignment: %w", err)
	}
	return &c, nil
}

type resultRow struct {
	ConsignmentID    uuid.UUID `db:"consignment_id"`
	Version          int       `db:"version"`
	Payload          []byte    `db:"payload"`
	ReconciledLitres float64   `db:"reconciled_litres"`
	MaxVariancePct   float64   `db:"max_variance_pct"`
	Status           string    `db:"status"`
	Confidence       float64   `db:"confidence"`
	Superseded       bool      `db:"superseded"`
	ReconciledAt     time.Time `db:"reconciled_at"`
}

// SaveResult appends a new versioned reconciliation result
func (r *reconciliationRepo) SaveResult(ctx context.Context, result *models.ReconciliationResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal reconciliation result: %w", err)
	}

	query := `
		INSERT INTO reconciliation_results (
			consignment_id, version, payload, reconciled_litres,
			max_variance_pct, status, confidence, superseded, reconciled_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8)`

	if _, err := r.db.GetDB().ExecContext(ctx, query,
		result.ConsignmentID, result.Version, payload, result.ReconciledLitres,
		result.MaxVariancePct, result.Status, result.Confidence, result.ReconciledAt); err != nil {
		return fmt.Errorf("failed to save reconciliation result: %w", err)
	}
	return nil
}

// GetLatestResult returns the newest non-superseded result. A consignment
// with no valid result is Pending, not missing.
func (r *reconciliationRepo) GetLatestResult(ctx context.Context, consignmentID uuid.UUID) (*models.ReconciliationResult, error) {
	var row resultRow
	query := `
		SELECT consignment_id, version, payload, reconciled_litres,
		       max_variance_pct, status, confidence, superseded, reconciled_at
		FROM reconciliation_results
		WHERE consignment_id = $1 AND superseded = false
		ORDER BY version DESC
		LIMIT 1`

	if err := r.db.GetDB().GetContext(ctx, &row, query, consignmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("consignment %s: %w", consignmentID, apperrors.ErrPending)
		}
		return nil, fmt.Errorf("failed to get reconciliation result: %w", err)
	}

	var result models.ReconciliationResult
	if err := json.Unmarshal(row.Payload, &result); err != nil {
		return nil, fmt.Errorf("corrupt reconciliation result for %s: %w", consignmentID, err)
	}
	return &result, nil
}

// NextVersion allocates the next result version for a consignment
func (r *reconciliationRepo) NextVersion(ctx context.Context, consignmentID uuid.UUID) (int, error) {
	var version int
	query := `SELECT COALESCE(MAX(version), 0) + 1 FROM reconciliation_results WHERE consignment_id = $1`

	if err := r.db.GetDB().GetContext(ctx, &version, query, consignmentID); err != nil {
		return 0, fmt.Errorf("failed to allocate result version: %w", err)
	}
	return version, nil
}

// SupersedeResults marks every stored result stale after a record upsert
func (r *reconciliationRepo) SupersedeResults(ctx context.Context, consignmentID uuid.UUID) error {
	query := `UPDATE reconciliation_results SET superseded = true WHERE consignment_id = $1`
	if _, err := r.db.GetDB().ExecContext(ctx, query, consignmentID); err != nil {
		return fmt.Errorf("failed to supersede reconciliation results: %w", err)
	}
	return nil
}
