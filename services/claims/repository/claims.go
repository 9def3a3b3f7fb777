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
	"github.com/fuelops/uppf-engine/services/claims"
)

// baselineWindow bounds how far back the route variance baseline looks
const baselineWindow = 90 * 24 * time.Hour

type claimsRepo struct {
	db *database.PostgresClient
}

// NewClaimsRepository creates a new claims repository
func NewClaimsRepository(db *database.PostgresClient) claims.ClaimsRepo {
	return &claimsRepo{db: db}
}

// GetConsignment reads the consignment row shared with the tracking service
func (r *claimsRepo) GetConsignment(ctx context.Context, id uuid.UUID) (*models.Consignment, error) {
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

// GetValidationResult reads the GPS validator verdict written by the
// tracking service. No row yet means the trace is still being validated.
func (r *claimsRepo) GetValidationResult(ctx context.Context, consignmentID uuid.UUID) (*models.GPSValidationResult, error) {
	var payload []byte
	query := `SELECT result FROM gps_validation_results WHERE consignment_id = $1`

	if err := r.db.GetDB().GetContext(ctx, &payload, query, consignmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("gps validation for consignment %s: %w", consignmentID, apperrors.ErrPending)
		}
		return nil, fmt.Errorf("failed to get validation result: %w", err)
	}

	var result models.GPSValidationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("corrupt validation result for %s: %w", consignmentID, err)
	}
	return &result, nil
}

// GetLatestReconciliation reads the newest non-superseded result written by
// the reconciliation service
func (r *claimsRepo) GetLatestReconciliation(ctx context.Context, consignmentID uuid.UUID) (*models.ReconciliationResult, error) {
	var payload []byte
	query := `
		SELECT payload FROM reconciliation_results
		WHERE consignment_id = $1 AND superseded = false
		ORDER BY version DESC
		LIMIT 1`

	if err := r.db.GetDB().GetContext(ctx, &payload, query, consignmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reconciliation for consignment %s: %w", consignmentID, apperrors.ErrPending)
		}
		return nil, fmt.Errorf("failed to get reconciliation result: %w", err)
	}

	var result models.ReconciliationResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("corrupt reconciliation result for %s: %w", consignmentID, err)
	}
	return &result, nil
}

// GetEqualisationPoint resolves the route threshold effective at asOf
func (r *claimsRepo) GetEqualisationPoint(ctx context.Context, routeID string, asOf time.Time) (*models.EqualisationPoint, error) {
	var point models.EqualisationPoint
	query := `
		SELECT route_id, threshold_km, effective_from
		FROM equalisation_points
		WHERE route_id = $1 AND effective_from <= $2
		ORDER BY effective_from DESC
		LIMIT 1`

	if err := r.db.GetDB().GetContext(ctx, &point, query, routeID, asOf); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("equalisation point for route %s: %w", routeID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get equalisation point: %w", err)
	}
	return &point, nil
}

// GetTariffRate resolves the tariff effective at asOf. Route-specific rows
// win over the national default (empty route id).
func (r *claimsRepo) GetTariffRate(ctx context.Context, routeID string, asOf time.Time) (*models.TariffRate, error) {
	var tariff models.TariffRate
	query := `
		SELECT route_id, rate_per_km, currency, effective_from
		FROM tariff_rates
		WHERE route_id IN ($1, '') AND effective_from <= $2
		ORDER BY route_id DESC, effective_from DESC
		LIMIT 1`

	if err := r.db.GetDB().GetContext(ctx, &tariff, query, routeID, asOf); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tariff rate for route %s: %w", routeID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get tariff rate: %w", err)
	}
	return &tariff, nil
}

// RouteVarianceBaseline averages recent reconciliation variances across the
// route's consignments
func (r *claimsRepo) RouteVarianceBaseline(ctx context.Context, routeID string) (float64, error) {
	var baseline float64
	query := `
		SELECT COALESCE(AVG(rr.max_variance_pct), 0)
		FROM reconciliation_results rr
		JOIN consignments c ON c.id = rr.consignment_id
		WHERE c.route_id = $1
		  AND rr.superseded = false
		  AND rr.reconciled_at > $2`

	since := models.Now().Add(-baselineWindow)
	if err := r.db.GetDB().GetContext(ctx, &baseline, query, routeID, since); err != nil {
		return 0, fmt.Errorf("failed to compute route variance baseline: %w", err)
	}
	return baseline, nil
}

// SaveClaim upserts the consignment's claim. Submitted claims are guarded at
// the use case layer; this is a plain write.
func (r *claimsRepo) SaveClaim(ctx context.Context, claim *models.Claim) error {
	query := `
		INSERT INTO claims (
			id, consignment_id, route_id, window_id, km_excess, litres_moved,
			tariff_rate, amount, currency, gps_confidence, reconciliation_status,
			risk_score, review_reason, status, created_at, updated_at
		) VALUES (
			:id, :consignment_id, :route_id, :window_id, :km_excess, :litres_moved,
			:tariff_rate, :amount, :currency, :gps_confidence, :reconciliation_status,
			:risk_score, :review_reason, :status, :created_at, :updated_at
		)
		ON CONFLICT (consignment_id) DO UPDATE
		SET km_excess = EXCLUDED.km_excess,
		    litres_moved = EXCLUDED.litres_moved,
		    tariff_rate = EXCLUDED.tariff_rate,
		    amount = EXCLUDED.amount,
		    currency = EXCLUDED.currency,
		    gps_confidence = EXCLUDED.gps_confidence,
		    reconciliation_status = EXCLUDED.reconciliation_status,
		    risk_score = EXCLUDED.risk_score,
		    review_reason = EXCLUDED.review_reason,
		    status = EXCLUDED.status,
		    updated_at = EXCLUDED.updated_at`

	if _, err := r.db.GetDB().NamedExecContext(ctx, query, claim); err != nil {
		return fmt.Errorf("failed to save claim: %w", err)
	}
	return nil
}

// GetClaimByConsignment returns the claim for a consignment
func (r *claimsRepo) GetClaimByConsignment(ctx context.Context, consignmentID uuid.UUID) (*models.Claim, error) {
	var claim models.Claim
	query := `SELECT * FROM claims WHERE consignment_id = $1`

	if err := r.db.GetDB().GetContext(ctx, &claim, query, consignmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("claim for consignment %s: %w", consignmentID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	return &claim, nil
}

// GetClaim returns a claim by its own id
func (r *claimsRepo) GetClaim(ctx context.Context, claimID uuid.UUID) (*models.Claim, error) {
	var claim models.Claim
	query := `SELECT * FROM claims WHERE id = $1`

	if err := r.db.GetDB().GetContext(ctx, &claim, query, claimID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("claim %s: %w", claimID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	return &claim, nil
}

// UpdateClaimStatus performs a guarded status transition. Zero rows affected
// means someone else moved the claim first.
func (r *claimsRepo) UpdateClaimStatus(ctx context.Context, claimID uuid.UUID, from, to models.ClaimStatus, at time.Time) error {
	query := `UPDATE claims SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4`

	result, err := r.db.GetDB().ExecContext(ctx, query, to, at, claimID, from)
	if err != nil {
		return fmt.Errorf("failed to update claim status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check claim status update: %w", err)
	}
	if affected == 0 {
		return apperrors.NewInputError("claim", claimID.String(),
			"claim is no longer in the expected state", "expected %q", from)
	}
	return nil
}

// AppendStatusChange records one audit trail entry
func (r *claimsRepo) AppendStatusChange(ctx context.Context, change *models.ClaimStatusChange) error {
	query := `
		INSERT INTO claim_status_changes (claim_id, from_status, to_status, actor, reason, changed_at)
		VALUES (:claim_id, :from_status, :to_status, :actor, :reason, :changed_at)`

	if _, err := r.db.GetDB().NamedExecContext(ctx, query, change); err != nil {
		return fmt.Errorf("failed to append claim status change: %w", err)
	}
	return nil
}
