package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/database"
	"github.com/fuelops/uppf-engine/internal/pkg/logger"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/services/settlement"
)

type settlementRepo struct {
	db *database.PostgresClient
}

// NewSettlementRepository creates a new settlement repository
func NewSettlementRepository(db *database.PostgresClient) settlement.SettlementRepo {
	return &settlementRepo{db: db}
}

// WithWindowLock serializes settlement runs per window with a postgres
// advisory lock held on a dedicated connection. try-lock semantics: a second
// concurrent run fails fast with ErrWindowLocked instead of queueing.
func (r *settlementRepo) WithWindowLock(ctx context.Context, windowID string, fn func() error) error {
	conn, err := r.db.GetDB().Connx(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection for window lock: %w", err)
	}
	defer conn.Close()

	var acquired bool
	if err := conn.GetContext(ctx, &acquired,
		`SELECT pg_try_advisory_lock(hashtext($1))`, windowID); err != nil {
		return fmt.Errorf("failed to acquire window lock: %w", err)
	}
	if !acquired {
		return fmt.Errorf("window %s: %w", windowID, apperrors.ErrWindowLocked)
	}
	defer func() {
		var released bool
		if err := conn.GetContext(context.Background(), &released,
			`SELECT pg_advisory_unlock(hashtext($1))`, windowID); err != nil {
			logger.Error("Failed to release window lock",
				logger.String("window_id", windowID), logger.Err(err))
		}
	}()

	return fn()
}

// ListSubmittedClaims returns the window's claims frozen for settlement
func (r *settlementRepo) ListSubmittedClaims(ctx context.Context, windowID string) ([]models.Claim, error) {
	var claims []models.Claim
	query := `SELECT * FROM claims WHERE window_id = $1 AND status = $2 ORDER BY created_at`

	if err := r.db.GetDB().SelectContext(ctx, &claims, query, windowID, models.ClaimStatusSubmitted); err != nil {
		return nil, fmt.Errorf("failed to list submitted claims: %w", err)
	}
	return claims, nil
}

// ListSettledClaims returns the window's claims after settlement
func (r *settlementRepo) ListSettledClaims(ctx context.Context, windowID string) ([]models.Claim, error) {
	var claims []models.Claim
	query := `SELECT * FROM claims WHERE window_id = $1 AND status IN ($2, $3) ORDER BY created_at`

	if err := r.db.GetDB().SelectContext(ctx, &claims, query, windowID,
		models.ClaimStatusApproved, models.ClaimStatusPaid); err != nil {
		return nil, fmt.Errorf("failed to list settled claims: %w", err)
	}
	return claims, nil
}

// GetSettlementByWindow returns the newest settlement row for a window
func (r *settlementRepo) GetSettlementByWindow(ctx context.Context, windowID string) (*models.Settlement, error) {
	var payload []byte
	query := `
		SELECT payload FROM settlements
		WHERE window_id = $1
		ORDER BY finalized_at DESC
		LIMIT 1`

	if err := r.db.GetDB().GetContext(ctx, &payload, query, windowID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("settlement for window %s: %w", windowID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}

	var result models.Settlement
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("corrupt settlement for window %s: %w", windowID, err)
	}
	return &result, nil
}

// SaveSettlement persists the settlement, its variances and posting
// instructions in one transaction. Claims are approved only when the run
// actually tied out; a mismatch run stores the settlement for review but
// leaves the claims submitted.
func (r *settlementRepo) SaveSettlement(ctx context.Context, s *models.Settlement, instructions []models.PostingInstruction) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settlement: %w", err)
	}

	tx, err := r.db.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin settlement transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO settlements (
			id, window_id, payload, total_claimed, total_settled,
			penalties, bonuses, net_amount, status, notice_ref, finalized_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.ID, s.WindowID, payload, s.TotalClaimed, s.TotalSettled,
		s.Penalties, s.Bonuses, s.NetAmount, s.Status, s.NoticeRef, s.FinalizedAt); err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}

	for _, v := range s.ClaimVariances {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO claim_variances (
				settlement_id, claim_id, original_amount, settled_amount,
				variance_amount, variance_pct, category, reason
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			s.ID, v.ClaimID, v.OriginalAmount, v.SettledAmount,
			v.VarianceAmount, v.VariancePct, v.Category, v.Reason); err != nil {
			return fmt.Errorf("failed to insert claim variance: %w", err)
		}
	}

	for _, in := range instructions {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO posting_instructions (
				settlement_id, claim_id, account_code, debit, credit,
				description, idempotency_key
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (idempotency_key) DO NOTHING`,
			in.SettlementID, in.ClaimID, in.AccountCode, in.Debit, in.Credit,
			in.Description, in.IdempotencyKey); err != nil {
			return fmt.Errorf("failed to insert posting instruction: %w", err)
		}
	}

	if s.Status == models.SettlementStatusCompleted && len(s.ClaimIDs) > 0 {
		ids := make([]string, 0, len(s.ClaimIDs))
		for _, id := range s.ClaimIDs {
			ids = append(ids, id.String())
		}
		query, args, err := sqlx.In(`
			UPDATE claims SET status = ?, updated_at = ?
			WHERE id IN (?) AND status = ?`,
			models.ClaimStatusApproved, s.FinalizedAt, ids, models.ClaimStatusSubmitted)
		if err != nil {
			return fmt.Errorf("failed to build claim approval query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("failed to approve settled claims: %w", err)
		}
		for _, id := range s.ClaimIDs {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO claim_status_changes (claim_id, from_status, to_status, actor, reason, changed_at)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				id, models.ClaimStatusSubmitted, models.ClaimStatusApproved,
				"settlement", fmt.Sprintf("settlement %s", s.ID), s.FinalizedAt); err != nil {
				return fmt.Errorf("failed to record claim approval: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settlement: %w", err)
	}
	return nil
}

// SaveManualReviewItem queues an escalation for a human
func (r *settlementRepo) SaveManualReviewItem(ctx context.Context, item *models.ManualReviewItem) error {
	query := `
		INSERT INTO manual_review_items (id, entity_type, entity_id, reason, detail, queued_at)
		VALUES (:id, :entity_type, :entity_id, :reason, :detail, :queued_at)`

	if _, err := r.db.GetDB().NamedExecContext(ctx, query, item); err != nil {
		return fmt.Errorf("failed to save manual review item: %w", err)
	}
	return nil
}

// ListClaimEvidence returns the waybill and receipt references backing a
// claim, drawn from the consignment's volume records
func (r *settlementRepo) ListClaimEvidence(ctx context.Context, consignmentID uuid.UUID) ([]string, error) {
	var refs []string
	query := `
		SELECT document_ref FROM volume_records
		WHERE consignment_id = $1 AND document_ref <> ''
		ORDER BY source`

	if err := r.db.GetDB().SelectContext(ctx, &refs, query, consignmentID); err != nil {
		return nil, fmt.Errorf("failed to list claim evidence: %w", err)
	}
	return refs, nil
}
