package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/services/settlement/mocks"
)

func testUCConfig() *models.Config {
	return &models.Config{Settlement: testSettlementConfig()}
}

func expectLock(repo *mocks.MockSettlementRepo, windowID string) {
	repo.EXPECT().WithWindowLock(gomock.Any(), windowID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn func() error) error {
			return fn()
		})
}

func notFound(windowID string) error {
	return fmt.Errorf("settlement for window %s: %w", windowID, apperrors.ErrNotFound)
}

func TestRunSettlementHappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSettlementRepo(ctrl)
	gw := mocks.NewMockSettlementGW(ctrl)
	ledger := mocks.NewMockLedgerGW(ctrl)
	uc := NewSettlementUC(testUCConfig(), repo, gw, ledger)

	windowID := "2026-03-H1"
	claims := []models.Claim{submittedClaim("39.51"), submittedClaim("120.00")}
	notice := noticeFor(claims, "10.00", "5.00")

	expectLock(repo, windowID)
	repo.EXPECT().GetSettlementByWindow(gomock.Any(), windowID).Return(nil, notFound(windowID))
	repo.EXPECT().ListSubmittedClaims(gomock.Any(), windowID).Return(claims, nil)
	repo.EXPECT().SaveSettlement(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Settlement, instructions []models.PostingInstruction) error {
			assert.Equal(t, models.SettlementStatusCompleted, s.Status)
			assert.Len(t, instructions, 4) // two claims, penalties, bonuses
			return nil
		})
	gw.EXPECT().PublishSettlementCompleted(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishLedgerInstructions(gomock.Any(), gomock.Any()).Return(nil)
	ledger.EXPECT().PostInstructions(gomock.Any(), gomock.Any()).Return(nil)

	result, instructions, err := uc.RunSettlement(context.Background(), windowID, notice)
	require.NoError(t, err)
	assert.True(t, result.NetAmount.Equal(decimal.RequireFromString("154.51")),
		"net was %s", result.NetAmount)
	assert.Len(t, instructions, 4)
}

func TestRunSettlementWindowLocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSettlementRepo(ctrl)
	gw := mocks.NewMockSettlementGW(ctrl)
	ledger := mocks.NewMockLedgerGW(ctrl)
	uc := NewSettlementUC(testUCConfig(), repo, gw, ledger)

	windowID := "2026-03-H1"
	repo.EXPECT().WithWindowLock(gomock.Any(), windowID, gomock.Any()).
		Return(fmt.Errorf("window %s: %w", windowID, apperrors.ErrWindowLocked))

	_, _, err := uc.RunSettlement(context.Background(), windowID, models.SettlementNotice{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrWindowLocked)
}

func TestRunSettlementRejectsSecondRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSettlementRepo(ctrl)
	gw := mocks.NewMockSettlementGW(ctrl)
	ledger := mocks.NewMockLedgerGW(ctrl)
	uc := NewSettlementUC(testUCConfig(), repo, gw, ledger)

	windowID := "2026-03-H1"
	expectLock(repo, windowID)
	repo.EXPECT().GetSettlementByWindow(gomock.Any(), windowID).Return(&models.Settlement{
		ID:       uuid.New(),
		WindowID: windowID,
		Status:   models.SettlementStatusCompleted,
	}, nil)

	_, _, err := uc.RunSettlement(context.Background(), windowID, models.SettlementNotice{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateSettlement)
}

func TestRunSettlementRequiresClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSettlementRepo(ctrl)
	gw := mocks.NewMockSettlementGW(ctrl)
	ledger := mocks.NewMockLedgerGW(ctrl)
	uc := NewSettlementUC(testUCConfig(), repo, gw, ledger)

	windowID := "2026-03-H1"
	expectLock(repo, windowID)
	repo.EXPECT().GetSettlementByWindow(gomock.Any(), windowID).Return(nil, notFound(windowID))
	repo.EXPECT().ListSubmittedClaims(gomock.Any(), windowID).Return(nil, nil)

	_, _, err := uc.RunSettlement(context.Background(), windowID, models.SettlementNotice{})
	require.Error(t, err)
	assert.True(t, apperrors.IsInputError(err))
}

func TestRunSettlementMismatchEscalates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSettlementRepo(ctrl)
	gw := mocks.NewMockSettlementGW(ctrl)
	ledger := mocks.NewMockLedgerGW(ctrl)
	uc := NewSettlementUC(testUCConfig(), repo, gw, ledger)

	windowID := "2026-03-H1"
	claims := []models.Claim{submittedClaim("100.00")}
	notice := noticeFor(claims, "0", "0")
	notice.TotalAmount = notice.TotalAmount.Add(decimal.RequireFromString("5.00"))

	expectLock(repo, windowID)
	repo.EXPECT().GetSettlementByWindow(gomock.Any(), windowID).Return(nil, notFound(windowID))
	repo.EXPECT().ListSubmittedClaims(gomock.Any(), windowID).Return(claims, nil)
	// the mismatch run is still persisted, then escalated
	repo.EXPECT().SaveSettlement(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.Settlement, _ []models.PostingInstruction) error {
			assert.Equal(t, models.SettlementStatusMismatch, s.Status)
			return nil
		})
	repo.EXPECT().SaveManualReviewItem(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishSettlementCompleted(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishReviewQueued(gomock.Any(), gomock.Any()).Return(nil)
	// no ledger posting for a run that did not tie out

	result, _, err := uc.RunSettlement(context.Background(), windowID, notice)
	require.Error(t, err)

	var mismatch *apperrors.ReconciliationMismatchError
	assert.ErrorAs(t, err, &mismatch)
	require.NotNil(t, result)
	assert.Equal(t, models.SettlementStatusMismatch, result.Status)
}

func TestRunSettlementLedgerFailurePreservesSettlement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSettlementRepo(ctrl)
	gw := mocks.NewMockSettlementGW(ctrl)
	ledger := mocks.NewMockLedgerGW(ctrl)
	uc := NewSettlementUC(testUCConfig(), repo, gw, ledger)

	windowID := "2026-03-H1"
	claims := []models.Claim{submittedClaim("100.00")}
	notice := noticeFor(claims, "0", "0")

	expectLock(repo, windowID)
	repo.EXPECT().GetSettlementByWindow(gomock.Any(), windowID).Return(nil, notFound(windowID))
	repo.EXPECT().ListSubmittedClaims(gomock.Any(), windowID).Return(claims, nil)
	repo.EXPECT().SaveSettlement(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishSettlementCompleted(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishLedgerInstructions(gomock.Any(), gomock.Any()).Return(nil)
	ledger.EXPECT().PostInstructions(gomock.Any(), gomock.Any()).
		Return(&apperrors.ExternalFailureError{Target: "ledger", Attempts: 4})
	repo.EXPECT().SaveManualReviewItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item *models.ManualReviewItem) error {
			assert.Equal(t, "ledger_posting", item.EntityType)
			return nil
		})
	gw.EXPECT().PublishReviewQueued(gomock.Any(), gomock.Any()).Return(nil)

	// an exhausted external call never rolls the settlement back
	result, _, err := uc.RunSettlement(context.Background(), windowID, notice)
	require.NoError(t, err)
	assert.Equal(t, models.SettlementStatusCompleted, result.Status)
}

func TestBuildRegulatorSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSettlementRepo(ctrl)
	gw := mocks.NewMockSettlementGW(ctrl)
	ledger := mocks.NewMockLedgerGW(ctrl)
	uc := NewSettlementUC(testUCConfig(), repo, gw, ledger)

	windowID := "2026-03-H1"
	settlementID := uuid.New()
	claim := submittedClaim("39.51")
	claim.ConsignmentID = uuid.New()
	claim.KmExcess = 263.4
	claim.LitresMoved = 36000
	claim.Status = models.ClaimStatusApproved

	repo.EXPECT().GetSettlementByWindow(gomock.Any(), windowID).Return(&models.Settlement{
		ID:           settlementID,
		WindowID:     windowID,
		TotalSettled: decimal.RequireFromString("39.51"),
		Status:       models.SettlementStatusCompleted,
	}, nil)
	repo.EXPECT().ListSettledClaims(gomock.Any(), windowID).Return([]models.Claim{claim}, nil)
	repo.EXPECT().ListClaimEvidence(gomock.Any(), claim.ConsignmentID).
		Return([]string{"WB-2026-0001", "RCPT-2026-0001"}, nil)

	submission, err := uc.BuildRegulatorSubmission(context.Background(), windowID)
	require.NoError(t, err)

	assert.Equal(t, "1.0", submission.SchemaVersion)
	assert.Equal(t, settlementID, submission.SettlementID)
	require.Len(t, submission.Lines, 1)
	line := submission.Lines[0]
	assert.Equal(t, claim.ID, line.ClaimID)
	assert.InDelta(t, 263.4, line.KmExcess, 1e-9)
	assert.Equal(t, []string{"WB-2026-0001", "RCPT-2026-0001"}, line.EvidenceRefs)
	assert.True(t, submission.TotalAmount.Equal(decimal.RequireFromString("39.51")))
}
