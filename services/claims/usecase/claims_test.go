package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/services/claims/mocks"
)

func testUCConfig() *models.Config {
	return &models.Config{
		Claims: testClaimsConfig(),
		Reconciliation: models.ReconciliationConfig{
			HardFailCeilingPct: 5.0,
		},
	}
}

func expectInputs(repo *mocks.MockClaimsRepo, in CalculatorInput) {
	id := in.Consignment.ID
	repo.EXPECT().GetConsignment(gomock.Any(), id).Return(in.Consignment, nil)
	repo.EXPECT().GetValidationResult(gomock.Any(), id).Return(in.Validation, nil)
	repo.EXPECT().GetLatestReconciliation(gomock.Any(), id).Return(in.Reconciliation, nil)
	repo.EXPECT().GetEqualisationPoint(gomock.Any(), in.Consignment.RouteID, in.Consignment.DispatchedAt).
		Return(&models.EqualisationPoint{RouteID: in.Consignment.RouteID, ThresholdKm: in.ThresholdKm}, nil)
	repo.EXPECT().GetTariffRate(gomock.Any(), in.Consignment.RouteID, in.Consignment.DispatchedAt).
		Return(&in.Tariff, nil)
	repo.EXPECT().RouteVarianceBaseline(gomock.Any(), in.Consignment.RouteID).
		Return(in.HistoricalVariancePct, nil)
}

func TestComputeClaimHappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockClaimsRepo(ctrl)
	gw := mocks.NewMockClaimsGW(ctrl)
	uc := NewClaimsUC(testUCConfig(), repo, gw)

	id := uuid.New()
	in := testInput(id)

	expectInputs(repo, in)
	repo.EXPECT().GetClaimByConsignment(gomock.Any(), id).
		Return(nil, fmt.Errorf("claim for consignment %s: %w", id, apperrors.ErrNotFound))
	repo.EXPECT().SaveClaim(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, claim *models.Claim) error {
			assert.Equal(t, models.ClaimStatusReadyToSubmit, claim.Status)
			assert.Equal(t, "2026-03-H1", claim.WindowID)
			return nil
		})
	repo.EXPECT().AppendStatusChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, change *models.ClaimStatusChange) error {
			assert.Equal(t, models.ClaimStatus(""), change.From)
			assert.Equal(t, models.ClaimStatusReadyToSubmit, change.To)
			assert.Equal(t, "system", change.Actor)
			return nil
		})
	gw.EXPECT().PublishClaimCreated(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishClaimReady(gomock.Any(), gomock.Any()).Return(nil)

	claim, err := uc.ComputeClaim(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, claim.Amount.Equal(decimal.RequireFromString("39.51")),
		"amount was %s", claim.Amount)
}

func TestComputeClaimWaitsForReconciliation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockClaimsRepo(ctrl)
	gw := mocks.NewMockClaimsGW(ctrl)
	uc := NewClaimsUC(testUCConfig(), repo, gw)

	id := uuid.New()
	in := testInput(id)

	repo.EXPECT().GetConsignment(gomock.Any(), id).Return(in.Consignment, nil)
	repo.EXPECT().GetValidationResult(gomock.Any(), id).Return(in.Validation, nil)
	repo.EXPECT().GetLatestReconciliation(gomock.Any(), id).
		Return(nil, fmt.Errorf("reconciliation for consignment %s: %w", id, apperrors.ErrPending))

	_, err := uc.ComputeClaim(context.Background(), id)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPending)
}

func TestComputeClaimRefusesSubmittedClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockClaimsRepo(ctrl)
	gw := mocks.NewMockClaimsGW(ctrl)
	uc := NewClaimsUC(testUCConfig(), repo, gw)

	id := uuid.New()
	in := testInput(id)

	expectInputs(repo, in)
	repo.EXPECT().GetClaimByConsignment(gomock.Any(), id).Return(&models.Claim{
		ID:            uuid.New(),
		ConsignmentID: id,
		Status:        models.ClaimStatusSubmitted,
	}, nil)

	_, err := uc.ComputeClaim(context.Background(), id)
	require.Error(t, err)
	assert.True(t, apperrors.IsInputError(err))
}

func TestComputeClaimRecomputationKeepsClaimIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockClaimsRepo(ctrl)
	gw := mocks.NewMockClaimsGW(ctrl)
	uc := NewClaimsUC(testUCConfig(), repo, gw)

	id := uuid.New()
	in := testInput(id)
	existingID := uuid.New()
	createdAt := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	expectInputs(repo, in)
	repo.EXPECT().GetClaimByConsignment(gomock.Any(), id).Return(&models.Claim{
		ID:            existingID,
		ConsignmentID: id,
		Status:        models.ClaimStatusNeedsReview,
		CreatedAt:     createdAt,
	}, nil)
	repo.EXPECT().SaveClaim(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, claim *models.Claim) error {
			assert.Equal(t, existingID, claim.ID)
			assert.Equal(t, createdAt, claim.CreatedAt)
			return nil
		})
	repo.EXPECT().AppendStatusChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, change *models.ClaimStatusChange) error {
			assert.Equal(t, models.ClaimStatusNeedsReview, change.From)
			assert.Equal(t, models.ClaimStatusReadyToSubmit, change.To)
			return nil
		})
	gw.EXPECT().PublishClaimCreated(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishClaimReady(gomock.Any(), gomock.Any()).Return(nil)

	claim, err := uc.ComputeClaim(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, existingID, claim.ID)
}

func TestComputeClaimFallsBackToDefaultTariff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockClaimsRepo(ctrl)
	gw := mocks.NewMockClaimsGW(ctrl)
	uc := NewClaimsUC(testUCConfig(), repo, gw)

	id := uuid.New()
	in := testInput(id)

	repo.EXPECT().GetConsignment(gomock.Any(), id).Return(in.Consignment, nil)
	repo.EXPECT().GetValidationResult(gomock.Any(), id).Return(in.Validation, nil)
	repo.EXPECT().GetLatestReconciliation(gomock.Any(), id).Return(in.Reconciliation, nil)
	repo.EXPECT().GetEqualisationPoint(gomock.Any(), in.Consignment.RouteID, in.Consignment.DispatchedAt).
		Return(&models.EqualisationPoint{RouteID: in.Consignment.RouteID, ThresholdKm: 450}, nil)
	repo.EXPECT().GetTariffRate(gomock.Any(), in.Consignment.RouteID, in.Consignment.DispatchedAt).
		Return(nil, fmt.Errorf("tariff rate for route %s: %w", in.Consignment.RouteID, apperrors.ErrNotFound))
	repo.EXPECT().RouteVarianceBaseline(gomock.Any(), in.Consignment.RouteID).Return(0.0, nil)
	repo.EXPECT().GetClaimByConsignment(gomock.Any(), id).
		Return(nil, fmt.Errorf("claim for consignment %s: %w", id, apperrors.ErrNotFound))
	repo.EXPECT().SaveClaim(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().AppendStatusChange(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishClaimCreated(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishClaimReady(gomock.Any(), gomock.Any()).Return(nil)

	claim, err := uc.ComputeClaim(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, claim.TariffRate.Equal(decimal.NewFromFloat(0.15)))
	assert.Equal(t, "GHS", claim.Currency)
}

func TestSubmitClaimFreezesReadyClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockClaimsRepo(ctrl)
	gw := mocks.NewMockClaimsGW(ctrl)
	uc := NewClaimsUC(testUCConfig(), repo, gw)

	claimID := uuid.New()
	repo.EXPECT().GetClaim(gomock.Any(), claimID).Return(&models.Claim{
		ID:       claimID,
		WindowID: "2026-03-H1",
		Status:   models.ClaimStatusReadyToSubmit,
	}, nil)
	repo.EXPECT().UpdateClaimStatus(gomock.Any(), claimID,
		models.ClaimStatusReadyToSubmit, models.ClaimStatusSubmitted, gomock.Any()).Return(nil)
	repo.EXPECT().AppendStatusChange(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, change *models.ClaimStatusChange) error {
			assert.Equal(t, "auditor-7", change.Actor)
			return nil
		})

	claim, err := uc.SubmitClaim(context.Background(), claimID, "auditor-7")
	require.NoError(t, err)
	assert.Equal(t, models.ClaimStatusSubmitted, claim.Status)
}

func TestSubmitClaimRejectsNeedsReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockClaimsRepo(ctrl)
	gw := mocks.NewMockClaimsGW(ctrl)
	uc := NewClaimsUC(testUCConfig(), repo, gw)

	claimID := uuid.New()
	repo.EXPECT().GetClaim(gomock.Any(), claimID).Return(&models.Claim{
		ID:     claimID,
		Status: models.ClaimStatusNeedsReview,
	}, nil)

	_, err := uc.SubmitClaim(context.Background(), claimID, "auditor-7")
	require.Error(t, err)
	assert.True(t, apperrors.IsInputError(err))
}
