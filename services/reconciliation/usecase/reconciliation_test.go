package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/services/reconciliation/mocks"
)

func testUCConfig() *models.Config {
	return &models.Config{Reconciliation: testReconConfig()}
}

func TestUpsertVolumeRecordSupersedesExistingResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockReconciliationRepo(ctrl)
	gw := mocks.NewMockReconciliationGW(ctrl)
	uc := NewReconciliationUC(testUCConfig(), repo, gw)

	id := uuid.New()
	rec := record(id, models.SourceDepot, 36000, 30, time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC))

	repo.EXPECT().GetConsignment(gomock.Any(), id).Return(testConsignment(id), nil)
	repo.EXPECT().UpsertVolumeRecord(gomock.Any(), &rec).Return(true, nil)
	repo.EXPECT().SupersedeResults(gomock.Any(), id).Return(nil)
	repo.EXPECT().GetVolumeRecords(gomock.Any(), id).Return([]models.VolumeRecord{rec}, nil)
	gw.EXPECT().PublishVolumeRecorded(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.VolumeRecorded) error {
			assert.True(t, event.Replaced)
			assert.Equal(t, []models.VolumeSource{models.SourceDepot}, event.SourcesPresent)
			return nil
		})

	replaced, err := uc.UpsertVolumeRecord(context.Background(), &rec)
	require.NoError(t, err)
	assert.True(t, replaced)
}

func TestUpsertVolumeRecordRejectsUnknownSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockReconciliationRepo(ctrl)
	gw := mocks.NewMockReconciliationGW(ctrl)
	uc := NewReconciliationUC(testUCConfig(), repo, gw)

	rec := record(uuid.New(), "refinery", 36000, 30, time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC))

	_, err := uc.UpsertVolumeRecord(context.Background(), &rec)
	require.Error(t, err)
	assert.True(t, apperrors.IsInputError(err))
}

func TestUpsertVolumeRecordRejectsOutOfRangeTemperature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockReconciliationRepo(ctrl)
	gw := mocks.NewMockReconciliationGW(ctrl)
	uc := NewReconciliationUC(testUCConfig(), repo, gw)

	rec := record(uuid.New(), models.SourceDepot, 36000, 80, time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC))

	_, err := uc.UpsertVolumeRecord(context.Background(), &rec)
	require.Error(t, err)
	assert.True(t, apperrors.IsInputError(err))
}

func TestReconcilePersistsVersionedResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockReconciliationRepo(ctrl)
	gw := mocks.NewMockReconciliationGW(ctrl)
	uc := NewReconciliationUC(testUCConfig(), repo, gw)

	id := uuid.New()
	consignment := testConsignment(id)
	records := []models.VolumeRecord{
		record(id, models.SourceDepot, 36000, 30, consignment.DispatchedAt),
		record(id, models.SourceTransporter, 35850, 28, consignment.DispatchedAt.Add(8*time.Hour)),
		record(id, models.SourceStation, 35800, 27, consignment.DispatchedAt.Add(9*time.Hour)),
	}

	repo.EXPECT().GetConsignment(gomock.Any(), id).Return(consignment, nil)
	repo.EXPECT().GetVolumeRecords(gomock.Any(), id).Return(records, nil)
	repo.EXPECT().NextVersion(gomock.Any(), id).Return(2, nil)
	repo.EXPECT().SaveResult(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, result *models.ReconciliationResult) error {
			assert.Equal(t, 2, result.Version)
			assert.Equal(t, models.ReconciliationMatched, result.Status)
			return nil
		})
	gw.EXPECT().PublishReconciliationCompleted(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Reconcile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.ReconciliationMatched, result.Status)
	assert.Equal(t, 2, result.Version)
}

func TestReconcileWithMissingRecordsStaysPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockReconciliationRepo(ctrl)
	gw := mocks.NewMockReconciliationGW(ctrl)
	uc := NewReconciliationUC(testUCConfig(), repo, gw)

	id := uuid.New()
	consignment := testConsignment(id)

	repo.EXPECT().GetConsignment(gomock.Any(), id).Return(consignment, nil)
	repo.EXPECT().GetVolumeRecords(gomock.Any(), id).Return([]models.VolumeRecord{
		record(id, models.SourceDepot, 36000, 30, consignment.DispatchedAt),
	}, nil)
	repo.EXPECT().NextVersion(gomock.Any(), id).Return(1, nil)
	// pending runs persist nothing and publish nothing

	result, err := uc.Reconcile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, models.ReconciliationPending, result.Status)
}
