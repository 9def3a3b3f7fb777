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
	"github.com/fuelops/uppf-engine/services/tracking/mocks"
)

func testConfig() *models.Config {
	return &models.Config{GPS: testGPSConfig()}
}

func inTransitConsignment(id uuid.UUID) *models.Consignment {
	return &models.Consignment{
		ID:           id,
		RouteID:      "TEMA-KUMASI-01",
		Status:       models.ConsignmentStatusInTransit,
		DispatchedAt: time.Date(2026, 3, 10, 5, 0, 0, 0, time.UTC),
	}
}

func TestIngestPointAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTrackingRepo(ctrl)
	gw := mocks.NewMockTrackingGW(ctrl)
	uc := NewTrackingUC(testConfig(), repo, gw)

	id := uuid.New()
	pt := &models.GPSPoint{
		ConsignmentID: id,
		Latitude:      5.6,
		Longitude:     -0.2,
		Timestamp:     time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC),
	}

	repo.EXPECT().GetConsignment(gomock.Any(), id).Return(inTransitConsignment(id), nil)
	repo.EXPECT().AppendPoint(gomock.Any(), pt).Return(false, nil)
	gw.EXPECT().PublishGPSPointRecorded(gomock.Any(), gomock.Any()).Return(nil)

	duplicate, err := uc.IngestPoint(context.Background(), pt)
	require.NoError(t, err)
	assert.False(t, duplicate)
}

func TestIngestPointDuplicateIsIgnoredNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTrackingRepo(ctrl)
	gw := mocks.NewMockTrackingGW(ctrl)
	uc := NewTrackingUC(testConfig(), repo, gw)

	id := uuid.New()
	pt := &models.GPSPoint{
		ConsignmentID: id,
		Latitude:      5.6,
		Longitude:     -0.2,
		Timestamp:     time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC),
	}

	repo.EXPECT().GetConsignment(gomock.Any(), id).Return(inTransitConsignment(id), nil)
	repo.EXPECT().AppendPoint(gomock.Any(), pt).Return(true, nil)
	gw.EXPECT().PublishGPSPointRecorded(gomock.Any(), gomock.Any()).Return(nil)

	duplicate, err := uc.IngestPoint(context.Background(), pt)
	require.NoError(t, err)
	assert.True(t, duplicate)
}

func TestIngestPointRejectsMalformedCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTrackingRepo(ctrl)
	gw := mocks.NewMockTrackingGW(ctrl)
	uc := NewTrackingUC(testConfig(), repo, gw)

	pt := &models.GPSPoint{
		ConsignmentID: uuid.New(),
		Latitude:      95.0,
		Longitude:     -0.2,
		Timestamp:     time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC),
	}

	_, err := uc.IngestPoint(context.Background(), pt)
	require.Error(t, err)
	assert.True(t, apperrors.IsInputError(err))
}

func TestIngestPointRejectsArrivedConsignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTrackingRepo(ctrl)
	gw := mocks.NewMockTrackingGW(ctrl)
	uc := NewTrackingUC(testConfig(), repo, gw)

	id := uuid.New()
	arrived := inTransitConsignment(id)
	arrived.Status = models.ConsignmentStatusArrived

	repo.EXPECT().GetConsignment(gomock.Any(), id).Return(arrived, nil)

	pt := &models.GPSPoint{
		ConsignmentID: id,
		Latitude:      5.6,
		Longitude:     -0.2,
		Timestamp:     time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC),
	}

	_, err := uc.IngestPoint(context.Background(), pt)
	require.Error(t, err)
	assert.True(t, apperrors.IsInputError(err))
}

func TestMarkArrivalValidatesCompletedTrace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTrackingRepo(ctrl)
	gw := mocks.NewMockTrackingGW(ctrl)
	uc := NewTrackingUC(testConfig(), repo, gw)

	id := uuid.New()
	start := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	trace := []models.GPSPoint{
		point(id, 0, start),
		point(id, 0.09, start.Add(10*time.Minute)),
		point(id, 0.18, start.Add(20*time.Minute)),
	}
	arrivedAt := start.Add(30 * time.Minute)

	repo.EXPECT().GetConsignment(gomock.Any(), id).Return(inTransitConsignment(id), nil).Times(2)
	repo.EXPECT().UpdateConsignmentStatus(gomock.Any(), id, models.ConsignmentStatusArrived, &arrivedAt).Return(nil)
	repo.EXPECT().GetTrace(gomock.Any(), id).Return(trace, nil).Times(2)
	repo.EXPECT().ArchiveTrace(gomock.Any(), id, trace).Return(nil)
	repo.EXPECT().GetRoutePolyline(gomock.Any(), "TEMA-KUMASI-01").Return(nil, nil)
	repo.EXPECT().SaveValidationResult(gomock.Any(), gomock.Any()).Return(nil)
	gw.EXPECT().PublishTraceValidated(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.MarkArrival(context.Background(), id, arrivedAt)
	require.NoError(t, err)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Anomalies)
	assert.InDelta(t, 20.0, result.TotalDistanceKm, 1.0)
}

func TestMarkArrivalRejectsArrivalBeforeDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTrackingRepo(ctrl)
	gw := mocks.NewMockTrackingGW(ctrl)
	uc := NewTrackingUC(testConfig(), repo, gw)

	id := uuid.New()
	repo.EXPECT().GetConsignment(gomock.Any(), id).Return(inTransitConsignment(id), nil)

	_, err := uc.MarkArrival(context.Background(), id, time.Date(2026, 3, 10, 4, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.True(t, apperrors.IsInputError(err))
}

func TestCreateConsignmentRequiresRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockTrackingRepo(ctrl)
	gw := mocks.NewMockTrackingGW(ctrl)
	uc := NewTrackingUC(testConfig(), repo, gw)

	err := uc.CreateConsignment(context.Background(), &models.Consignment{})
	require.Error(t, err)
	assert.True(t, apperrors.IsInputError(err))
}
