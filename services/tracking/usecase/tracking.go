package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/logger"
	"github.com/fuelops/uppf-engine/internal/pkg/metrics"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/services/tracking"
)

// TrackingUC implements the tracking.TrackingUseCase interface
type TrackingUC struct {
	cfg       *models.Config
	repo      tracking.TrackingRepo
	gw        tracking.TrackingGW
	validator *Validator
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(cfg *models.Config, repo tracking.TrackingRepo, gw tracking.TrackingGW) tracking.TrackingUseCase {
	return &TrackingUC{
		cfg:       cfg,
		repo:      repo,
		gw:        gw,
		validator: NewValidator(cfg.GPS),
	}
}

// CreateConsignment registers a new fuel movement in Dispatched state
func (uc *TrackingUC) CreateConsignment(ctx context.Context, consignment *models.Consignment) error {
	if consignment.ID == uuid.Nil {
		consignment.ID = uuid.New()
	}
	if consignment.RouteID == "" {
		return apperrors.NewInputError("consignment", consignment.ID.String(),
			"route_id is required", "got empty route_id")
	}
	if consignment.DispatchedAt.IsZero() {
		consignment.DispatchedAt = models.Now()
	}
	consignment.Status = models.ConsignmentStatusDispatched

	if err := uc.repo.CreateConsignment(ctx, consignment); err != nil {
		return fmt.Errorf("failed to create consignment: %w", err)
	}

	logger.Info("Consignment created",
		logger.String("consignment_id", consignment.ID.String()),
		logger.String("route_id", consignment.RouteID))
	return nil
}

// GetConsignment retrieves a consignment by id
func (uc *TrackingUC) GetConsignment(ctx context.Context, id uuid.UUID) (*models.Consignment, error) {
	return uc.repo.GetConsignment(ctx, id)
}

// IngestPoint appends one GPS point to a consignment's trace. Ingestion is
// idempotent on (consignment id, timestamp): a duplicate is ignored, not an
// error.
func (uc *TrackingUC) IngestPoint(ctx context.Context, point *models.GPSPoint) (bool, error) {
	if err := validatePoint(point); err != nil {
		metrics.GPSPointsIngested.WithLabelValues("rejected").Inc()
		return false, err
	}

	consignment, err := uc.repo.GetConsignment(ctx, point.ConsignmentID)
	if err != nil {
		return false, err
	}
	if consignment.Status != models.ConsignmentStatusDispatched &&
		consignment.Status != models.ConsignmentStatusInTransit {
		metrics.GPSPointsIngested.WithLabelValues("rejected").Inc()
		return false, apperrors.NewInputError("consignment", consignment.ID.String(),
			"gps points accepted only between dispatch and arrival",
			"current status %s", consignment.Status)
	}

	duplicate, err := uc.repo.AppendPoint(ctx, point)
	if err != nil {
		return false, fmt.Errorf("failed to append gps point: %w", err)
	}

	if duplicate {
		metrics.GPSPointsIngested.WithLabelValues("duplicate").Inc()
	} else {
		metrics.GPSPointsIngested.WithLabelValues("accepted").Inc()
	}

	if consignment.Status == models.ConsignmentStatusDispatched {
		if err := uc.repo.UpdateConsignmentStatus(ctx, consignment.ID, models.ConsignmentStatusInTransit, nil); err != nil {
			logger.Warn("Failed to mark consignment in transit",
				logger.String("consignment_id", consignment.ID.String()),
				logger.Err(err))
		}
	}

	event := models.GPSPointRecorded{
		ConsignmentID: point.ConsignmentID,
		Timestamp:     point.Timestamp,
		Duplicate:     duplicate,
	}
	if err := uc.gw.PublishGPSPointRecorded(ctx, event); err != nil {
		// the point is stored; a missed event only delays downstream work
		logger.Warn("Failed to publish gps point event",
			logger.String("consignment_id", point.ConsignmentID.String()),
			logger.Err(err))
	}

	return duplicate, nil
}

// MarkArrival transitions the consignment to Arrived, archives its trace and
// runs the validator over the completed trace.
func (uc *TrackingUC) MarkArrival(ctx context.Context, id uuid.UUID, arrivedAt time.Time) (*models.GPSValidationResult, error) {
	consignment, err := uc.repo.GetConsignment(ctx, id)
	if err != nil {
		return nil, err
	}
	if consignment.Status == models.ConsignmentStatusArrived ||
		consignment.Status == models.ConsignmentStatusReconciled ||
		consignment.Status == models.ConsignmentStatusClosed {
		return nil, apperrors.NewInputError("consignment", id.String(),
			"arrival already recorded", "current status %s", consignment.Status)
	}
	if arrivedAt.IsZero() {
		arrivedAt = models.Now()
	}
	if arrivedAt.Before(consignment.DispatchedAt) {
		return nil, apperrors.NewInputError("consignment", id.String(),
			"arrival must not precede dispatch",
			"dispatched %s, arrival %s",
			models.FormatTime(consignment.DispatchedAt), models.FormatTime(arrivedAt))
	}

	if err := uc.repo.UpdateConsignmentStatus(ctx, id, models.ConsignmentStatusArrived, &arrivedAt); err != nil {
		return nil, fmt.Errorf("failed to mark arrival: %w", err)
	}

	trace, err := uc.repo.GetTrace(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load trace: %w", err)
	}
	if len(trace) > 0 {
		if err := uc.repo.ArchiveTrace(ctx, id, trace); err != nil {
			logger.Warn("Failed to archive trace",
				logger.String("consignment_id", id.String()),
				logger.Err(err))
		}
	}

	return uc.ValidateTrace(ctx, id)
}

// ValidateTrace runs the anomaly analysis over the stored trace and persists
// the verdict. Re-running over an unchanged trace produces the same verdict.
func (uc *TrackingUC) ValidateTrace(ctx context.Context, consignmentID uuid.UUID) (*models.GPSValidationResult, error) {
	consignment, err := uc.repo.GetConsignment(ctx, consignmentID)
	if err != nil {
		return nil, err
	}

	trace, err := uc.repo.GetTrace(ctx, consignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load trace: %w", err)
	}

	polyline, err := uc.repo.GetRoutePolyline(ctx, consignment.RouteID)
	if err != nil {
		logger.Warn("No planned polyline for route, skipping deviation analysis",
			logger.String("route_id", consignment.RouteID),
			logger.Err(err))
		polyline = nil
	}

	authorizer := func(lat, lng float64) (bool, error) {
		return uc.repo.IsNearApprovedStop(ctx, consignment.RouteID, lat, lng, uc.cfg.GPS.ApprovedStopRadiusM)
	}

	result, err := uc.validator.Validate(trace, polyline, authorizer)
	if err != nil {
		return nil, err
	}
	result.ConsignmentID = consignmentID

	for _, a := range result.Anomalies {
		metrics.AnomaliesDetected.WithLabelValues(string(a.Type), string(a.Severity)).Inc()
	}

	if err := uc.repo.SaveValidationResult(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save validation result: %w", err)
	}

	event := models.TraceValidated{
		ConsignmentID: consignmentID,
		Result:        *result,
		ValidatedAt:   result.ValidatedAt,
	}
	if err := uc.gw.PublishTraceValidated(ctx, event); err != nil {
		logger.Warn("Failed to publish trace validated event",
			logger.String("consignment_id", consignmentID.String()),
			logger.Err(err))
	}

	logger.Info("Trace validated",
		logger.String("consignment_id", consignmentID.String()),
		logger.Int("point_count", result.PointCount),
		logger.Int("anomalies", len(result.Anomalies)),
		logger.Float64("confidence", result.Confidence),
		logger.Bool("is_valid", result.IsValid))

	return result, nil
}

// GetValidation returns the stored validation verdict for a consignment
func (uc *TrackingUC) GetValidation(ctx context.Context, consignmentID uuid.UUID) (*models.GPSValidationResult, error) {
	return uc.repo.GetValidationResult(ctx, consignmentID)
}

func validatePoint(point *models.GPSPoint) error {
	if point == nil {
		return apperrors.NewInputError("gps_point", "", "point is required", "got nil")
	}
	id := point.ConsignmentID.String()
	if point.ConsignmentID == uuid.Nil {
		return apperrors.NewInputError("gps_point", id, "consignment_id is required", "got zero uuid")
	}
	if point.Latitude < -90 || point.Latitude > 90 {
		return apperrors.NewInputError("gps_point", id,
			"latitude must be between -90 and 90", "got %f", point.Latitude)
	}
	if point.Longitude < -180 || point.Longitude > 180 {
		return apperrors.NewInputError("gps_point", id,
			"longitude must be between -180 and 180", "got %f", point.Longitude)
	}
	if point.Timestamp.IsZero() {
		return apperrors.NewInputError("gps_point", id, "timestamp is required", "got zero time")
	}
	return nil
}
