package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/fuelops/uppf-engine/internal/pkg/apperrors"
	"github.com/fuelops/uppf-engine/internal/pkg/constants"
	"github.com/fuelops/uppf-engine/internal/pkg/database"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/internal/utils"
	"github.com/fuelops/uppf-engine/services/tracking"
)

const (
	// stopMarkerTTL bounds how long the redis geo set for a route's approved
	// stops is trusted before being reloaded from postgres
	stopMarkerTTL = 24 * time.Hour
)

type trackingRepo struct {
	db          *database.PostgresClient
	redisClient *database.RedisClient
}

// NewTrackingRepository creates a new tracking repository
func NewTrackingRepository(db *database.PostgresClient, redisClient *database.RedisClient) tracking.TrackingRepo {
	return &trackingRepo{
		db:          db,
		redisClient: redisClient,
	}
}

// CreateConsignment inserts a new consignment
func (r *trackingRepo) CreateConsignment(ctx context.Context, c *models.Consignment) error {
	now := models.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `
		INSERT INTO consignments (
			id, depot_id, station_id, product_type, route_id,
			planned_distance_km, status, dispatched_at, created_at, updated_at
		) VALUES (
			:id, :depot_id, :station_id, :product_type, :route_id,
			:planned_distance_km, :status, :dispatched_at, :created_at, :updated_at
		)`

	if _, err := r.db.GetDB().NamedExecContext(ctx, query, c); err != nil {
		return fmt.Errorf("failed to insert consignment: %w", err)
	}
	return nil
}

// GetConsignment retrieves a consignment by id
func (r *trackingRepo) GetConsignment(ctx context.Context, id uuid.UUID) (*models.Consignment, error) {
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

// UpdateConsignmentStatus transitions a consignment's lifecycle state
func (r *trackingRepo) UpdateConsignmentStatus(ctx context.Context, id uuid.UUID, status models.ConsignmentStatus, arrivedAt *time.Time) error {
	query := `
		UPDATE consignments
		SET status = $2, arrived_at = COALESCE($3, arrived_at), updated_at = $4
		WHERE id = $1`

	res, err := r.db.GetDB().ExecContext(ctx, query, id, status, arrivedAt, models.Now())
	if err != nil {
		return fmt.Errorf("failed to update consignment status: %w", err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("consignment %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// AppendPoint stores a GPS point in the consignment's trace sorted set. The
// duplicate decision is a single SADD on the seen-timestamp set, so two
// concurrent submissions of the same timestamp cannot both insert; only the
// first writer reaches the trace.
func (r *trackingRepo) AppendPoint(ctx context.Context, point *models.GPSPoint) (bool, error) {
	seenKey := fmt.Sprintf(constants.KeyConsignmentPoints, point.ConsignmentID)
	added, err := r.redisClient.SAdd(ctx, seenKey, strconv.FormatInt(point.Timestamp.UnixNano(), 10))
	if err != nil {
		return false, fmt.Errorf("failed to check trace for duplicates: %w", err)
	}
	if added == 0 {
		return true, nil
	}

	data, err := json.Marshal(point)
	if err != nil {
		return false, fmt.Errorf("failed to marshal gps point: %w", err)
	}
	key := fmt.Sprintf(constants.KeyConsignmentTrace, point.ConsignmentID)
	if _, err := r.redisClient.ZAdd(ctx, key, float64(point.Timestamp.UnixNano()), string(data)); err != nil {
		return false, fmt.Errorf("failed to append gps point: %w", err)
	}
	return false, nil
}

// GetTrace returns the consignment's trace in timestamp order. Traces of
// arrived consignments may already be evicted from redis, in which case the
// postgres archive is read instead.
func (r *trackingRepo) GetTrace(ctx context.Context, consignmentID uuid.UUID) ([]models.GPSPoint, error) {
	key := fmt.Sprintf(constants.KeyConsignmentTrace, consignmentID)

	members, err := r.redisClient.ZRangeByScore(ctx, key, "-inf", "+inf")
	if err != nil {
		return nil, fmt.Errorf("failed to read trace: %w", err)
	}

	if len(members) > 0 {
		points := make([]models.GPSPoint, 0, len(members))
		for _, m := range members {
			var p models.GPSPoint
			if err := json.Unmarshal([]byte(m), &p); err != nil {
				return nil, fmt.Errorf("corrupt gps point in trace %s: %w", consignmentID, err)
			}
			points = append(points, p)
		}
		return points, nil
	}

	var points []models.GPSPoint
	query := `
		SELECT consignment_id, latitude, longitude, timestamp, speed_kmh, heading
		FROM gps_points
		WHERE consignment_id = $1
		ORDER BY timestamp ASC`
	if err := r.db.GetDB().SelectContext(ctx, &points, query, consignmentID); err != nil {
		return nil, fmt.Errorf("failed to read archived trace: %w", err)
	}
	return points, nil
}

// ArchiveTrace batch-writes the completed trace to postgres for audit
func (r *trackingRepo) ArchiveTrace(ctx context.Context, consignmentID uuid.UUID, points []models.GPSPoint) error {
	if len(points) == 0 {
		return nil
	}

	tx, err := r.db.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin archive transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO gps_points (consignment_id, latitude, longitude, timestamp, speed_kmh, heading)
		VALUES (:consignment_id, :latitude, :longitude, :timestamp, :speed_kmh, :heading)
		ON CONFLICT (consignment_id, timestamp) DO NOTHING`

	for _, p := range points {
		if _, err := tx.NamedExecContext(ctx, query, p); err != nil {
			return fmt.Errorf("failed to archive gps point: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trace archive: %w", err)
	}
	return nil
}

type polylineVertex struct {
	Latitude  float64 `db:"latitude"`
	Longitude float64 `db:"longitude"`
}

// GetRoutePolyline returns the planned route's vertices in sequence order
func (r *trackingRepo) GetRoutePolyline(ctx context.Context, routeID string) ([]utils.GeoPoint, error) {
	var vertices []polylineVertex
	query := `
		SELECT latitude, longitude
		FROM route_polylines
		WHERE route_id = $1
		ORDER BY seq ASC`

	if err := r.db.GetDB().SelectContext(ctx, &vertices, query, routeID); err != nil {
		return nil, fmt.Errorf("failed to load route polyline: %w", err)
	}

	polyline := make([]utils.GeoPoint, len(vertices))
	for i, v := range vertices {
		polyline[i] = utils.GeoPoint{Latitude: v.Latitude, Longitude: v.Longitude}
	}
	return polyline, nil
}

// IsNearApprovedStop reports whether a coordinate falls within radiusM of an
// approved stop on the route. Stops are served from a redis geo set seeded
// from postgres, so repeated cluster checks during validation stay cheap.
func (r *trackingRepo) IsNearApprovedStop(ctx context.Context, routeID string, lat, lng, radiusM float64) (bool, error) {
	if err := r.ensureStopsLoaded(ctx, routeID); err != nil {
		return false, err
	}

	key := fmt.Sprintf(constants.KeyApprovedStopsGeo, routeID)
	locations, err := r.redisClient.GeoRadius(ctx, key, lng, lat, radiusM, "m")
	if err != nil {
		return false, fmt.Errorf("failed to query approved stops: %w", err)
	}
	return len(locations) > 0, nil
}

// ensureStopsLoaded seeds the route's geo set from postgres when the marker
// key is absent or expired
func (r *trackingRepo) ensureStopsLoaded(ctx context.Context, routeID string) error {
	markerKey := fmt.Sprintf(constants.KeyApprovedStopsGeo+":loaded", routeID)
	if _, err := r.redisClient.Get(ctx, markerKey); err == nil {
		return nil
	}

	var stops []models.ApprovedStop
	query := `SELECT id, route_id, name, latitude, longitude, radius_m FROM approved_stops WHERE route_id = $1`
	if err := r.db.GetDB().SelectContext(ctx, &stops, query, routeID); err != nil {
		return fmt.Errorf("failed to load approved stops: %w", err)
	}

	geoKey := fmt.Sprintf(constants.KeyApprovedStopsGeo, routeID)
	for _, s := range stops {
		if err := r.redisClient.GeoAdd(ctx, geoKey, s.Longitude, s.Latitude, s.ID.String()); err != nil {
			return fmt.Errorf("failed to seed approved stop geo set: %w", err)
		}
	}

	if err := r.redisClient.Set(ctx, markerKey, "1", stopMarkerTTL); err != nil {
		return fmt.Errorf("failed to set approved stop marker: %w", err)
	}
	return nil
}

type validationRow struct {
	ConsignmentID uuid.UUID `db:"consignment_id"`
	Result        []byte    `db:"result"`
	Confidence    float64   `db:"confidence"`
	IsValid       bool      `db:"is_valid"`
	ValidatedAt   time.Time `db:"validated_at"`
}

// SaveValidationResult upserts the validator's verdict for a consignment
func (r *trackingRepo) SaveValidationResult(ctx context.Context, result *models.GPSValidationResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal validation result: %w", err)
	}

	query := `
		INSERT INTO gps_validation_results (consignment_id, result, confidence, is_valid, validated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (consignment_id) DO UPDATE
		SET result = EXCLUDED.result,
		    confidence = EXCLUDED.confidence,
		    is_valid = EXCLUDED.is_valid,
		    validated_at = EXCLUDED.validated_at`

	if _, err := r.db.GetDB().ExecContext(ctx, query,
		result.ConsignmentID, data, result.Confidence, result.IsValid, result.ValidatedAt); err != nil {
		return fmt.Errorf("failed to save validation result: %w", err)
	}
	return nil
}

// GetValidationResult returns the stored verdict for a consignment
func (r *trackingRepo) GetValidationResult(ctx context.Context, consignmentID uuid.UUID) (*models.GPSValidationResult, error) {
	var row validationRow
	query := `SELECT consignment_id, result, confidence, is_valid, validated_at FROM gps_validation_results WHERE consignment_id = $1`

	if err := r.db.GetDB().GetContext(ctx, &row, query, consignmentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("validation result for consignment %s: %w", consignmentID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get validation result: %w", err)
	}

	var result models.GPSValidationResult
	if err := json.Unmarshal(row.Result, &result); err != nil {
		return nil, fmt.Errorf("corrupt validation result for %s: %w", consignmentID, err)
	}
	return &result, nil
}
