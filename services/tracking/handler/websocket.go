package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/fuelops/uppf-engine/internal/pkg/logger"
	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/services/tracking"
)

// devicePointMessage is one position report on the device feed
type devicePointMessage struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
	SpeedKmh  *float64  `json:"speed_kmh,omitempty"`
	Heading   *float64  `json:"heading,omitempty"`
}

// devicePointAck tells the device whether the point was new or a replay
type devicePointAck struct {
	Accepted  bool      `json:"accepted"`
	Duplicate bool      `json:"duplicate"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// WebSocketHandler handles the continuous GPS feed from tracker devices
type WebSocketHandler struct {
	trackingUC tracking.TrackingUseCase
	upgrader   websocket.Upgrader
}

// NewWebSocketHandler creates a new device feed handler
func NewWebSocketHandler(trackingUC tracking.TrackingUseCase) *WebSocketHandler {
	return &WebSocketHandler{
		trackingUC: trackingUC,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// devices authenticate with the API key middleware before upgrade
				return true
			},
		},
	}
}

// HandleDeviceFeed upgrades the connection and ingests points until the
// device disconnects. Each point is acknowledged so the device can prune
// its local buffer.
func (h *WebSocketHandler) HandleDeviceFeed(c echo.Context) error {
	consignmentID, err := uuid.Parse(c.QueryParam("consignment_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "valid consignment_id query parameter is required")
	}

	ws, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	logger.Info("Device feed connected",
		logger.String("consignment_id", consignmentID.String()))

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			break
		}

		var report devicePointMessage
		if err := json.Unmarshal(msg, &report); err != nil {
			h.writeAck(ws, devicePointAck{Error: "malformed point", Timestamp: models.Now()})
			continue
		}

		point := &models.GPSPoint{
			ConsignmentID: consignmentID,
			Latitude:      report.Latitude,
			Longitude:     report.Longitude,
			Timestamp:     report.Timestamp,
			SpeedKmh:      report.SpeedKmh,
			Heading:       report.Heading,
		}

		duplicate, err := h.trackingUC.IngestPoint(c.Request().Context(), point)
		if err != nil {
			h.writeAck(ws, devicePointAck{Error: err.Error(), Timestamp: report.Timestamp})
			continue
		}

		h.writeAck(ws, devicePointAck{Accepted: true, Duplicate: duplicate, Timestamp: report.Timestamp})
	}

	logger.Info("Device feed disconnected",
		logger.String("consignment_id", consignmentID.String()))
	return nil
}

func (h *WebSocketHandler) writeAck(ws *websocket.Conn, ack devicePointAck) {
	if err := ws.WriteJSON(ack); err != nil {
		logger.Warn("Failed to write device ack", logger.Err(err))
	}
}
