package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := SuccessResponse(c, http.StatusOK, "reconciliation complete", map[string]interface{}{"status": "matched"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "reconciliation complete", resp.Message)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		send     func(echo.Context) error
		wantCode int
	}{
		{name: "bad request", send: func(c echo.Context) error { return BadRequestResponse(c, "missing waybill number") }, wantCode: http.StatusBadRequest},
		{name: "not found", send: func(c echo.Context) error { return NotFoundResponse(c, "") }, wantCode: http.StatusNotFound},
		{name: "unauthorized", send: func(c echo.Context) error { return UnauthorizedResponse(c, "") }, wantCode: http.StatusUnauthorized},
		{name: "conflict", send: func(c echo.Context) error { return ConflictResponse(c, "window locked") }, wantCode: http.StatusConflict},
		{name: "internal", send: func(c echo.Context) error { return InternalServerErrorResponse(c, "") }, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, tt.send(c))
			assert.Equal(t, tt.wantCode, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
		})
	}
}
