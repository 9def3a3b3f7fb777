package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/fuelops/uppf-engine/internal/utils"
)

const (
	// APIKeyHeader carries the key for device and service-to-service calls
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey validates the API key for tracker feeds and
// service-to-service communication.
func ValidateAPIKey(expectedKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.UnauthorizedResponse(c, "API key is required")
			}

			if expectedKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expectedKey)) != 1 {
				return utils.UnauthorizedResponse(c, "Invalid API key")
			}

			return next(c)
		}
	}
}
