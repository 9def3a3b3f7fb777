package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware logs every HTTP request with latency and status
func EchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			entry := logger.With(
				String("method", c.Request().Method),
				String("path", path),
				String("client_ip", c.RealIP()),
				String("request_id", requestID),
				Int("status", statusCode),
				Duration("latency", latency),
			)

			switch {
			case statusCode >= 500:
				entry.Error("Server error", Err(err))
			case statusCode >= 400:
				entry.Warn("Client error", Err(err))
			default:
				entry.Info("Request processed")
			}

			return err
		}
	}
}
