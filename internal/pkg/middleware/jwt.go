package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/fuelops/uppf-engine/internal/pkg/models"
	"github.com/fuelops/uppf-engine/internal/utils"
)

// OperatorClaims are the JWT claims carried by operator tokens
type OperatorClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ValidateJWT validates operator bearer tokens on mutating endpoints
// (claim generation, settlement runs).
func ValidateJWT(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				return utils.UnauthorizedResponse(c, "Authorization header must be a Bearer token")
			}

			claims := &OperatorClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(config.Secret), nil
			})
			if err != nil || !token.Valid {
				return utils.UnauthorizedResponse(c, "Invalid or expired token")
			}

			if config.Issuer != "" && claims.Issuer != config.Issuer {
				return utils.UnauthorizedResponse(c, "Invalid token issuer")
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
