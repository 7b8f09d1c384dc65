package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/contactdesk/customer-api/internal/core/ports"
)

// Context keys seeded by Auth for downstream handlers.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

// Auth verifies the bearer token on every protected route and injects the
// caller identity into the echo context. An absent token is a 401; a token
// that is present but unverifiable (bad signature, malformed, expired) is a
// 403. Each request is verified independently, nothing is cached.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxUsername, claims.Username)

			return next(c)
		}
	}
}
