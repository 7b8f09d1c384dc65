package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contactdesk/customer-api/internal/infrastructure/db/redis"
)

// LoginRateLimit throttles login attempts per username and client IP before
// the handler runs, so rejected attempts never reach bcrypt. The body is
// peeked for the username and rewound so the handler can still bind it.
func LoginRateLimit(limiter *redis.LoginLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var body struct {
				Username string `json:"username"`
			}
			if err := peekBody(c, &body); err != nil || body.Username == "" {
				// Malformed payloads fall through to the handler's own
				// bind/validation errors.
				return next(c)
			}

			if !limiter.Allow(c.Request().Context(), body.Username, c.RealIP()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
			}

			return next(c)
		}
	}
}

// peekBody decodes the JSON body into v and rewinds it for the handler.
func peekBody(c echo.Context, v any) error {
	req := c.Request()
	buf, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	req.Body = io.NopCloser(bytes.NewReader(buf))
	return json.Unmarshal(buf, v)
}
