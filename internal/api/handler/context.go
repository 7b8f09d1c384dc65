package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contactdesk/customer-api/internal/api/middleware"
)

// ctxCaller extracts the caller's user ID injected by the Auth middleware.
// An empty ID means the middleware never ran for this route, which is a
// wiring bug; fail closed with a 401 rather than serve unscoped data.
func ctxCaller(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
