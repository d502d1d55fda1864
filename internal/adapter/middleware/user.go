package middleware

import (
	"net/http"
	"strings"

	"finance-dashboard/pkg/id"

	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID    = "X-User-Id"
	HeaderRequestID = "X-Request-Id"
	HeaderRequestAt = "X-Request-At"

	ctxUserID = "user_id"
)

// UserScope requires the X-User-Id header set by the fronting auth layer and
// stores it on the context. Every repository query is scoped by it.
func UserScope() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + HeaderUserID})
			}
			if !id.IsHex32(userID) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid " + HeaderUserID})
			}
			c.Set(ctxUserID, userID)
			return next(c)
		}
	}
}

// UserID returns the id stored by UserScope, or "".
func UserID(c echo.Context) string {
	v, _ := c.Get(ctxUserID).(string)
	return v
}
