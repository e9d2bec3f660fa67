package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/theotechtrad/taskboard/internal/core/auth"
	"github.com/theotechtrad/taskboard/internal/core/domain"
)

// AdminOnly rejects any caller that does not hold the admin role. Must run
// after Auth.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := c.Get(CallerKey).(domain.CallerIdentity)
			if !ok || !auth.RequireAdmin(caller) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
