package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/theotechtrad/taskboard/internal/api/metrics"
	"github.com/theotechtrad/taskboard/internal/core/ports"
)

// CallerKey is the echo context key under which Auth stores the resolved
// domain.CallerIdentity.
const CallerKey = "caller"

// Auth extracts the bearer token, resolves the caller's current identity
// against the credential store, and injects it into the request context.
// The resolver re-fetches the role on every request, so nothing downstream
// ever sees a stale token claim.
func Auth(resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			caller, err := resolver.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CallerKey, caller)
			return next(c)
		}
	}
}
