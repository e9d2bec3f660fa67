package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/theotechtrad/taskboard/internal/api/middleware"
	"github.com/theotechtrad/taskboard/internal/core/domain"
)

// ctxCaller extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a present, non-empty id proves the
// middleware ran and resolved the caller against the credential store.
func ctxCaller(c echo.Context) (domain.CallerIdentity, error) {
	caller, ok := c.Get(middleware.CallerKey).(domain.CallerIdentity)
	if !ok || caller.ID == "" {
		return domain.CallerIdentity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return caller, nil
}
