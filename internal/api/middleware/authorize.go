package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/wildwall/wall-api/internal/api/metrics"
	"github.com/wildwall/wall-api/internal/core/domain"
)

// Authorize gates ownerless actions (user administration) on the central
// policy table. Ownership-based checks live in the services, where the
// resource has already been loaded; this middleware covers the routes whose
// decision depends on role alone.
func Authorize(action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := IdentityFrom(c)
			if !ok {
				return domain.ErrUnauthenticated
			}

			if !domain.Allowed(ident, action, 0) {
				metrics.AuthzDenialsTotal.WithLabelValues(string(action)).Inc()
				return domain.ErrForbidden
			}

			return next(c)
		}
	}
}
