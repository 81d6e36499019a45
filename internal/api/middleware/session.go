package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/wildwall/wall-api/internal/api/metrics"
	"github.com/wildwall/wall-api/internal/auth"
	"github.com/wildwall/wall-api/internal/core/domain"
)

// IdentityKey is the echo context key the Session middleware stores the
// caller's Identity under. Exported so handler tests can seed it directly.
const IdentityKey = "identity"

// Session extracts and verifies the session cookie, attaching the caller's
// Identity to the request context. Requests without a valid session never
// reach the handler chain; the sentinel errors returned here are translated
// to status codes by the central error handler.
func Session(codec *auth.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(auth.CookieName)
			if err != nil || cookie.Value == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return domain.ErrUnauthenticated
			}

			ident, err := codec.Verify(cookie.Value)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrTokenExpired):
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
				case errors.Is(err, domain.ErrTokenInvalid):
					metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				}
				return err
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(IdentityKey, ident)
			return next(c)
		}
	}
}

// IdentityFrom returns the Identity attached by Session.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	ident, ok := c.Get(IdentityKey).(domain.Identity)
	return ident, ok
}
