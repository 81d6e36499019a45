package handler

import (
	mw "github.com/wildwall/wall-api/internal/api/middleware"
	"github.com/wildwall/wall-api/internal/core/domain"

	"github.com/labstack/echo/v4"
)

// ctxIdentity fetches the Identity injected by the Session middleware and
// fast-fails when a route was wired without it: presence of a valid role code
// proves the extractor ran.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	ident, ok := mw.IdentityFrom(c)
	if !ok || !ident.RoleCode.Valid() {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return ident, nil
}
