package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vperfumes/order-tracking/internal/api/middleware"
	"github.com/vperfumes/order-tracking/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Session middleware.
// Its presence proves the middleware ran; absence means the route was
// wired without authentication and must not proceed.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return ident, nil
}
