package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/vperfumes/order-tracking/internal/core/domain"
)

// SessionCookie is the cookie the session credential travels in.
const SessionCookie = "access_token"

// identityKey is the echo context key the resolved identity is stored under.
const identityKey = "identity"

// UserFinder resolves a token subject to a live user record.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Session validates the session cookie, resolves it to a user and
// injects a typed domain.Identity into the request context. Resolution
// is read-only: the middleware never touches the cookie itself.
func Session(jwtSecret string, users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, err := claims.GetSubject()
			if err != nil || sub == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			// The token may outlive its user (account deleted).
			user, err := users.FindByID(c.Request().Context(), sub)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
			}

			c.Set(identityKey, domain.Identity{
				ID:          user.ID,
				Username:    user.Username,
				Role:        user.Role,
				CompanyName: user.CompanyName,
			})
			return next(c)
		}
	}
}

// IdentityFrom extracts the identity injected by Session. The second
// return is false when the middleware did not run on this route.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	ident, ok := c.Get(identityKey).(domain.Identity)
	return ident, ok
}

// SetIdentity stores an identity on the context, bypassing Session.
func SetIdentity(c echo.Context, ident domain.Identity) {
	c.Set(identityKey, ident)
}
