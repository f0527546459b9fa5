package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/orders-admin/internal/core/domain"
	"github.com/orderdesk/orders-admin/internal/core/ports"
)

// principalKey is the echo context key the resolved principal is stored
// under.
const principalKey = "principal"

// Principal resolves HTTP Basic credentials into a domain Principal and
// injects it into the request context. Requests without an Authorization
// header pass through anonymously; the gate decides whether that is enough.
// Bad credentials are rejected here with the same generic message whatever
// the cause.
func Principal(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, password, ok := c.Request().BasicAuth()
			if !ok {
				return next(c)
			}

			p, err := auth.Authenticate(c.Request().Context(), username, password)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidCredentials) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
				}
				return err
			}

			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// PrincipalFrom extracts the principal placed by the Principal middleware.
// Returns nil for anonymous requests.
func PrincipalFrom(c echo.Context) *domain.Principal {
	p, _ := c.Get(principalKey).(*domain.Principal)
	return p
}
