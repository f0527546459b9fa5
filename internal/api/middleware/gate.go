package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/orders-admin/internal/api/metrics"
	"github.com/orderdesk/orders-admin/internal/core/domain"
)

// Gate enforces the route class declared for a group of routes by invoking
// the pure authorization decision on every request. Anonymous callers on a
// protected class get 401; authenticated callers lacking the role get 403.
func Gate(class domain.RouteClass) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := PrincipalFrom(c)
			if domain.Decide(p, class) {
				return next(c)
			}

			metrics.AuthzDenialsTotal.WithLabelValues(string(class)).Inc()
			if p == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}
