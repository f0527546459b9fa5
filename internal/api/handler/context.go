package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/orders-admin/internal/api/middleware"
	"github.com/orderdesk/orders-admin/internal/core/domain"
)

// currentPrincipal extracts the principal injected by the Principal
// middleware and fast-fails before any service call: a gated handler
// reached without a principal means the middleware chain is miswired.
func currentPrincipal(c echo.Context) (*domain.Principal, error) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return p, nil
}
