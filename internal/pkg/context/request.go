package context

import (
	"context"

	"github.com/labstack/echo/v4"
)

// FromEchoContext returns the request context enriched with the request ID
// echo assigned (or the caller sent) and the admin stored by the auth guard.
func FromEchoContext(c echo.Context) context.Context {
	ctx := c.Request().Context()

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)
	if requestID == "" {
		requestID = c.Request().Header.Get(echo.HeaderXRequestID)
	}
	ctx = WithRequestID(ctx, requestID)

	if adminID, ok := c.Get("admin_id").(string); ok && adminID != "" {
		ctx = WithAdminID(ctx, adminID)
	}
	return ctx
}
