package reports

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the /reports routes.
func RegisterRoutes(e *echo.Echo, h *Handler, requireAuth echo.MiddlewareFunc) {
	g := e.Group("/reports", requireAuth)
	g.GET("/weekly", h.Weekly)
}
