package content

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the suggestion route under /mood.
func RegisterRoutes(e *echo.Echo, h *Handler, requireAuth echo.MiddlewareFunc) {
	e.GET("/mood/suggestions/:kind", h.Suggest, requireAuth)
}
