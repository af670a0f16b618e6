package reminders

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the /reminders routes. All require authentication.
func RegisterRoutes(e *echo.Echo, h *Handler, requireAuth echo.MiddlewareFunc) {
	g := e.Group("/reminders", requireAuth)
	g.POST("", h.Create)
	g.GET("", h.List)
	g.DELETE("/:id", h.Delete)
}
