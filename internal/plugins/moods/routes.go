package moods

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the /mood entry routes. requireAuth is
// auth.RequireAuth bound to the auth service.
func RegisterRoutes(e *echo.Echo, h *Handler, requireAuth echo.MiddlewareFunc) {
	g := e.Group("/mood", requireAuth)
	g.POST("/log", h.Log)
	g.GET("/history", h.History)
}
