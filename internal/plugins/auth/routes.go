package auth

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up the /auth routes. Register and login are public;
// /auth/me goes through RequireAuth like every other protected route.
func RegisterRoutes(e *echo.Echo, h *Handler, service AuthService) {
	g := e.Group("/auth")
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.GET("/me", h.Me, RequireAuth(service))
}
