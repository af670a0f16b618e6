package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// CORSConfig holds configuration for the CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is the list of browser origins permitted to call the API,
	// e.g. the frontend dev server at http://localhost:5173. "*" allows all.
	AllowedOrigins []string

	// AllowCredentials lets the browser send credentials cross-origin.
	// Bearer tokens travel in a header, so this is usually false.
	AllowCredentials bool
}

var (
	corsAllowMethods = strings.Join([]string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}, ", ")

	corsAllowHeaders = strings.Join([]string{
		"Content-Type",
		"Authorization",
		RequestIDHeader,
	}, ", ")

	corsExposeHeaders = strings.Join([]string{
		RequestIDHeader,
		"WWW-Authenticate",
	}, ", ")
)

// CORS returns middleware that handles Cross-Origin Resource Sharing for the
// single-page frontend, which is served from a different origin than the API.
func CORS(cfg CORSConfig) echo.MiddlewareFunc {
	allowAll := false
	originSet := make(map[string]bool)
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			allowAll = true
		}
		originSet[o] = true
	}

	// SECURITY: wildcard origin with credentials lets any site make
	// authenticated requests.
	if allowAll && cfg.AllowCredentials {
		slog.Warn("CORS misconfiguration: wildcard origin with credentials; credentials disabled")
		cfg.AllowCredentials = false
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			origin := req.Header.Get("Origin")

			// No Origin header means same-origin or non-browser client.
			if origin == "" {
				return next(c)
			}

			res.Header().Add("Vary", "Origin")
			if !allowAll && !originSet[origin] {
				// The browser blocks the response on its side.
				return next(c)
			}

			res.Header().Set("Access-Control-Allow-Origin", origin)
			if cfg.AllowCredentials {
				res.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			// Preflight.
			if req.Method == http.MethodOptions && req.Header.Get("Access-Control-Request-Method") != "" {
				res.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
				res.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
				res.Header().Set("Access-Control-Max-Age", "3600")
				return c.NoContent(http.StatusNoContent)
			}

			res.Header().Set("Access-Control-Expose-Headers", corsExposeHeaders)
			return next(c)
		}
	}
}
