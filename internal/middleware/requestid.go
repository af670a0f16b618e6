package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader carries the per-request correlation ID in both directions.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the Echo context key holding the request ID.
const requestIDKey = "request_id"

// RequestID returns middleware that tags each request with an ID. A
// well-formed UUID supplied by the client or an upstream proxy is reused;
// anything else is replaced with a fresh random UUID so log lines cannot be
// spoofed with arbitrary strings.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			c.Set(requestIDKey, id)
			c.Response().Header().Set(RequestIDHeader, id)
			return next(c)
		}
	}
}

// GetRequestID returns the ID assigned by RequestID, or "" if the middleware
// did not run.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
