package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

// RequestRecorder receives one observation per completed request.
// Implemented by *metrics.Collector.
type RequestRecorder interface {
	RecordRequest(method, route string, status int, d time.Duration)
}

// Metrics returns middleware that reports each request to rec. The route
// label is Echo's path template (e.g. "/reminders/:id") so label cardinality
// stays bounded; unmatched paths are reported as "unmatched".
func Metrics(rec RequestRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			rec.RecordRequest(c.Request().Method, route, c.Response().Status, time.Since(start))
			return nil
		}
	}
}
