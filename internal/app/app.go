// Package app is the application bootstrap and dependency injection root.
// It holds the shared infrastructure (DB pool, Redis client, metrics, Echo
// instance) and wires every plugin onto it.
package app

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/keyxmakerx/moodwell/internal/apperror"
	"github.com/keyxmakerx/moodwell/internal/config"
	"github.com/keyxmakerx/moodwell/internal/metrics"
	"github.com/keyxmakerx/moodwell/internal/middleware"
)

// App holds all shared dependencies and the Echo HTTP server instance.
// Created once at startup in main.go and used to register all routes.
type App struct {
	// Config holds the loaded application configuration.
	Config *config.Config

	// DB is the MariaDB connection pool shared by all plugins.
	DB *sql.DB

	// Redis holds rotation cursors.
	Redis *redis.Client

	// Metrics records request, auth-failure and suggestion counters.
	Metrics *metrics.Collector

	// Gatherer is what /metrics exposes.
	Gatherer prometheus.Gatherer

	// Echo is the HTTP server instance.
	Echo *echo.Echo
}

// New creates a new App and configures the Echo server with global
// middleware and error handling. Metrics are registered on reg.
func New(cfg *config.Config, db *sql.DB, rdb *redis.Client, reg *prometheus.Registry) *App {
	e := echo.New()

	// We log our own startup line.
	e.HideBanner = true
	e.HidePort = true

	// c.RealIP() only trusts forwarding headers from these networks.
	middleware.TrustedProxies(e, middleware.DefaultTrustedProxies)

	app := &App{
		Config:   cfg,
		DB:       db,
		Redis:    rdb,
		Metrics:  metrics.NewCollector(reg),
		Gatherer: reg,
		Echo:     e,
	}

	app.setupMiddleware()
	e.HTTPErrorHandler = app.errorHandler

	return app
}

// setupMiddleware registers global middleware on the Echo instance.
// Order matters: outermost (recovery) runs first.
func (a *App) setupMiddleware() {
	// Panic recovery -- must be outermost to catch panics from all other middleware.
	a.Echo.Use(middleware.Recovery())

	// Request ID before the logger so every log line carries it.
	a.Echo.Use(middleware.RequestID())

	a.Echo.Use(middleware.RequestLogger())
	a.Echo.Use(middleware.Metrics(a.Metrics))

	a.Echo.Use(middleware.SecurityHeaders())

	// Bearer tokens travel in a header, so CORS never needs credentials.
	a.Echo.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: a.Config.CORSOrigins,
	}))
}

// errorHandler is the custom Echo error handler. Every error becomes a JSON
// body of the form {"error": "<status text>", "message": "<detail>"}. The
// underlying cause of 5xx errors is logged and never sent to the client.
func (a *App) errorHandler(err error, c echo.Context) {
	// Don't double-write if response is already committed.
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := defaultErrorMessage(code)

	var appErr *apperror.AppError
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		code = appErr.Code
		message = appErr.Message
		if code >= http.StatusInternalServerError {
			slog.Error("internal error",
				slog.String("type", appErr.Type),
				slog.Any("internal", appErr.Internal),
				slog.String("path", c.Request().URL.Path),
				slog.String("request_id", middleware.GetRequestID(c)),
			)
		}
	case errors.As(err, &echoErr):
		// Router 404/405 and binder errors.
		code = echoErr.Code
		if msg, ok := echoErr.Message.(string); ok && code < http.StatusInternalServerError {
			message = msg
		} else {
			message = defaultErrorMessage(code)
		}
	default:
		slog.Error("unhandled error",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("request_id", middleware.GetRequestID(c)),
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, map[string]string{
		"error":   http.StatusText(code),
		"message": message,
	})
}

// defaultErrorMessage returns a client-facing message for status codes
// whose error carried none of its own.
func defaultErrorMessage(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "the request was invalid or cannot be processed"
	case http.StatusUnauthorized:
		return "not authenticated"
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusMethodNotAllowed:
		return "method not allowed"
	case http.StatusUnprocessableEntity:
		return "the submitted data could not be processed"
	case http.StatusServiceUnavailable:
		return "the service is temporarily unavailable"
	default:
		return "an unexpected error occurred"
	}
}

// Start begins listening for HTTP requests on the configured port.
func (a *App) Start() error {
	addr := fmt.Sprintf(":%d", a.Config.Port)
	slog.Info("starting Moodwell server",
		slog.String("addr", addr),
		slog.String("env", a.Config.Env),
	)
	return a.Echo.Start(addr)
}
