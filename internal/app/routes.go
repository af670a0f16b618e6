package app

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/moodwell/internal/metrics"
	"github.com/keyxmakerx/moodwell/internal/plugins/auth"
	"github.com/keyxmakerx/moodwell/internal/plugins/content"
	"github.com/keyxmakerx/moodwell/internal/plugins/moods"
	"github.com/keyxmakerx/moodwell/internal/plugins/reminders"
	"github.com/keyxmakerx/moodwell/internal/plugins/reports"
)

// healthTimeout bounds each dependency ping in /healthz.
const healthTimeout = 2 * time.Second

// RegisterRoutes builds every plugin and registers its routes. This is the
// single place where all routes are aggregated.
func (a *App) RegisterRoutes() {
	e := a.Echo

	// --- Public Routes ---

	e.GET("/healthz", a.healthz)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(a.Gatherer)))

	// --- Auth ---
	userRepo := auth.NewUserRepository(a.DB)
	tokens := auth.NewTokenService(a.Config.Auth.SecretKey, a.Config.Auth.TokenTTL)
	authService := auth.NewAuthService(userRepo, tokens, a.Metrics)
	auth.RegisterRoutes(e, auth.NewHandler(authService), authService)

	// Every route below resolves the caller from the bearer token.
	requireAuth := auth.RequireAuth(authService)

	// --- Moods ---
	moodService := moods.NewMoodService(moods.NewMoodRepository(a.DB))
	moods.RegisterRoutes(e, moods.NewHandler(moodService), requireAuth)

	// --- Content suggestions ---
	contentService := content.NewContentService(
		content.NewContentRepository(a.DB),
		content.NewRedisCursorStore(a.Redis, content.DefaultCursorTTL),
		a.Metrics,
	)
	content.RegisterRoutes(e, content.NewHandler(contentService), requireAuth)

	// --- Reminders ---
	reminderService := reminders.NewReminderService(reminders.NewReminderRepository(a.DB))
	reminders.RegisterRoutes(e, reminders.NewHandler(reminderService), requireAuth)

	// --- Reports ---
	reportService := reports.NewReportService(reports.NewMoodSourceAdapter(moodService))
	reports.RegisterRoutes(e, reports.NewHandler(reportService), requireAuth)
}

// healthz pings MariaDB and Redis. Any failure returns 503 so container
// orchestration can restart or drain the instance.
func (a *App) healthz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	status := map[string]string{"status": "ok", "database": "ok", "redis": "ok"}
	code := http.StatusOK

	if err := a.DB.PingContext(ctx); err != nil {
		status["database"] = "unavailable"
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}
	if err := a.Redis.Ping(ctx).Err(); err != nil {
		status["redis"] = "unavailable"
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, status)
}
