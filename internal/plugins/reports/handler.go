package reports

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/moodwell/internal/plugins/auth"
)

// Handler handles HTTP requests for reports.
type Handler struct {
	service ReportService
}

// NewHandler creates a new report handler.
func NewHandler(service ReportService) *Handler {
	return &Handler{service: service}
}

// Weekly returns the caller's 7-day summary (GET /reports/weekly).
func (h *Handler) Weekly(c echo.Context) error {
	report, err := h.service.Weekly(c.Request().Context(), auth.GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}
