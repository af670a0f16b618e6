package moods

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/moodwell/internal/apperror"
	"github.com/keyxmakerx/moodwell/internal/plugins/auth"
)

// Handler handles HTTP requests for mood entries.
type Handler struct {
	service MoodService
}

// NewHandler creates a new mood handler.
func NewHandler(service MoodService) *Handler {
	return &Handler{service: service}
}

// Log stores a mood entry (POST /mood/log).
func (h *Handler) Log(c echo.Context) error {
	var req LogRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	mood, ok := ParseMood(req.Mood)
	if !ok {
		return apperror.NewValidation("mood must be one of the known moods")
	}

	entry, err := h.service.Log(c.Request().Context(), auth.GetUserID(c), LogInput{
		Mood:      mood,
		Intensity: req.Intensity,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, LogResponse{Message: "Mood logged", ID: entry.ID})
}

// History lists the caller's entries (GET /mood/history).
func (h *Handler) History(c echo.Context) error {
	items, err := h.service.History(c.Request().Context(), auth.GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
