package content

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/moodwell/internal/apperror"
	"github.com/keyxmakerx/moodwell/internal/plugins/auth"
	"github.com/keyxmakerx/moodwell/internal/plugins/moods"
)

// Handler handles HTTP requests for content suggestions.
type Handler struct {
	service ContentService
}

// NewHandler creates a new content handler.
func NewHandler(service ContentService) *Handler {
	return &Handler{service: service}
}

// Suggest returns the next rotated item
// (GET /mood/suggestions/:kind?mood=<Mood>).
func (h *Handler) Suggest(c echo.Context) error {
	kind, ok := ParseKind(c.Param("kind"))
	if !ok {
		return apperror.NewNotFound("unknown content kind")
	}

	mood, ok := moods.ParseMood(c.QueryParam("mood"))
	if !ok {
		return apperror.NewValidation("mood query parameter must be one of the known moods")
	}

	item, err := h.service.Suggest(c.Request().Context(), auth.GetUserID(c), mood, kind)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SuggestionResponse{Item: item})
}
