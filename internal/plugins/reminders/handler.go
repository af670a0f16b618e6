package reminders

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/moodwell/internal/apperror"
	"github.com/keyxmakerx/moodwell/internal/plugins/auth"
)

// Handler handles HTTP requests for reminders.
type Handler struct {
	service ReminderService
}

// NewHandler creates a new reminder handler.
func NewHandler(service ReminderService) *Handler {
	return &Handler{service: service}
}

// Create adds a reminder (POST /reminders).
func (h *Handler) Create(c echo.Context) error {
	var req CreateReminderRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	rem, err := h.service.Create(c.Request().Context(), auth.GetUserID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rem)
}

// List returns the caller's reminders (GET /reminders).
func (h *Handler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context(), auth.GetUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Delete removes one of the caller's reminders (DELETE /reminders/:id).
func (h *Handler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return apperror.NewNotFound("reminder not found")
	}

	if err := h.service.Delete(c.Request().Context(), auth.GetUserID(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
