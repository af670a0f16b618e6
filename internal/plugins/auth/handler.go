package auth

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/moodwell/internal/apperror"
)

// Field limits match the users table column sizes. Password length is capped
// so a huge body cannot be fed to argon2.
const (
	maxNameLen     = 100
	maxEmailLen    = 255
	maxPasswordLen = 128
)

// Handler handles HTTP requests for authentication. Handlers are thin: they
// bind the request, call the service, and render the response.
type Handler struct {
	service AuthService
}

// NewHandler creates a new auth handler with the given service.
func NewHandler(service AuthService) *Handler {
	return &Handler{service: service}
}

// Register creates an account (POST /auth/register).
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if msg := validateRegisterRequest(&req); msg != "" {
		return apperror.NewValidation(msg)
	}

	user, err := h.service.Register(c.Request().Context(), RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, RegisterResponse{
		Message: "User registered",
		ID:      user.ID,
	})
}

// Login exchanges form credentials for a bearer token (POST /auth/login).
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request body")
	}

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return apperror.NewValidation("username and password are required")
	}
	if len(req.Password) > maxPasswordLen {
		// Cannot match any stored password.
		return invalidCredentials()
	}

	token, err := h.service.Login(c.Request().Context(), LoginInput{
		Email:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me returns the authenticated user (GET /auth/me).
func (h *Handler) Me(c echo.Context) error {
	user := GetUser(c)
	if user == nil {
		return notAuthenticated()
	}
	return c.JSON(http.StatusOK, user)
}

// validateRegisterRequest performs basic server-side validation on the
// registration body. Returns an error message or empty string.
func validateRegisterRequest(req *RegisterRequest) string {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)

	if name == "" {
		return "name is required"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "name must be at most 100 characters"
	}
	if email == "" {
		return "email is required"
	}
	if len(email) > maxEmailLen {
		return "email must be at most 255 characters"
	}
	if at := strings.IndexByte(email, '@'); at <= 0 || at == len(email)-1 {
		return "email is not valid"
	}
	if req.Password == "" {
		return "password is required"
	}
	if len(req.Password) > maxPasswordLen {
		return "password must be at most 128 characters"
	}
	return ""
}
