package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/keyxmakerx/moodwell/internal/apperror"
	"github.com/keyxmakerx/moodwell/internal/sanitize"
)

// AuthService defines the business logic contract for authentication.
// Handlers call these methods -- they never touch the repository directly.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, input LoginInput) (token string, err error)

	// ResolveIdentity turns a raw bearer token into the user it was issued
	// to. Every failure is a 401 AppError except storage failures (500).
	ResolveIdentity(ctx context.Context, rawToken string) (*User, error)
}

// FailureRecorder counts rejected credentials by reason. Implemented by
// *metrics.Collector.
type FailureRecorder interface {
	RecordAuthFailure(reason string)
}

// authService implements AuthService with argon2id hashing and JWT tokens.
type authService struct {
	repo     UserRepository
	tokens   *TokenService
	failures FailureRecorder
	now      func() time.Time
}

// NewAuthService creates a new auth service. failures may be nil.
func NewAuthService(repo UserRepository, tokens *TokenService, failures FailureRecorder) AuthService {
	return &authService{
		repo:     repo,
		tokens:   tokens,
		failures: failures,
		now:      time.Now,
	}
}

// NormalizeEmail lower-cases and trims an email so it can be used as the
// unique login handle.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user account. Nothing is persisted if the email is
// taken or hashing fails.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*User, error) {
	email := NormalizeEmail(input.Email)

	// Check if email is already taken before doing expensive hashing.
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("checking email: %w", err))
	}
	if exists {
		return nil, duplicateEmail()
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("hashing password: %w", err))
	}

	user := &User{
		Name:         sanitize.Text(input.Name),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC().Truncate(time.Second),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, duplicateEmail()
		}
		return nil, apperror.NewInternal(fmt.Errorf("creating user: %w", err))
	}

	slog.Info("user registered", slog.Int64("user_id", user.ID))
	return user, nil
}

// Login authenticates by email and password and returns a fresh bearer
// token. Unknown email and wrong password are indistinguishable.
func (s *authService) Login(ctx context.Context, input LoginInput) (string, error) {
	user, err := s.repo.FindByEmail(ctx, NormalizeEmail(input.Email))
	if err != nil {
		if apperror.IsNotFound(err) {
			// Burn the same time a real verification would.
			verifyPassword(input.Password, dummyHash())
			return "", s.reject(invalidCredentials())
		}
		return "", apperror.NewInternal(fmt.Errorf("finding user: %w", err))
	}

	if !verifyPassword(input.Password, user.PasswordHash) {
		return "", s.reject(invalidCredentials())
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", apperror.NewInternal(fmt.Errorf("issuing token: %w", err))
	}

	slog.Info("user logged in", slog.Int64("user_id", user.ID))
	return token, nil
}

// ResolveIdentity validates rawToken and loads its user.
func (s *authService) ResolveIdentity(ctx context.Context, rawToken string) (*User, error) {
	if strings.TrimSpace(rawToken) == "" {
		return nil, s.reject(notAuthenticated())
	}

	userID, err := s.tokens.Validate(rawToken)
	if err != nil {
		return nil, s.reject(tokenError(err))
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, s.reject(identityNotFound())
		}
		return nil, apperror.NewInternal(fmt.Errorf("loading user %d: %w", userID, err))
	}

	return user, nil
}

// reject records the failure reason and returns err unchanged.
func (s *authService) reject(err *apperror.AppError) *apperror.AppError {
	if s.failures != nil {
		s.failures.RecordAuthFailure(err.Type)
	}
	slog.Debug("authentication rejected", slog.String("reason", err.Type))
	return err
}
