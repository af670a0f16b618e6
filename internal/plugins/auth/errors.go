package auth

import (
	"errors"

	"github.com/keyxmakerx/moodwell/internal/apperror"
)

// Sentinel causes. Services wrap them in an AppError so handlers get the
// right status while callers can still match with errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrDuplicateEmail     = errors.New("duplicate email")
)

// AppError types used for logs and the auth failure metric.
const (
	typeUnauthenticated    = "unauthenticated"
	typeInvalidCredentials = "invalid_credentials"
	typeInvalidToken       = "invalid_token"
	typeTokenExpired       = "token_expired"
	typeIdentityNotFound   = "identity_not_found"
)

func notAuthenticated() *apperror.AppError {
	return apperror.NewUnauthorized("not authenticated").WithType(typeUnauthenticated)
}

func invalidCredentials() *apperror.AppError {
	return apperror.NewUnauthorized("invalid credentials").
		WithType(typeInvalidCredentials).
		Wrap(ErrInvalidCredentials)
}

// tokenError maps a Validate failure to a 401. Expired and invalid tokens
// share one client message; only the type differs.
func tokenError(err error) *apperror.AppError {
	appErr := apperror.NewUnauthorized("invalid token").Wrap(err)
	if errors.Is(err, ErrTokenExpired) {
		return appErr.WithType(typeTokenExpired)
	}
	return appErr.WithType(typeInvalidToken)
}

func identityNotFound() *apperror.AppError {
	return apperror.NewUnauthorized("user not found").
		WithType(typeIdentityNotFound).
		Wrap(ErrIdentityNotFound)
}

func duplicateEmail() *apperror.AppError {
	return apperror.NewConflict("an account with this email already exists").Wrap(ErrDuplicateEmail)
}
