// Package auth handles user registration, login and bearer-token identity
// resolution. Passwords are stored as argon2id hashes; access tokens are
// stateless HS256 JWTs, so logging out is simply discarding the token.
//
// Every other plugin depends on RequireAuth and GetUser/GetUserID from here.
package auth

import (
	"time"
)

// User is a registered account.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON responses.
	CreatedAt    time.Time `json:"created_at"`
}

// --- Request DTOs (bound from HTTP requests) ---

// RegisterRequest is the JSON body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the form body of POST /auth/login. The OAuth2 password
// flow calls the login handle "username"; here it carries the email.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// --- Response DTOs ---

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// TokenResponse is returned after a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// --- Service Input DTOs (passed from handler to service) ---

// RegisterInput is the validated input for creating a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput is the validated input for authenticating a user.
type LoginInput struct {
	Email    string
	Password string
}
