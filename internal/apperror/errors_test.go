package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

var errSentinel = errors.New("sentinel")

func TestWrap_SupportsErrorsIs(t *testing.T) {
	err := NewUnauthorized("invalid token").WithType("token_expired").Wrap(errSentinel)

	if !errors.Is(err, errSentinel) {
		t.Fatal("expected errors.Is to find the wrapped sentinel")
	}
	if err.Type != "token_expired" {
		t.Errorf("expected type token_expired, got %s", err.Type)
	}
	if err.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", err.Code)
	}
}

func TestSafeCodeAndMessage(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NewConflict("taken"))

	if got := SafeCode(wrapped); got != http.StatusConflict {
		t.Errorf("expected 409, got %d", got)
	}
	if got := SafeMessage(wrapped); got != "taken" {
		t.Errorf("expected message taken, got %q", got)
	}

	plain := errors.New("select * from users failed")
	if got := SafeCode(plain); got != http.StatusInternalServerError {
		t.Errorf("expected 500 for plain error, got %d", got)
	}
	if got := SafeMessage(plain); got == plain.Error() {
		t.Error("plain error text must not leak to the client")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(fmt.Errorf("repo: %w", NewNotFound("user not found"))) {
		t.Error("expected wrapped 404 to be detected")
	}
	if IsNotFound(NewBadRequest("nope")) {
		t.Error("400 is not a not-found error")
	}
	if IsNotFound(nil) {
		t.Error("nil is not a not-found error")
	}
}

func TestNewInternal_HidesCause(t *testing.T) {
	err := NewInternal(errSentinel)
	if err.Message == errSentinel.Error() {
		t.Error("internal cause must not be the client message")
	}
	if !errors.Is(err, errSentinel) {
		t.Error("expected cause to be reachable for logging")
	}
}
