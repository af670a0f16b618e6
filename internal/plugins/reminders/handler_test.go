package reminders

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/moodwell/internal/apperror"
	"github.com/keyxmakerx/moodwell/internal/plugins/auth"
)

// stubAuth resolves every token to the user with that numeric ID.
type stubAuth struct {
	auth.AuthService
	users map[string]*auth.User
}

func (s *stubAuth) ResolveIdentity(_ context.Context, rawToken string) (*auth.User, error) {
	if u, ok := s.users[rawToken]; ok {
		return u, nil
	}
	return nil, apperror.NewUnauthorized("invalid token")
}

// memReminderRepo keeps reminders in memory so handler tests exercise the
// real service.
type memReminderRepo struct {
	nextID int64
	rows   []Reminder
}

func (m *memReminderRepo) Create(_ context.Context, r *Reminder) error {
	m.nextID++
	r.ID = m.nextID
	m.rows = append(m.rows, *r)
	return nil
}

func (m *memReminderRepo) ListByUser(_ context.Context, userID int64) ([]Reminder, error) {
	list := []Reminder{}
	for _, r := range m.rows {
		if r.UserID == userID {
			list = append(list, r)
		}
	}
	return list, nil
}

func (m *memReminderRepo) Delete(_ context.Context, id, userID int64) error {
	for i, r := range m.rows {
		if r.ID == id && r.UserID == userID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("reminder not found")
}

func newTestServer() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		_ = c.JSON(apperror.SafeCode(err), map[string]string{"message": apperror.SafeMessage(err)})
	}
	authSvc := &stubAuth{users: map[string]*auth.User{
		"alice": {ID: 1, Email: "alice@example.com"},
		"bob":   {ID: 2, Email: "bob@example.com"},
	}}
	RegisterRoutes(e, NewHandler(NewReminderService(&memReminderRepo{})), auth.RequireAuth(authSvc))
	return e
}

func do(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestReminders_Lifecycle(t *testing.T) {
	e := newTestServer()

	rec := do(e, http.MethodPost, "/reminders", `{"title":"Breathe","time":"08:15"}`, "alice")
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created Reminder
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == 0 || created.Time != "08:15" || !created.Active {
		t.Errorf("unexpected reminder %+v", created)
	}

	rec = do(e, http.MethodGet, "/reminders", "", "alice")
	var list []Reminder
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("alice has %d reminders, want 1", len(list))
	}

	// Bob cannot see or delete Alice's reminder.
	if rec := do(e, http.MethodGet, "/reminders", "", "bob"); strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("bob's list = %s, want []", rec.Body.String())
	}
	if rec := do(e, http.MethodDelete, "/reminders/1", "", "bob"); rec.Code != http.StatusNotFound {
		t.Errorf("bob delete status = %d, want 404", rec.Code)
	}

	if rec := do(e, http.MethodDelete, "/reminders/1", "", "alice"); rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	if rec := do(e, http.MethodDelete, "/reminders/1", "", "alice"); rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestReminders_Errors(t *testing.T) {
	e := newTestServer()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		token  string
		want   int
	}{
		{"no token", http.MethodGet, "/reminders", "", "", http.StatusUnauthorized},
		{"unknown token", http.MethodPost, "/reminders", `{"title":"x","time":"08:00"}`, "mallory", http.StatusUnauthorized},
		{"bad json", http.MethodPost, "/reminders", `{"title":`, "alice", http.StatusBadRequest},
		{"bad time", http.MethodPost, "/reminders", `{"title":"x","time":"8am"}`, "alice", http.StatusUnprocessableEntity},
		{"non-numeric id", http.MethodDelete, "/reminders/abc", "", "alice", http.StatusNotFound},
		{"zero id", http.MethodDelete, "/reminders/0", "", "alice", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(e, tt.method, tt.path, tt.body, tt.token)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}
