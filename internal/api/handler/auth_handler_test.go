package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/userportal/gateway/internal/core/domain"
	"github.com/userportal/gateway/internal/core/ports"
	"github.com/userportal/gateway/internal/core/service"
	"github.com/userportal/gateway/internal/infrastructure/sessionstore"
)

type stubAuthAPI struct {
	loginRes  *ports.LoginResult
	loginErr  error
	created   []domain.AccountCreationRequest
	createErr error
}

func (s *stubAuthAPI) Login(context.Context, string, string) (*ports.LoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginRes, nil
}

func (s *stubAuthAPI) CreateAccount(_ context.Context, req domain.AccountCreationRequest) (map[string]any, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, req)
	return map[string]any{"id": "new"}, nil
}

func fixedNow() time.Time {
	return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
}

// newAuthContext builds an echo context carrying a restored anonymous session
// backed by the given stub, the way the session middleware would.
func newAuthContext(t *testing.T, auth ports.AuthAPI, method, target, body string) (echo.Context, *httptest.ResponseRecorder, *service.SessionService) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	svc := service.NewSessionService(sessionstore.NewMemory(0), auth, zerolog.Nop())
	svc.Restore(context.Background())
	c.Set("session", svc)
	return c, rec, svc
}

func TestAuthHandler_Login_Success(t *testing.T) {
	auth := &stubAuthAPI{loginRes: &ports.LoginResult{
		Token: "tok123",
		User:  map[string]any{"id": "1", "username": "x@example.com", "role": "admin"},
	}}
	c, rec, svc := newAuthContext(t, auth, http.MethodPost, "/auth/login",
		`{"email":"x@example.com","password":"motdepasse123"}`)

	h := NewAuthHandler(fixedNow)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !svc.State().Authenticated {
		t.Fatalf("session should be authenticated")
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.User == nil || resp.User.Username != "x@example.com" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	c, rec, _ := newAuthContext(t, &stubAuthAPI{}, http.MethodPost, "/auth/login", `{"email":"x@example.com"}`)

	h := NewAuthHandler(fixedNow)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	auth := &stubAuthAPI{}
	body := `{"email":"x@example.com","password":"motdepasse123","confirmPassword":"motdepasse123",` +
		`"first_name":"Jean","last_name":"Dupont","birthdate":"2000-01-01","city":"Paris","postalCode":"75000"}`
	c, rec, svc := newAuthContext(t, auth, http.MethodPost, "/auth/register", body)

	h := NewAuthHandler(fixedNow)
	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(auth.created) != 1 {
		t.Fatalf("expected one upstream call")
	}
	if auth.created[0].Username != "x@example.com" || auth.created[0].Name != "Jean" {
		t.Fatalf("payload renaming broken: %+v", auth.created[0])
	}
	if svc.State().Authenticated {
		t.Fatalf("register must not log in")
	}
}

func TestAuthHandler_Register_FieldErrors(t *testing.T) {
	auth := &stubAuthAPI{}
	// Underage and mismatched passwords.
	body := `{"email":"x@example.com","password":"motdepasse123","confirmPassword":"autre",` +
		`"first_name":"Jean","last_name":"Dupont","birthdate":"2010-01-01","city":"Paris","postalCode":"75000"}`
	c, rec, _ := newAuthContext(t, auth, http.MethodPost, "/auth/register", body)

	h := NewAuthHandler(fixedNow)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(auth.created) != 0 {
		t.Fatalf("invalid input must not reach the upstream")
	}

	var resp registerFailureResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %+v", resp.Fields)
	}
	// Declared order: birthdate before confirm_password.
	if resp.Fields[0].Field != "birthdate" || resp.Fields[1].Field != "confirm_password" {
		t.Fatalf("unexpected order: %+v", resp.Fields)
	}
}

func TestAuthHandler_ValidateField(t *testing.T) {
	cases := []struct {
		body    string
		valid   bool
		message string
	}{
		{`{"field":"email","value":"x@example.com"}`, true, ""},
		{`{"field":"email","value":"x@.com"}`, false, "email is invalid"},
		{`{"field":"birthdate","value":"2010-01-01"}`, false, "you must be at least 18 years old"},
		{`{"field":"postal_code","value":"75000"}`, true, ""},
	}

	h := NewAuthHandler(fixedNow)
	for _, tc := range cases {
		c, rec, _ := newAuthContext(t, &stubAuthAPI{}, http.MethodPost, "/auth/validate", tc.body)
		if err := h.ValidateField(c); err != nil {
			t.Fatalf("body %q: %v", tc.body, err)
		}
		var resp validateFieldResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Valid != tc.valid || resp.Message != tc.message {
			t.Errorf("body %q: got %+v", tc.body, resp)
		}
	}
}

func TestAuthHandler_LogoutAndSession(t *testing.T) {
	auth := &stubAuthAPI{loginRes: &ports.LoginResult{
		Token: "tok123",
		User:  map[string]any{"id": "1", "username": "x@example.com"},
	}}
	c, _, svc := newAuthContext(t, auth, http.MethodPost, "/auth/login",
		`{"email":"x@example.com","password":"motdepasse123"}`)

	h := NewAuthHandler(fixedNow)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}

	// Session endpoint sees the authenticated state.
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	rec := httptest.NewRecorder()
	sc := e.NewContext(req, rec)
	sc.Set("session", svc)
	if err := h.Session(sc); err != nil {
		t.Fatalf("session: %v", err)
	}
	var state sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !state.Authenticated || state.Admin {
		t.Fatalf("unexpected state: %+v", state)
	}

	// Logout twice: both 204, state anonymous.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		rec := httptest.NewRecorder()
		lc := e.NewContext(req, rec)
		lc.Set("session", svc)
		if err := h.Logout(lc); err != nil {
			t.Fatalf("logout %d: %v", i, err)
		}
		if rec.Code != http.StatusNoContent {
			t.Fatalf("logout %d: expected 204, got %d", i, rec.Code)
		}
	}
	if svc.State().Authenticated {
		t.Fatalf("logout must end the session")
	}
}
