package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/nirek13/newportfolio/internal/render"
	"github.com/nirek13/newportfolio/internal/session"
	"github.com/nirek13/newportfolio/internal/site"
)

func testAuth(t *testing.T, password, totpSecret string) (*Auth, *session.Store) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	renderer, err := render.New(&site.Settings{Title: "Test"})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	sessions := session.NewStore(session.NewMemoryBackend(), false)
	return NewAuth(renderer, sessions, string(hash), totpSecret), sessions
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestLoginSubmit_CorrectPasswordNoTOTP(t *testing.T) {
	auth, sessions := testAuth(t, "hunter2", "")

	req := postForm("/admin/login", url.Values{"password": {"hunter2"}})
	rec := httptest.NewRecorder()
	auth.LoginSubmit(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Errorf("redirect = %q, want /admin", loc)
	}

	// The session cookie must resolve to a fully authenticated session.
	cookies := rec.Result().Cookies()
	var sessCookie *http.Cookie
	for _, c := range cookies {
		if c.Name == session.CookieName {
			sessCookie = c
		}
	}
	if sessCookie == nil {
		t.Fatal("no session cookie set")
	}

	check := httptest.NewRequest(http.MethodGet, "/admin", nil)
	check.AddCookie(sessCookie)
	data, err := sessions.Get(check.Context(), check)
	if err != nil {
		t.Fatalf("session get: %v", err)
	}
	if !data.TwoFADone {
		t.Error("session not marked 2FA-complete when no TOTP secret configured")
	}
}

func TestLoginSubmit_CorrectPasswordWithTOTP(t *testing.T) {
	auth, _ := testAuth(t, "hunter2", "JBSWY3DPEHPK3PXP")

	req := postForm("/admin/login", url.Values{"password": {"hunter2"}})
	rec := httptest.NewRecorder()
	auth.LoginSubmit(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/2fa" {
		t.Errorf("redirect = %q, want /admin/2fa", loc)
	}
}

func TestLoginSubmit_WrongPassword(t *testing.T) {
	auth, _ := testAuth(t, "hunter2", "")

	req := postForm("/admin/login", url.Values{"password": {"wrong"}})
	rec := httptest.NewRecorder()
	auth.LoginSubmit(rec, req)

	// Re-renders the login form rather than redirecting.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid password") {
		t.Error("error message missing from re-rendered form")
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.MaxAge >= 0 && c.Value != "" {
			t.Error("session cookie set despite failed login")
		}
	}
}

func TestLoginSubmit_NoHashConfigured(t *testing.T) {
	renderer, err := render.New(&site.Settings{Title: "Test"})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	sessions := session.NewStore(session.NewMemoryBackend(), false)
	auth := NewAuth(renderer, sessions, "", "")

	req := postForm("/admin/login", url.Values{"password": {"anything"}})
	rec := httptest.NewRecorder()
	auth.LoginSubmit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "not configured") {
		t.Error("expected configuration error message")
	}
}
