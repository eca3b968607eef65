package handlers

import (
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"

	"github.com/nirek13/newportfolio/internal/middleware"
	"github.com/nirek13/newportfolio/internal/render"
	"github.com/nirek13/newportfolio/internal/session"
)

// Auth groups the authentication handlers for the single admin operator.
// The credential check happens entirely server-side: the bcrypt password
// hash and the optional TOTP secret come from the environment and never
// reach the browser.
type Auth struct {
	renderer     *render.Renderer
	sessions     *session.Store
	passwordHash string
	totpSecret   string
}

// NewAuth creates a new Auth handler group. totpSecret may be empty, in
// which case login completes on password alone.
func NewAuth(renderer *render.Renderer, sessions *session.Store, passwordHash, totpSecret string) *Auth {
	return &Auth{
		renderer:     renderer,
		sessions:     sessions,
		passwordHash: passwordHash,
		totpSecret:   totpSecret,
	}
}

// LoginPage renders the login form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	// If already logged in with 2FA complete, go straight to the dashboard.
	sess := middleware.SessionFromCtx(r.Context())
	if sess != nil && sess.TwoFADone {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "admin/login", &render.PageData{Title: "Sign In"})
}

// LoginSubmit processes the login form.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	password := r.FormValue("password")

	if a.passwordHash == "" {
		// No credential configured — the admin area is unavailable.
		slog.Warn("login attempted with no ADMIN_PASSWORD_HASH configured")
		a.renderer.Page(w, r, "admin/login", &render.PageData{
			Title: "Sign In",
			Data:  map[string]any{"Error": "Admin access is not configured."},
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		a.renderer.Page(w, r, "admin/login", &render.PageData{
			Title: "Sign In",
			Data:  map[string]any{"Error": "Invalid password."},
		})
		return
	}

	// Without a TOTP secret the session is fully authenticated at once;
	// otherwise the second factor must be verified first.
	data := &session.Data{TwoFADone: a.totpSecret == ""}
	if _, err := a.sessions.Create(r.Context(), w, data); err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if data.TwoFADone {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	} else {
		http.Redirect(w, r, "/admin/2fa", http.StatusSeeOther)
	}
}

// TwoFAPage renders the TOTP code entry form.
func (a *Auth) TwoFAPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}
	if sess.TwoFADone {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "admin/twofa", &render.PageData{Title: "Two-Factor Authentication"})
}

// TwoFASubmit validates the TOTP code and completes authentication.
func (a *Auth) TwoFASubmit(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	code := r.FormValue("code")
	if !totp.Validate(code, a.totpSecret) {
		a.renderer.Page(w, r, "admin/twofa", &render.PageData{
			Title: "Two-Factor Authentication",
			Data:  map[string]any{"Error": "Invalid code. Please try again."},
		})
		return
	}

	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout destroys the session and returns to the login page.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		slog.Error("session destroy failed", "error", err)
	}
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}
