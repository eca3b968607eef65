// Copyright (c) 2026 nirek13. All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// site. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nirek13/newportfolio/internal/handlers"
	"github.com/nirek13/newportfolio/internal/middleware"
	"github.com/nirek13/newportfolio/internal/session"
	"github.com/nirek13/newportfolio/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, public *handlers.Public, auth *handlers.Auth, admin *handlers.Admin, api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Static assets embedded at build time.
	r.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	// Admin routes — CSRF protection everywhere, auth past the login pages.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.CSRF)

		loginLimiter := middleware.NewRateLimiter(10, time.Minute)
		r.Group(func(r chi.Router) {
			r.Use(loginLimiter.Middleware)
			r.Get("/login", auth.LoginPage)
			r.Post("/login", auth.LoginSubmit)
		})
		r.Post("/logout", auth.Logout)

		// 2FA — requires a session but NOT completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa", auth.TwoFAPage)
			r.Post("/2fa", auth.TwoFASubmit)
		})

		// Authenticated + 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/", admin.Dashboard)
			r.Get("/posts", admin.PostsList)
			r.Get("/posts/new", admin.PostNew)
			r.Get("/posts/{slug}", admin.PostEdit)
			r.Get("/settings", admin.SettingsPage)
			r.Post("/settings/2fa", admin.SettingsGenerate2FA)

			// JSON API the editor forms call.
			r.Post("/api/posts", api.CreatePost)
			r.Put("/api/posts", api.UpdatePost)
			r.Delete("/api/posts", api.DeletePost)
		})
	})

	// Public site.
	r.Get("/", public.Homepage)
	r.Get("/blog", public.BlogIndex)
	r.Get("/blog/{slug}", public.Post)
	r.Get("/blog/tag/{tag}", public.Tag)
	r.Get("/about", public.About)
	r.Get("/photography", public.Photography)
	r.Get("/projects", public.Projects)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
