// Copyright (c) 2026 nirek13. All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/nirek13/newportfolio/internal/models"
	"github.com/nirek13/newportfolio/internal/render"
	"github.com/nirek13/newportfolio/internal/store"
)

// Admin serves the authenticated management pages. All mutation goes
// through the JSON API; these handlers only render forms and listings.
type Admin struct {
	renderer   *render.Renderer
	posts      *store.PostStore
	siteName   string
	totpSecret string
}

func NewAdmin(renderer *render.Renderer, posts *store.PostStore, siteName, totpSecret string) *Admin {
	return &Admin{
		renderer:   renderer,
		posts:      posts,
		siteName:   siteName,
		totpSecret: totpSecret,
	}
}

// Dashboard shows summary counts for the content in the data file.
func (h *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListAll()
	if err != nil {
		slog.Error("dashboard list failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	featured := 0
	for _, p := range posts {
		if p.Featured {
			featured++
		}
	}
	tags, err := h.posts.Tags()
	if err != nil {
		slog.Error("dashboard tags failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderer.Page(w, r, "admin/dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"PostCount":     len(posts),
			"FeaturedCount": featured,
			"TagCount":      len(tags),
		},
	})
}

// PostsList shows every post, newest first.
func (h *Admin) PostsList(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.ListAll()
	if err != nil {
		slog.Error("posts list failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderer.Page(w, r, "admin/posts_list", &render.PageData{
		Title:   "Posts",
		Section: "posts",
		Data:    map[string]any{"Posts": posts},
	})
}

// PostNew renders an empty editor form.
func (h *Admin) PostNew(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, "admin/post_form", &render.PageData{
		Title:   "New Post",
		Section: "posts",
		Data:    map[string]any{"Post": models.Post{}, "IsNew": true},
	})
}

// PostEdit renders the editor form pre-filled with an existing post.
func (h *Admin) PostEdit(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	post, err := h.posts.FindBySlug(slugParam)
	if err != nil {
		slog.Error("post lookup failed", "slug", slugParam, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.NotFound(w, r)
		return
	}

	h.renderer.Page(w, r, "admin/post_form", &render.PageData{
		Title:   "Edit Post",
		Section: "posts",
		Data:    map[string]any{"Post": *post, "IsNew": false},
	})
}

// SettingsPage shows the security settings, including whether a TOTP
// secret is active.
func (h *Admin) SettingsPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, "admin/settings", &render.PageData{
		Title:   "Settings",
		Section: "settings",
		Data: map[string]any{
			"TOTPEnabled": h.totpSecret != "",
			"DataFile":    h.posts.Path(),
		},
	})
}

// SettingsGenerate2FA generates a fresh TOTP secret and renders it with a
// provisioning QR code. The secret takes effect only once the operator
// sets ADMIN_TOTP_SECRET and restarts; generation alone changes nothing.
func (h *Admin) SettingsGenerate2FA(w http.ResponseWriter, r *http.Request) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      h.siteName,
		AccountName: "admin",
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	png, err := qrcode.Encode(key.URL(), qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr encode failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderer.Page(w, r, "admin/settings", &render.PageData{
		Title:   "Settings",
		Section: "settings",
		Data: map[string]any{
			"TOTPEnabled": h.totpSecret != "",
			"TOTPSecret":  key.Secret(),
			"TOTPQRCode":  base64.StdEncoding.EncodeToString(png),
			"DataFile":    h.posts.Path(),
		},
	})
}
