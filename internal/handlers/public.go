// Copyright (c) 2026 nirek13. All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the portfolio server.
// Handlers are grouped by concern (public, admin, auth, api) and receive
// their dependencies through the handler struct.
package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nirek13/newportfolio/internal/cache"
	"github.com/nirek13/newportfolio/internal/render"
	"github.com/nirek13/newportfolio/internal/store"
)

// visitedCookie tracks which sections this browser session has seen.
// It is a session cookie (no Max-Age), so the first-visit highlight
// resets when the browser session ends.
const visitedCookie = "np_visited"

// Public groups handlers for the public-facing site. Rendered pages are
// cached in Valkey when configured; personalized first-visit renders
// bypass the cache.
type Public struct {
	renderer  *render.Renderer
	posts     *store.PostStore
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group. pageCache may be nil.
func NewPublic(renderer *render.Renderer, posts *store.PostStore, pageCache *cache.PageCache) *Public {
	return &Public{
		renderer:  renderer,
		posts:     posts,
		pageCache: pageCache,
	}
}

// firstVisit reports whether this is the browser session's first visit
// to the section, and records the visit in the cookie.
func firstVisit(w http.ResponseWriter, r *http.Request, section string) bool {
	var visited []string
	if c, err := r.Cookie(visitedCookie); err == nil && c.Value != "" {
		visited = strings.Split(c.Value, ".")
	}
	for _, v := range visited {
		if v == section {
			return false
		}
	}

	visited = append(visited, section)
	http.SetCookie(w, &http.Cookie{
		Name:     visitedCookie,
		Value:    strings.Join(visited, "."),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		// No Max-Age: the cookie lives for the browser session only.
	})
	return true
}

// page renders the named template, serving and populating the page
// cache when the render is not personalized.
func (p *Public) page(w http.ResponseWriter, r *http.Request, cacheKey, tmpl string, data *render.PageData) {
	ctx := r.Context()

	data.FirstVisit = firstVisit(w, r, data.Section)
	if !data.FirstVisit {
		if cached, ok := p.pageCache.Get(ctx, cacheKey); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	html, err := p.renderer.Render(r, tmpl, data)
	if err != nil {
		slog.Error("render failed", "template", tmpl, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if !data.FirstVisit {
		p.pageCache.Set(ctx, cacheKey, html)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// Homepage renders the home page: featured posts plus the most recent essays.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	featured, err := p.posts.ListFeatured()
	if err != nil {
		slog.Error("list featured failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	recent, err := p.posts.ListAll()
	if err != nil {
		slog.Error("list posts failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if len(recent) > 5 {
		recent = recent[:5]
	}

	p.page(w, r, cache.HomepageKey(), "public/home", &render.PageData{
		Section: "home",
		Data: map[string]any{
			"Featured": featured,
			"Recent":   recent,
		},
	})
}

// BlogIndex renders the full essay listing, newest first, plus the tag cloud.
func (p *Public) BlogIndex(w http.ResponseWriter, r *http.Request) {
	posts, err := p.posts.ListAll()
	if err != nil {
		slog.Error("list posts failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	tags, err := p.posts.Tags()
	if err != nil {
		slog.Error("list tags failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.page(w, r, cache.BlogIndexKey(), "public/blog", &render.PageData{
		Title:   "Essays",
		Section: "blog",
		Data: map[string]any{
			"Posts": posts,
			"Tags":  tags,
		},
	})
}

// Post renders a single essay by slug.
func (p *Public) Post(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	post, err := p.posts.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find post failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if post == nil {
		http.NotFound(w, r)
		return
	}

	p.page(w, r, cache.PostKey(slugParam), "public/post", &render.PageData{
		Title:   post.Title,
		Section: "blog",
		Data:    map[string]any{"Post": post},
	})
}

// Tag renders the essays carrying an exact tag.
func (p *Public) Tag(w http.ResponseWriter, r *http.Request) {
	tag := chi.URLParam(r, "tag")

	posts, err := p.posts.ListByTag(tag)
	if err != nil {
		slog.Error("list by tag failed", "error", err, "tag", tag)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.page(w, r, cache.TagKey(tag), "public/tag", &render.PageData{
		Title:   tag,
		Section: "blog",
		Data: map[string]any{
			"Tag":   tag,
			"Posts": posts,
		},
	})
}

// About renders the about page from the site settings.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, "about", "public/about", &render.PageData{
		Title:   "About",
		Section: "about",
	})
}

// Photography renders the photography page from the site settings.
func (p *Public) Photography(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, "photography", "public/photography", &render.PageData{
		Title:   "Photography",
		Section: "photography",
	})
}

// Projects renders the projects page from the site settings.
func (p *Public) Projects(w http.ResponseWriter, r *http.Request) {
	p.page(w, r, "projects", "public/projects", &render.PageData{
		Title:   "Projects",
		Section: "projects",
	})
}
