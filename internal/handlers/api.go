// Copyright (c) 2026 nirek13. All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/nirek13/newportfolio/internal/cache"
	"github.com/nirek13/newportfolio/internal/models"
	"github.com/nirek13/newportfolio/internal/readtime"
	"github.com/nirek13/newportfolio/internal/slug"
	"github.com/nirek13/newportfolio/internal/store"
)

// maxAPIBody caps request bodies to guard against oversized payloads.
const maxAPIBody = 1 << 20 // 1 MiB

// API serves the JSON endpoints the admin editor calls. Every response
// body carries a success flag; non-2xx statuses distinguish caller
// mistakes (400), missing records (404) and file failures (500).
type API struct {
	posts     *store.PostStore
	pageCache *cache.PageCache
}

func NewAPI(posts *store.PostStore, pageCache *cache.PageCache) *API {
	return &API{posts: posts, pageCache: pageCache}
}

type apiResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// createRequest is the POST body. Slug, readTime and date are optional;
// missing values are derived server-side.
type createRequest struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Date     string   `json:"date"`
	ReadTime string   `json:"readTime"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
	Image    *string  `json:"image"`
}

// CreatePost handles POST: prepends a new post to the data file.
func (h *API) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAPIBody)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Error: "Invalid request body."})
		return
	}

	req.Tags = models.CleanTags(req.Tags)
	if msg := validatePost(req.Title, req.Excerpt, req.Content, req.Tags); msg != "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{Error: msg})
		return
	}

	post := models.Post{
		Slug:     req.Slug,
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Date:     req.Date,
		ReadTime: req.ReadTime,
		Tags:     req.Tags,
		Featured: req.Featured,
		Image:    req.Image,
	}
	if post.Slug == "" {
		post.Slug = slug.Generate(post.Title)
	}
	if post.Slug == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{Error: "Title yields an empty slug."})
		return
	}
	if post.ReadTime == "" {
		post.ReadTime = readtime.Estimate(post.Content)
	}
	if post.Date == "" {
		post.Date = time.Now().Format("2006-01-02")
	}

	if err := h.posts.Create(post); err != nil {
		slog.Error("post create failed", "slug", post.Slug, "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Error: "Failed to save post."})
		return
	}

	slog.Info("post created", "slug", post.Slug)
	h.pageCache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}

// updateRequest is the PUT body: the slug naming the record plus the
// fields to overwrite. Absent fields keep their stored values, and the
// stored date is never touched.
type updateRequest struct {
	Slug        string           `json:"slug"`
	UpdatedPost models.PostPatch `json:"updatedPost"`
}

// UpdatePost handles PUT: merges the patch into the named post.
func (h *API) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAPIBody)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Error: "Invalid request body."})
		return
	}
	if req.Slug == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{Error: "Slug is required."})
		return
	}

	// A changed body without an explicit readTime gets a fresh estimate.
	if req.UpdatedPost.Content != nil && req.UpdatedPost.ReadTime == nil {
		rt := readtime.Estimate(*req.UpdatedPost.Content)
		req.UpdatedPost.ReadTime = &rt
	}
	if req.UpdatedPost.Tags != nil {
		cleaned := models.CleanTags(*req.UpdatedPost.Tags)
		req.UpdatedPost.Tags = &cleaned
	}

	if _, err := h.posts.Update(req.Slug, req.UpdatedPost); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, apiResponse{Error: "Post not found."})
			return
		}
		slog.Error("post update failed", "slug", req.Slug, "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Error: "Failed to save post."})
		return
	}

	slog.Info("post updated", "slug", req.Slug)
	h.pageCache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}

// DeletePost handles DELETE: removes the post named by the slug query
// parameter.
func (h *API) DeletePost(w http.ResponseWriter, r *http.Request) {
	slugParam := r.URL.Query().Get("slug")
	if slugParam == "" {
		writeJSON(w, http.StatusBadRequest, apiResponse{Error: "Slug is required."})
		return
	}

	if err := h.posts.Delete(slugParam); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, apiResponse{Error: "Post not found."})
			return
		}
		slog.Error("post delete failed", "slug", slugParam, "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Error: "Failed to delete post."})
		return
	}

	slog.Info("post deleted", "slug", slugParam)
	h.pageCache.InvalidateAll(r.Context())
	writeJSON(w, http.StatusOK, apiResponse{Success: true})
}
