// Copyright (c) 2026 nirek13. All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for both the public
// site and the admin interface. Templates are embedded in the binary;
// admin pages share one base layout, public pages another, and the
// login/2FA pages render standalone.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/nirek13/newportfolio/internal/markdown"
	"github.com/nirek13/newportfolio/internal/middleware"
	"github.com/nirek13/newportfolio/internal/session"
	"github.com/nirek13/newportfolio/internal/site"
)

//go:embed templates/admin/*.html templates/public/*.html
var templateFS embed.FS

// PageData holds all data passed to templates.
type PageData struct {
	Title      string         // Page title for the <title> tag
	Section    string         // Active nav section (e.g. "home", "blog")
	Site       *site.Settings // Static site settings (nav, socials, copy)
	Session    *session.Data  // Current admin session (nil if unauthenticated)
	CSRFToken  string         // CSRF token for forms and API calls
	FirstVisit bool           // True the first time this browser session sees the section
	Data       map[string]any // Page-specific data
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	site      *site.Settings
}

// standaloneTemplates lists templates that render as full HTML pages
// without a base layout.
var standaloneTemplates = map[string]bool{
	"admin/login": true,
	"admin/twofa": true,
}

// New creates a Renderer by parsing all embedded templates. Each page
// template is paired with its group's base layout.
func New(siteSettings *site.Settings) (*Renderer, error) {
	rn := &Renderer{
		templates: make(map[string]*template.Template),
		site:      siteSettings,
	}

	funcMap := template.FuncMap{
		// markdown renders post content. The output is trusted: it comes
		// from goldmark with raw HTML escaping enabled.
		"markdown": func(source string) template.HTML {
			html, err := markdown.ToHTML(source)
			if err != nil {
				slog.Error("markdown render failed", "error", err)
				return ""
			}
			return template.HTML(html)
		},
		"year": func() int {
			return time.Now().Year()
		},
		"join": strings.Join,
	}

	for _, group := range []string{"admin", "public"} {
		entries, err := templateFS.ReadDir("templates/" + group)
		if err != nil {
			return nil, fmt.Errorf("read embedded templates: %w", err)
		}
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || name == "base.html" {
				continue
			}

			key := group + "/" + name[:len(name)-len(".html")]

			var tmpl *template.Template
			var parseErr error
			if standaloneTemplates[key] {
				tmpl, parseErr = template.New(name).Funcs(funcMap).ParseFS(
					templateFS, "templates/"+group+"/"+name,
				)
			} else {
				tmpl, parseErr = template.New("base.html").Funcs(funcMap).ParseFS(
					templateFS, "templates/"+group+"/base.html", "templates/"+group+"/"+name,
				)
			}
			if parseErr != nil {
				return nil, fmt.Errorf("parse template %s: %w", name, parseErr)
			}

			rn.templates[key] = tmpl
		}
	}

	return rn, nil
}

// Render executes the named template ("public/home", "admin/login", ...)
// wrapped in its base layout and returns the HTML. Site settings,
// session, and CSRF token are injected from the renderer and request
// context.
func (rn *Renderer) Render(r *http.Request, name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	if data == nil {
		data = &PageData{}
	}
	data.Site = rn.site
	data.CSRFToken = middleware.GetCSRFToken(r)
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	execName := "base.html"
	if standaloneTemplates[name] {
		execName = name[len("admin/"):] + ".html"
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, execName, data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Page renders the named template straight to the response. Template
// failures log and return a plain 500.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	html, err := rn.Render(r, name, data)
	if err != nil {
		slog.Error("render failed", "name", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}
