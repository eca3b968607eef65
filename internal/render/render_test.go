package render

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nirek13/newportfolio/internal/site"
)

func testSettings() *site.Settings {
	return &site.Settings{
		Title:   "Test Site",
		Tagline: "A site under test",
		Nav: []site.NavItem{
			{Label: "Home", Path: "/", Section: "home"},
			{Label: "Blog", Path: "/blog", Section: "blog"},
		},
	}
}

func TestNew(t *testing.T) {
	rn, err := New(testSettings())
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if len(rn.templates) == 0 {
		t.Fatal("renderer has no parsed templates")
	}

	// Verify well-known templates exist.
	for _, name := range []string{"public/home", "public/blog", "public/post", "admin/login", "admin/dashboard", "admin/post_form"} {
		if _, ok := rn.templates[name]; !ok {
			t.Errorf("expected template %q to be parsed", name)
		}
	}

	// base.html should NOT appear as a standalone template key.
	for _, name := range []string{"public/base", "admin/base"} {
		if _, ok := rn.templates[name]; ok {
			t.Errorf("%s.html should not be registered as a separate template", name)
		}
	}
}

func TestRender_InjectsSiteSettings(t *testing.T) {
	rn, err := New(testSettings())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	html, err := rn.Render(req, "public/home", &PageData{Title: "Home", Section: "home"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(html), "Test Site") {
		t.Error("rendered page missing site title")
	}
	if !strings.Contains(string(html), "/blog") {
		t.Error("rendered page missing nav links")
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	rn, err := New(testSettings())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := rn.Render(req, "public/nope", nil); err == nil {
		t.Fatal("Render accepted unknown template name")
	}
}

func TestRender_StandaloneLogin(t *testing.T) {
	rn, err := New(testSettings())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	html, err := rn.Render(req, "admin/login", &PageData{Title: "Sign In"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// Standalone pages carry their own <html> element.
	if !strings.Contains(string(html), "<html") {
		t.Error("standalone login page missing html element")
	}
	if !strings.Contains(string(html), `name="password"`) {
		t.Error("login page missing password field")
	}
}

func TestPage_WritesHTMLResponse(t *testing.T) {
	rn, err := New(testSettings())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	rn.Page(rec, req, "public/home", &PageData{Title: "Home"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
}
