package codec

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/nirek13/newportfolio/internal/models"
)

// sampleFile is a realistic data file: imports and a type declaration
// surrounding the exported post array literal.
const sampleFile = `import type { BlogPost } from "./types";

export interface BlogPostIndex {
  [slug: string]: BlogPost;
}

export const blogPosts: BlogPost[] = [
  {
    "slug": "first-post",
    "title": "First Post",
    "excerpt": "The very first post.",
    "content": "Hello **world**.",
    "date": "2024-03-01",
    "readTime": "1 min read",
    "tags": ["go", "meta"],
    "featured": true
  },
  {
    "slug": "second-post",
    "title": "Second Post",
    "excerpt": "Another one.",
    "content": "More words here.",
    "date": "2024-02-15",
    "readTime": "1 min read",
    "tags": [],
    "featured": false,
    "image": "/images/second.jpg"
  }
];

export function postCount(): number {
  return blogPosts.length;
}
`

func TestDecode(t *testing.T) {
	posts, err := Decode([]byte(sampleFile))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
	if posts[0].Slug != "first-post" {
		t.Errorf("posts[0].Slug = %q, want %q", posts[0].Slug, "first-post")
	}
	if !posts[0].Featured {
		t.Error("posts[0].Featured = false, want true")
	}
	if posts[0].Image != nil {
		t.Errorf("posts[0].Image = %v, want nil", *posts[0].Image)
	}
	if posts[1].Image == nil || *posts[1].Image != "/images/second.jpg" {
		t.Errorf("posts[1].Image = %v, want /images/second.jpg", posts[1].Image)
	}
	if want := []string{"go", "meta"}; !reflect.DeepEqual(posts[0].Tags, want) {
		t.Errorf("posts[0].Tags = %v, want %v", posts[0].Tags, want)
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{
			name: "declaration missing",
			text: `export const somethingElse = [];`,
		},
		{
			name: "empty file",
			text: "",
		},
		{
			name: "literal is not valid JSON",
			text: `export const blogPosts: BlogPost[] = [ { slug: noQuotes } ];`,
		},
		{
			name: "trailing comma in literal",
			text: `export const blogPosts: BlogPost[] = [
  { "slug": "a", "title": "A", "excerpt": "e", "content": "c", "date": "2024-01-01", "readTime": "1 min read", "tags": [], "featured": false },
];`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.text))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrDecode) {
				t.Errorf("error %v does not wrap ErrDecode", err)
			}
		})
	}
}

func TestEncode_PreservesSurroundingText(t *testing.T) {
	posts, err := Decode([]byte(sampleFile))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	out, err := Encode([]byte(sampleFile), posts[:1])
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	for _, fragment := range []string{
		`import type { BlogPost } from "./types";`,
		"export interface BlogPostIndex",
		"export function postCount(): number",
	} {
		if !bytes.Contains(out, []byte(fragment)) {
			t.Errorf("encoded file lost surrounding fragment %q", fragment)
		}
	}

	// The removed record must be gone.
	if bytes.Contains(out, []byte("second-post")) {
		t.Error("encoded file still contains removed record")
	}
}

func TestEncode_DeclarationMissing(t *testing.T) {
	_, err := Encode([]byte("nothing to see here"), nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrEncode) {
		t.Errorf("error %v does not wrap ErrEncode", err)
	}
}

func TestEncode_EmptyList(t *testing.T) {
	out, err := Encode([]byte(sampleFile), nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	posts, err := Decode(out)
	if err != nil {
		t.Fatalf("Decode after Encode: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("got %d posts, want 0", len(posts))
	}
}

// TestRoundTrip verifies decode(encode(text, decode(text))) == decode(text).
func TestRoundTrip(t *testing.T) {
	original, err := Decode([]byte(sampleFile))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	encoded, err := Encode([]byte(sampleFile), original)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode after Encode: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, original)
	}
}

// TestRoundTrip_MarkdownContent verifies that content with angle brackets
// and markdown survives a round trip without HTML escaping damage.
func TestRoundTrip_MarkdownContent(t *testing.T) {
	posts := []models.Post{{
		Slug:     "markdown-heavy",
		Title:    "Markdown & HTML",
		Excerpt:  "Angle brackets <everywhere>",
		Content:  "# Heading\n\nSome `<code>` and a [link](https://example.com) & more.",
		Date:     "2024-05-05",
		ReadTime: "1 min read",
		Tags:     []string{"markdown"},
	}}

	encoded, err := Encode([]byte(sampleFile), posts)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(posts, decoded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, posts)
	}
	// The file should stay human-readable.
	if bytes.Contains(encoded, []byte(`\u003c`)) {
		t.Error("encoded file contains HTML-escaped angle brackets")
	}
}
