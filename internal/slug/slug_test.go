package slug

import "testing"

// TestGenerate exercises the slug generator with typical titles, special
// characters, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Normal titles ---
		{
			name:  "simple two words",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "punctuation and year",
			input: "Hello, World! 2024",
			want:  "hello-world-2024",
		},
		{
			name:  "already lowercase",
			input: "already lowercase",
			want:  "already-lowercase",
		},
		{
			name:  "mixed case sentence",
			input: "The Quick Brown Fox",
			want:  "the-quick-brown-fox",
		},

		// --- Special characters collapse to single hyphens ---
		{
			name:  "slash separated words",
			input: "Frontend/Backend",
			want:  "frontend-backend",
		},
		{
			name:  "ampersand and at sign",
			input: "Rock & Roll @ the Arena",
			want:  "rock-roll-the-arena",
		},
		{
			name:  "consecutive punctuation run",
			input: "wait... what?!",
			want:  "wait-what",
		},
		{
			name:  "version number",
			input: "Version 2.0.1",
			want:  "version-2-0-1",
		},

		// --- Separator trimming ---
		{
			name:  "leading punctuation stripped",
			input: "---hello world",
			want:  "hello-world",
		},
		{
			name:  "trailing punctuation stripped",
			input: "hello world!!!",
			want:  "hello-world",
		},
		{
			name:  "surrounding whitespace",
			input: "  hello world  ",
			want:  "hello-world",
		},
		{
			name:  "tabs and newlines collapse",
			input: "hello\t\nworld",
			want:  "hello-world",
		},

		// --- Edge cases ---
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only special characters",
			input: "!@#$%^&*()",
			want:  "",
		},
		{
			name:  "only hyphens",
			input: "-----",
			want:  "",
		},
		{
			name:  "single character",
			input: "A",
			want:  "a",
		},
		{
			name:  "all numbers",
			input: "123456",
			want:  "123456",
		},
		{
			name:  "date-like string",
			input: "2024-01-15",
			want:  "2024-01-15",
		},

		// --- Realistic blog titles ---
		{
			name:  "tech blog title",
			input: "How I Built This Site (2024 Edition)",
			want:  "how-i-built-this-site-2024-edition",
		},
		{
			name:  "colon separated title",
			input: "Go: The Complete Guide",
			want:  "go-the-complete-guide",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.input)
			if got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerate_Idempotent verifies that generating a slug from an already
// valid slug produces the same result.
func TestGenerate_Idempotent(t *testing.T) {
	slugs := []string{
		"hello-world",
		"my-blog-post-2024",
		"a",
		"123",
	}

	for _, s := range slugs {
		t.Run(s, func(t *testing.T) {
			if got := Generate(s); got != s {
				t.Errorf("Generate(%q) = %q, want idempotent result %q", s, got, s)
			}
		})
	}
}
