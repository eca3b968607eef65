package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for post fields.
const (
	maxTitleLen   = 300
	maxExcerptLen = 1_000
	maxContentLen = 100_000
	maxTagLen     = 100
	maxTagCount   = 20
)

// validatePost checks post inputs and returns the first error found.
func validatePost(title, excerpt, content string, tags []string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(excerpt) > maxExcerptLen {
		return "Excerpt is too long (max 1,000 characters)."
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		return "Content is too long (max 100,000 characters)."
	}
	if len(tags) > maxTagCount {
		return "Too many tags (max 20)."
	}
	for _, t := range tags {
		if utf8.RuneCountInString(t) > maxTagLen {
			return "Tag is too long (max 100 characters)."
		}
	}
	return ""
}
