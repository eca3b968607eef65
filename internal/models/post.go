// Copyright (c) 2026 nirek13. All rights reserved. See LICENSE for details.

// Package models defines the data structures stored in the blog data file
// and the core types used throughout the application.
package models

import "strings"

// Post represents a single blog post record as it appears in the data
// file's array literal. JSON field names match the literal verbatim.
type Post struct {
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Date     string   `json:"date"` // YYYY-MM-DD; immutable after creation
	ReadTime string   `json:"readTime"`
	Tags     []string `json:"tags"`
	Featured bool     `json:"featured"`
	Image    *string  `json:"image,omitempty"`
}

// HasTag reports whether the post carries the given tag. Matching is
// exact and case-sensitive.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PostPatch is a partial update of a Post. Nil fields are left as-is;
// non-nil fields overwrite (shallow merge). There is deliberately no
// date field: the stored date always survives an update.
type PostPatch struct {
	Title    *string   `json:"title,omitempty"`
	Excerpt  *string   `json:"excerpt,omitempty"`
	Content  *string   `json:"content,omitempty"`
	ReadTime *string   `json:"readTime,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
	Featured *bool     `json:"featured,omitempty"`
	Image    *string   `json:"image,omitempty"`
}

// Apply merges the patch over the given post and returns the result.
// The original post's date is always preserved.
func (p *PostPatch) Apply(orig Post) Post {
	merged := orig
	if p.Title != nil {
		merged.Title = *p.Title
	}
	if p.Excerpt != nil {
		merged.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		merged.Content = *p.Content
	}
	if p.ReadTime != nil {
		merged.ReadTime = *p.ReadTime
	}
	if p.Tags != nil {
		merged.Tags = *p.Tags
	}
	if p.Featured != nil {
		merged.Featured = *p.Featured
	}
	if p.Image != nil {
		merged.Image = p.Image
	}
	return merged
}

// CleanTags trims whitespace from each tag and drops empty entries,
// preserving order.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
