// Copyright (c) 2026 nirek13. All rights reserved. See LICENSE for details.

// Package codec maps between the blog data file's source text and a
// structured list of post records. The data file is a TypeScript module
// whose single exported constant holds an array literal of posts; the
// codec locates that literal, parses it as JSON, and can splice an
// updated serialization back in place, leaving the surrounding file
// content (imports, type declarations, helpers) untouched.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/nirek13/newportfolio/internal/models"
)

var (
	// ErrDecode indicates the post array declaration could not be found
	// in the file text, or its literal is not valid JSON.
	ErrDecode = errors.New("codec: decode failed")

	// ErrEncode indicates the declaration could not be located for
	// replacement.
	ErrEncode = errors.New("codec: encode failed")
)

// declPattern matches the exported post array declaration. The literal
// is captured non-greedily up to the first "];" terminator, so string
// values inside the literal must not contain that sequence. The literal
// itself must be plain JSON: no comments, computed expressions, or
// trailing commas.
var declPattern = regexp.MustCompile(`(?s)export\s+const\s+blogPosts\s*:\s*BlogPost\[\]\s*=\s*(\[.*?\])\s*;`)

// Decode extracts and parses the post list from the data file text.
// The returned slice preserves the literal's order. Errors wrap ErrDecode.
func Decode(text []byte) ([]models.Post, error) {
	m := declPattern.FindSubmatchIndex(text)
	if m == nil {
		return nil, fmt.Errorf("%w: blogPosts declaration not found", ErrDecode)
	}

	literal := text[m[2]:m[3]]
	var posts []models.Post
	if err := json.Unmarshal(literal, &posts); err != nil {
		return nil, fmt.Errorf("%w: parse array literal: %v", ErrDecode, err)
	}
	return posts, nil
}

// Encode serializes posts as a 2-space-indented JSON array and replaces
// the old array literal in the file text, returning the full updated
// text. Everything outside the literal is preserved byte-for-byte.
// Errors wrap ErrEncode.
func Encode(text []byte, posts []models.Post) ([]byte, error) {
	m := declPattern.FindSubmatchIndex(text)
	if m == nil {
		return nil, fmt.Errorf("%w: blogPosts declaration not found", ErrEncode)
	}

	if posts == nil {
		posts = []models.Post{}
	}

	// SetEscapeHTML(false) keeps markdown content readable in the file
	// (no < escapes for angle brackets).
	var lit bytes.Buffer
	enc := json.NewEncoder(&lit)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(posts); err != nil {
		return nil, fmt.Errorf("%w: marshal posts: %v", ErrEncode, err)
	}
	literal := bytes.TrimRight(lit.Bytes(), "\n")

	var buf bytes.Buffer
	buf.Grow(len(text) + len(literal))
	buf.Write(text[:m[2]])
	buf.Write(literal)
	buf.Write(text[m[3]:])
	return buf.Bytes(), nil
}
