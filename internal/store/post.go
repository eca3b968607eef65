// Copyright (c) 2026 nirek13. All rights reserved. See LICENSE for details.

// Package store persists blog posts in the single blog data file.
// Every write is a full read-decode-mutate-encode-rewrite cycle over that
// file; every read re-decodes it, so a long-running server always serves
// the file's current contents. A mutex serializes cycles within the
// process and writes go through a temp file plus rename, so concurrent
// operations degrade to last-writer-wins rather than corrupting the file.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/nirek13/newportfolio/internal/codec"
	"github.com/nirek13/newportfolio/internal/models"
)

// ErrNotFound indicates an update or delete referenced a slug absent
// from the data file. No file mutation occurs.
var ErrNotFound = errors.New("store: post not found")

// PostStore reads and writes posts in the blog data file.
type PostStore struct {
	mu   sync.RWMutex
	path string
}

// NewPostStore creates a PostStore over the data file at path.
func NewPostStore(path string) *PostStore {
	return &PostStore{path: path}
}

// Path returns the data file path the store operates on.
func (s *PostStore) Path() string {
	return s.path
}

// load reads and decodes the data file. Callers must hold at least a
// read lock.
func (s *PostStore) load() ([]byte, []models.Post, error) {
	text, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("read data file: %w", err)
	}
	posts, err := codec.Decode(text)
	if err != nil {
		return nil, nil, err
	}
	return text, posts, nil
}

// save encodes posts back into the file text and atomically replaces the
// data file. Callers must hold the write lock.
func (s *PostStore) save(text []byte, posts []models.Post) error {
	updated, err := codec.Encode(text, posts)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(updated); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

// ListAll returns every post sorted by date descending. Posts sharing a
// date keep their relative file order (stable sort).
func (s *PostStore) ListAll() ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, posts, err := s.load()
	if err != nil {
		return nil, err
	}

	// Dates are YYYY-MM-DD, so lexicographic comparison is chronological.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date > posts[j].Date
	})
	return posts, nil
}

// FindBySlug returns the first post with the given slug, or nil if no
// post matches.
func (s *PostStore) FindBySlug(slug string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, posts, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Slug == slug {
			return &posts[i], nil
		}
	}
	return nil, nil
}

// ListFeatured returns featured posts in file order.
func (s *PostStore) ListFeatured() ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, posts, err := s.load()
	if err != nil {
		return nil, err
	}
	featured := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// ListByTag returns posts carrying the exact tag, in file order.
// Matching is case-sensitive.
func (s *PostStore) ListByTag(tag string) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, posts, err := s.load()
	if err != nil {
		return nil, err
	}
	matched := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.HasTag(tag) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Tags returns every distinct tag across all posts, in first-seen order.
func (s *PostStore) Tags() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, posts, err := s.load()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags, nil
}

// Create prepends the post to the data file, so the file stays
// newest-first by construction. Slug uniqueness is a convention the
// caller maintains; no check is performed here.
func (s *PostStore) Create(post models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, posts, err := s.load()
	if err != nil {
		return err
	}
	posts = append([]models.Post{post}, posts...)
	return s.save(text, posts)
}

// Update shallow-merges the patch over the post with the given slug and
// writes the result back. The stored date always survives the merge.
// Returns the merged post, or ErrNotFound if the slug is absent (the
// file is left untouched).
func (s *PostStore) Update(slug string, patch models.PostPatch) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, posts, err := s.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range posts {
		if posts[i].Slug == slug {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}

	posts[idx] = patch.Apply(posts[idx])
	if err := s.save(text, posts); err != nil {
		return nil, err
	}
	merged := posts[idx]
	return &merged, nil
}

// Delete removes every post with the given slug (by convention at most
// one). Returns ErrNotFound if no post matched; the file is left
// untouched in that case.
func (s *PostStore) Delete(slug string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, posts, err := s.load()
	if err != nil {
		return err
	}

	kept := posts[:0]
	for _, p := range posts {
		if p.Slug != slug {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(posts) {
		return fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return s.save(text, kept)
}
