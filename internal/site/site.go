// Copyright (c) 2026 nirek13. All rights reserved. See LICENSE for details.

// Package site loads the static site settings file: titles, navigation,
// social links, and the copy for the about, photography, and projects
// pages. The file is YAML and is read once at startup — unlike blog
// posts, this content only changes with a deploy.
package site

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds everything the public templates need that isn't a blog post.
type Settings struct {
	Title       string    `yaml:"title"`
	Tagline     string    `yaml:"tagline"`
	Description string    `yaml:"description"`
	Author      string    `yaml:"author"`
	Nav         []NavItem `yaml:"nav"`
	Socials     []Social  `yaml:"socials"`

	About       Page      `yaml:"about"`
	Photography []Photo   `yaml:"photography"`
	Projects    []Project `yaml:"projects"`
}

// NavItem is one entry in the site navigation. Section identifies the
// item for the first-visit highlight.
type NavItem struct {
	Label   string `yaml:"label"`
	Path    string `yaml:"path"`
	Section string `yaml:"section"`
}

// Social is an external profile link shown in the footer.
type Social struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Page is a block of page copy: a heading plus markdown body.
type Page struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
}

// Photo is one photograph on the photography page.
type Photo struct {
	Src     string `yaml:"src"`
	Alt     string `yaml:"alt"`
	Caption string `yaml:"caption"`
}

// Project is one entry on the projects page.
type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	URL         string   `yaml:"url"`
	Tech        []string `yaml:"tech"`
}

// Load reads and parses the settings file at path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site file: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse site file: %w", err)
	}

	if s.Title == "" {
		s.Title = "Portfolio"
	}
	return &s, nil
}
