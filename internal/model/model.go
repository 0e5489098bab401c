package model

import "time"

// Service is a plumbing service offered by the business.
type Service struct {
	Slug        string `yaml:"slug"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Location is a suburb the business services.
type Location struct {
	Slug string `yaml:"slug"`
	Name string `yaml:"name"`
}

// BlogPost represents a single blog article loaded from the content directory.
type BlogPost struct {
	Slug            string
	Title           string
	Excerpt         string
	Content         string // raw markdown source
	Date            time.Time
	Author          string
	FeaturedImage   string
	Images          []string
	Keywords        []string
	MetaDescription string
	SourcePath      string
}

// Description returns the meta description, falling back to the excerpt.
func (p BlogPost) Description() string {
	if p.MetaDescription != "" {
		return p.MetaDescription
	}
	return p.Excerpt
}
