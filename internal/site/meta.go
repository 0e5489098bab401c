package site

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rapidresponse/leadsite/internal/model"
)

// Meta is the per-page head data.
type Meta struct {
	Title       string
	Description string
	Keywords    []string
	Canonical   string
	OGType      string
	Robots      string
}

func lower(s string) string {
	return cases.Lower(language.English).String(s)
}

func (s *Site) meta(path, title, description string, keywords ...string) Meta {
	return Meta{
		Title:       title,
		Description: description,
		Keywords:    keywords,
		Canonical:   s.cfg.CanonicalURL(path),
		OGType:      "website",
	}
}

// titled appends the business name the way every non-home page title does.
func (s *Site) titled(title string) string {
	return fmt.Sprintf("%s | %s", title, s.cfg.Business.Name)
}

func (s *Site) homeMeta() Meta {
	b := s.cfg.Business
	return s.meta("/",
		fmt.Sprintf("%s %s | 24/7 Emergency Plumber", b.Name, b.Region),
		fmt.Sprintf("%s's trusted plumbing experts. Available 24/7 for emergency plumbing, blocked drains, hot water systems, and all plumbing services across %s.", b.Region, b.Region),
		"plumber "+b.Region, "emergency plumber", "blocked drains", "hot water systems", "plumbing services "+b.Region, "24/7 plumber",
	)
}

func (s *Site) combinedMeta(path string, svc model.Service, loc model.Location) Meta {
	name := lower(svc.Name)
	return s.meta(path,
		s.titled(fmt.Sprintf("%s in %s - 24/7 Fast Response", svc.Name, loc.Name)),
		fmt.Sprintf("Professional %s in %s. Fast, reliable service from licensed plumbers. Available 24/7 for emergencies. Call %s for free quote.", name, loc.Name, s.cfg.Business.Phone),
		fmt.Sprintf("%s %s", name, loc.Name),
		fmt.Sprintf("%s %s", loc.Name, name),
		fmt.Sprintf("best %s in %s", name, loc.Name),
		fmt.Sprintf("emergency %s %s", name, loc.Name),
	)
}

func (s *Site) serviceMeta(path string, svc model.Service) Meta {
	region := s.cfg.Business.Region
	return s.meta(path,
		fmt.Sprintf("%s %s | Professional Plumbing Services", svc.Name, region),
		fmt.Sprintf("Expert %s services in %s. %s Call %s for fast, reliable service.", lower(svc.Name), region, svc.Description, s.cfg.Business.Phone),
	)
}

func (s *Site) locationMeta(path string, loc model.Location) Meta {
	return s.meta(path,
		fmt.Sprintf("Plumber %s | 24/7 Emergency Plumbing Services", loc.Name),
		fmt.Sprintf("Professional plumbing services in %s. Emergency plumber available 24/7. Blocked drains, hot water, leaks, and all plumbing needs. Call %s.", loc.Name, s.cfg.Business.Phone),
	)
}

func (s *Site) postMeta(path string, post model.BlogPost) Meta {
	m := s.meta(path,
		fmt.Sprintf("%s | %s Blog", post.Title, s.cfg.Business.Name),
		post.Description(),
		post.Keywords...,
	)
	m.OGType = "article"
	return m
}

func (s *Site) notFoundMeta() Meta {
	m := s.meta("", s.titled("Page Not Found"), "The page you were looking for could not be found.")
	m.Canonical = ""
	m.Robots = "noindex"
	return m
}
