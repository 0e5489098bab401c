// Package catalog holds the static service and location data the site is
// generated from. A Store is immutable once built and safe for concurrent reads.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/rapidresponse/leadsite/internal/model"
)

// Separator joins a service slug and a location slug into one route segment.
// It must never appear inside an individual slug.
const Separator = "-in-"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Store is the in-memory Catalog Store.
type Store struct {
	services  []model.Service
	locations []model.Location

	serviceIndex  map[string]int
	locationIndex map[string]int
}

// File is the on-disk YAML shape of a catalog.
type File struct {
	Services  []model.Service  `yaml:"services"`
	Locations []model.Location `yaml:"locations"`
}

// New validates the given records and builds a Store. The slices are copied.
func New(services []model.Service, locations []model.Location) (*Store, error) {
	s := &Store{
		services:      append([]model.Service(nil), services...),
		locations:     append([]model.Location(nil), locations...),
		serviceIndex:  make(map[string]int, len(services)),
		locationIndex: make(map[string]int, len(locations)),
	}

	var errs []error
	for i, svc := range s.services {
		if err := ValidateSlug(svc.Slug); err != nil {
			errs = append(errs, fmt.Errorf("service %d: %w", i, err))
			continue
		}
		if strings.TrimSpace(svc.Name) == "" {
			errs = append(errs, fmt.Errorf("service %q: name is required", svc.Slug))
		}
		if _, dup := s.serviceIndex[svc.Slug]; dup {
			errs = append(errs, fmt.Errorf("service %q: duplicate slug", svc.Slug))
			continue
		}
		s.serviceIndex[svc.Slug] = i
	}
	for i, loc := range s.locations {
		if err := ValidateSlug(loc.Slug); err != nil {
			errs = append(errs, fmt.Errorf("location %d: %w", i, err))
			continue
		}
		if strings.TrimSpace(loc.Name) == "" {
			errs = append(errs, fmt.Errorf("location %q: name is required", loc.Slug))
		}
		if _, dup := s.locationIndex[loc.Slug]; dup {
			errs = append(errs, fmt.Errorf("location %q: duplicate slug", loc.Slug))
			continue
		}
		s.locationIndex[loc.Slug] = i
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return s, nil
}

// ValidateSlug checks that slug is a lowercase hyphenated token that cannot be
// confused with the combined-route separator.
func ValidateSlug(slug string) error {
	if err := ValidateURLSlug(slug); err != nil {
		return err
	}
	if strings.Contains(slug, Separator) {
		return fmt.Errorf("invalid slug %q: must not contain %q", slug, Separator)
	}
	return nil
}

// ValidateURLSlug checks that slug is a non-empty lowercase hyphenated token
// usable as a single path segment.
func ValidateURLSlug(slug string) error {
	if slug == "" {
		return errors.New("slug is required")
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("invalid slug %q: must match %s", slug, slugPattern.String())
	}
	return nil
}

// Load reads the catalog at path, or returns the built-in catalog when path
// is empty.
func Load(path string) (*Store, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file %s: %w", path, err)
	}

	var f File
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, fmt.Errorf("error unmarshalling catalog file %s: %w", path, err)
	}
	return New(f.Services, f.Locations)
}

// Services returns every service in authoring order.
func (s *Store) Services() []model.Service {
	return append([]model.Service(nil), s.services...)
}

// Locations returns every location in authoring order.
func (s *Store) Locations() []model.Location {
	return append([]model.Location(nil), s.locations...)
}

// Service looks up a service by exact slug.
func (s *Store) Service(slug string) (model.Service, bool) {
	i, ok := s.serviceIndex[slug]
	if !ok {
		return model.Service{}, false
	}
	return s.services[i], true
}

// Location looks up a location by exact slug.
func (s *Store) Location(slug string) (model.Location, bool) {
	i, ok := s.locationIndex[slug]
	if !ok {
		return model.Location{}, false
	}
	return s.locations[i], true
}

func (s *Store) ServiceSlugs() []string {
	out := make([]string, len(s.services))
	for i, svc := range s.services {
		out[i] = svc.Slug
	}
	return out
}

func (s *Store) LocationSlugs() []string {
	out := make([]string, len(s.locations))
	for i, loc := range s.locations {
		out[i] = loc.Slug
	}
	return out
}

// OtherServices returns up to n services excluding slug, in authoring order.
func (s *Store) OtherServices(slug string, n int) []model.Service {
	n = max(n, 0)
	out := make([]model.Service, 0, n)
	for _, svc := range s.services {
		if len(out) == n {
			break
		}
		if svc.Slug != slug {
			out = append(out, svc)
		}
	}
	return out
}

// FirstLocations returns up to n locations in authoring order.
func (s *Store) FirstLocations(n int) []model.Location {
	n = min(max(n, 0), len(s.locations))
	return append([]model.Location(nil), s.locations[:n]...)
}

// FirstServices returns up to n services in authoring order.
func (s *Store) FirstServices(n int) []model.Service {
	n = min(max(n, 0), len(s.services))
	return append([]model.Service(nil), s.services[:n]...)
}
