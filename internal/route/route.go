// Package route maps combined "<service>-in-<location>" route segments to
// catalog records and back.
package route

import (
	"fmt"
	"strings"

	"github.com/rapidresponse/leadsite/internal/catalog"
	"github.com/rapidresponse/leadsite/internal/model"
)

// Kind discriminates a resolution outcome.
type Kind int

const (
	NotFound Kind = iota
	Found
)

func (k Kind) String() string {
	if k == Found {
		return "found"
	}
	return "not_found"
}

// Reason explains a NotFound result.
type Reason int

const (
	ReasonNone Reason = iota
	// ParseFailure means the separator did not split the token into exactly
	// two non-empty parts.
	ParseFailure
	// LookupFailure means the token parsed but one half has no catalog match.
	LookupFailure
)

func (r Reason) String() string {
	switch r {
	case ParseFailure:
		return "parse_failure"
	case LookupFailure:
		return "lookup_failure"
	default:
		return "none"
	}
}

// Result is the outcome of resolving a combined token. Service and Location
// are only meaningful when Kind is Found.
type Result struct {
	Kind     Kind
	Reason   Reason
	Service  model.Service
	Location model.Location
}

func (r Result) Found() bool { return r.Kind == Found }

// Catalog is the read side of the catalog the resolver needs.
type Catalog interface {
	Services() []model.Service
	Locations() []model.Location
	Service(slug string) (model.Service, bool)
	Location(slug string) (model.Location, bool)
}

// Join encodes a service slug and a location slug into a single token.
func Join(serviceSlug, locationSlug string) string {
	return serviceSlug + catalog.Separator + locationSlug
}

// Split decodes a token into its service and location halves. It reports
// false unless the separator occurs exactly once with text on both sides.
func Split(token string) (serviceSlug, locationSlug string, ok bool) {
	parts := strings.Split(token, catalog.Separator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Resolver resolves combined tokens against a catalog. It holds no mutable
// state and is safe for concurrent use.
type Resolver struct {
	catalog Catalog
}

func NewResolver(c Catalog) *Resolver {
	return &Resolver{catalog: c}
}

// Resolve parses token and looks up both halves.
func (r *Resolver) Resolve(token string) Result {
	serviceSlug, locationSlug, ok := Split(token)
	if !ok {
		return Result{Kind: NotFound, Reason: ParseFailure}
	}

	svc, ok := r.catalog.Service(serviceSlug)
	if !ok {
		return Result{Kind: NotFound, Reason: LookupFailure}
	}
	loc, ok := r.catalog.Location(locationSlug)
	if !ok {
		return Result{Kind: NotFound, Reason: LookupFailure}
	}

	return Result{Kind: Found, Service: svc, Location: loc}
}

// Tokens enumerates every service × location token, services outermost.
func (r *Resolver) Tokens() []string {
	services := r.catalog.Services()
	locations := r.catalog.Locations()

	tokens := make([]string, 0, len(services)*len(locations))
	for _, svc := range services {
		for _, loc := range locations {
			tokens = append(tokens, Join(svc.Slug, loc.Slug))
		}
	}
	return tokens
}

// Verify checks that every enumerated token resolves back to the pair it was
// built from and that no two pairs share a token. Catalogs that pass per-slug
// validation can still fail here, e.g. a service slug ending in "-in".
func (r *Resolver) Verify() error {
	seen := make(map[string]struct{})
	for _, svc := range r.catalog.Services() {
		for _, loc := range r.catalog.Locations() {
			token := Join(svc.Slug, loc.Slug)
			if _, dup := seen[token]; dup {
				return fmt.Errorf("token %q produced by more than one pair", token)
			}
			seen[token] = struct{}{}

			res := r.Resolve(token)
			if !res.Found() || res.Service.Slug != svc.Slug || res.Location.Slug != loc.Slug {
				return fmt.Errorf("token %q does not round-trip to (%s, %s): %s", token, svc.Slug, loc.Slug, res.Reason)
			}
		}
	}
	return nil
}
