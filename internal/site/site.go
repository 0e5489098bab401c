// Package site assembles catalog, content and image data into renderable
// pages and generates the static site.
package site

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/rapidresponse/leadsite/internal/catalog"
	"github.com/rapidresponse/leadsite/internal/config"
	"github.com/rapidresponse/leadsite/internal/content"
	"github.com/rapidresponse/leadsite/internal/images"
	"github.com/rapidresponse/leadsite/internal/model"
	"github.com/rapidresponse/leadsite/internal/route"
)

const (
	footerServices   = 6
	footerLocations  = 8
	featuredLocales  = 12
	relatedServices  = 3
	relatedPostCount = 3
)

// Info is the site-wide data available to every template as .Site.
type Info struct {
	Title           string
	BaseURL         string
	Business        config.Business
	FooterServices  []model.Service
	FooterLocations []model.Location
	Year            int
}

// Site is everything needed to assemble pages. It is read-only after New and
// safe for concurrent use.
type Site struct {
	cfg       config.Config
	logger    *zap.Logger
	catalog   *catalog.Store
	resolver  *route.Resolver
	posts     *content.Store
	postHTML  map[string]template.HTML
	selector  *images.Selector
	templates *Templates
	info      Info
}

// Parts are the loaded collaborators a Site is assembled from.
type Parts struct {
	Catalog   *catalog.Store
	Posts     *content.Store
	Templates *Templates
	Selector  *images.Selector
}

// Load reads the catalog, content and layouts named by cfg.
func Load(cfg config.Config, logger *zap.Logger) (*Site, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded",
		zap.String("file", cfg.CatalogFile),
		zap.Int("services", len(cat.Services())),
		zap.Int("locations", len(cat.Locations())),
	)

	posts, err := content.LoadDir(cfg.ContentDir, logger)
	if err != nil {
		return nil, err
	}

	tpl, err := LoadTemplates(cfg.LayoutsDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("layouts parsed", zap.String("source", tpl.Source()))

	return New(cfg, Parts{Catalog: cat, Posts: posts, Templates: tpl}, logger)
}

// New assembles a Site from already-loaded parts. It fails when the catalog
// cannot be encoded into unambiguous combined routes or a post's markdown
// cannot be rendered.
func New(cfg config.Config, parts Parts, logger *zap.Logger) (*Site, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if parts.Catalog == nil || parts.Templates == nil {
		return nil, fmt.Errorf("site requires a catalog and templates")
	}
	if parts.Posts == nil {
		parts.Posts = content.NewStore(nil)
	}
	if parts.Selector == nil {
		parts.Selector = images.DefaultSelector()
	}

	resolver := route.NewResolver(parts.Catalog)
	if err := resolver.Verify(); err != nil {
		return nil, fmt.Errorf("catalog cannot be routed: %w", err)
	}

	renderer := content.NewRenderer()
	postHTML := make(map[string]template.HTML, parts.Posts.Len())
	for _, p := range parts.Posts.All() {
		html, err := renderer.HTML(p.Content)
		if err != nil {
			return nil, fmt.Errorf("post '%s': %w", p.Slug, err)
		}
		postHTML[p.Slug] = html
	}

	return &Site{
		cfg:       cfg,
		logger:    logger,
		catalog:   parts.Catalog,
		resolver:  resolver,
		posts:     parts.Posts,
		postHTML:  postHTML,
		selector:  parts.Selector,
		templates: parts.Templates,
		info: Info{
			Title:           cfg.SiteTitle,
			BaseURL:         cfg.BaseURL,
			Business:        cfg.Business,
			FooterServices:  parts.Catalog.FirstServices(footerServices),
			FooterLocations: parts.Catalog.FirstLocations(footerLocations),
			Year:            time.Now().Year(),
		},
	}, nil
}

// Render writes page through its layout.
func (s *Site) Render(w io.Writer, page Page) error {
	return s.templates.Execute(w, page.Layout, page.View)
}

func (s *Site) Config() config.Config      { return s.cfg }
func (s *Site) Catalog() *catalog.Store    { return s.catalog }
func (s *Site) Resolver() *route.Resolver  { return s.resolver }
func (s *Site) Posts() *content.Store      { return s.posts }
func (s *Site) Selector() *images.Selector { return s.selector }
