package site

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rapidresponse/leadsite/internal/catalog"
	"github.com/rapidresponse/leadsite/internal/config"
	"github.com/rapidresponse/leadsite/internal/content"
	"github.com/rapidresponse/leadsite/internal/images"
	"github.com/rapidresponse/leadsite/internal/leads"
	"github.com/rapidresponse/leadsite/internal/model"
	"github.com/rapidresponse/leadsite/internal/route"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		SiteTitle: "Test Plumbing",
		OutputDir: filepath.Join(t.TempDir(), "public"),
		BaseURL:   "https://plumbing.example",
		Workers:   4,
		Business: config.Business{
			Name:      "Test Plumbing",
			Phone:     "1300 000 000",
			PhoneHref: "tel:1300000000",
			Email:     "hello@plumbing.example",
			Region:    "Melbourne",
		},
	}
}

func testParts(t *testing.T) Parts {
	t.Helper()

	cat, err := catalog.New(
		[]model.Service{
			{Slug: "blocked-drains", Name: "Blocked Drains", Description: "Drain clearing."},
			{Slug: "hot-water", Name: "Hot Water", Description: "Hot water repairs."},
			{Slug: "gas-fitting", Name: "Gas Fitting", Description: "Gas work."},
		},
		[]model.Location{
			{Slug: "carlton", Name: "Carlton"},
			{Slug: "st-kilda", Name: "St Kilda"},
		},
	)
	require.NoError(t, err)

	posts := content.NewStore([]model.BlogPost{
		{Slug: "older", Title: "Older Post", Content: "Body", Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
		{Slug: "newer", Title: "Newer Post", Content: "## Heading\n\nText", Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), FeaturedImage: "https://img.example/featured.jpg"},
	})

	sel, err := images.NewSelector(map[string][]string{
		"blocked-drains":  {"https://img.example/a.jpg", "https://img.example/b.jpg"},
		"hot-water":       {"https://img.example/a.jpg", "https://img.example/b.jpg"},
		images.DefaultKey: {"https://img.example/default.jpg"},
	})
	require.NoError(t, err)

	tpl, err := LoadTemplates("")
	require.NoError(t, err)
	require.Equal(t, "embedded", tpl.Source())

	return Parts{Catalog: cat, Posts: posts, Templates: tpl, Selector: sel}
}

func newTestSite(t *testing.T) *Site {
	t.Helper()
	s, err := New(testConfig(t), testParts(t), nil)
	require.NoError(t, err)
	return s
}

func render(t *testing.T, s *Site, p Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf, p))
	return buf.String()
}

func TestNewRejectsAmbiguousCatalog(t *testing.T) {
	t.Parallel()

	cat, err := catalog.New(
		[]model.Service{{Slug: "plug-in", Name: "Plug In"}},
		[]model.Location{{Slug: "carlton", Name: "Carlton"}},
	)
	require.NoError(t, err)

	parts := testParts(t)
	parts.Catalog = cat
	_, err = New(testConfig(t), parts, nil)
	require.ErrorContains(t, err, "plug-in-in-carlton")
}

func TestNewRequiresCatalogAndTemplates(t *testing.T) {
	t.Parallel()

	_, err := New(testConfig(t), Parts{}, nil)
	require.Error(t, err)
}

func TestPagesCoverEveryRoute(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	pages := s.Pages()

	// 6 fixed, 3 services, 2 locations, 2 posts, 3×2 combined.
	require.Len(t, pages, 6+3+2+2+6)

	seen := make(map[string]bool, len(pages))
	for _, p := range pages {
		require.False(t, seen[p.Path], "duplicate path %s", p.Path)
		seen[p.Path] = true
		require.Equal(t, http.StatusOK, p.Status)
	}
	for _, path := range []string{
		"/", "/about", "/contact", "/services", "/locations", "/blog",
		"/services/hot-water", "/locations/st-kilda", "/blog/newer",
		"/blocked-drains-in-carlton", "/gas-fitting-in-st-kilda",
	} {
		require.True(t, seen[path], "missing %s", path)
	}
}

func TestCombined(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)

	p, res := s.Combined("hot-water-in-st-kilda")
	require.True(t, res.Found())
	require.Equal(t, "/hot-water-in-st-kilda", p.Path)
	require.Equal(t, "Hot Water", p.View.Service.Name)
	require.Equal(t, "St Kilda", p.View.Location.Name)
	require.Equal(t, "Hot Water in St Kilda - 24/7 Fast Response | Test Plumbing", p.View.Meta.Title)
	require.Equal(t, "https://plumbing.example/hot-water-in-st-kilda", p.View.Meta.Canonical)
	require.Len(t, p.View.OtherServices, 2)

	html := render(t, s, p)
	require.Contains(t, html, "Professional Hot Water in St Kilda")
	require.Contains(t, html, `href="/blocked-drains-in-st-kilda"`)

	_, res = s.Combined("hot-water")
	require.Equal(t, route.ParseFailure, res.Reason)

	_, res = s.Combined("hot-water-in-richmond")
	require.Equal(t, route.LookupFailure, res.Reason)
}

func TestHomeCardsDoNotRepeatImages(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	home := s.Home()

	require.Len(t, home.View.ServiceCards, 3)
	require.Equal(t, "https://img.example/a.jpg", home.View.ServiceCards[0].Image)
	require.Equal(t, "https://img.example/b.jpg", home.View.ServiceCards[1].Image)
	require.Equal(t, "https://img.example/default.jpg", home.View.ServiceCards[2].Image)

	// Each page gets its own allocation context.
	again := s.Home()
	require.Equal(t, home.View.ServiceCards, again.View.ServiceCards)
}

func TestServiceAndLocationPages(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)

	p, ok := s.Service("blocked-drains")
	require.True(t, ok)
	require.Equal(t, "Blocked Drains Melbourne | Professional Plumbing Services", p.View.Meta.Title)
	require.Len(t, p.View.ServiceCards, 2)
	require.Len(t, p.View.Locations, 2)
	require.Contains(t, render(t, s, p), `href="/blocked-drains-in-carlton"`)

	_, ok = s.Service("Blocked-Drains")
	require.False(t, ok)

	p, ok = s.Location("carlton")
	require.True(t, ok)
	require.Equal(t, "Plumber Carlton | 24/7 Emergency Plumbing Services", p.View.Meta.Title)
	require.Contains(t, render(t, s, p), `href="/gas-fitting-in-carlton"`)

	_, ok = s.Location("richmond")
	require.False(t, ok)
}

func TestBlogPages(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)

	index := s.BlogIndex()
	require.Len(t, index.View.PostCards, 2)
	require.Equal(t, "newer", index.View.PostCards[0].Post.Slug)
	require.Equal(t, "https://img.example/featured.jpg", index.View.PostCards[0].Image)
	require.Equal(t, images.BlogPlaceholder(1), index.View.PostCards[1].Image)

	p, ok := s.Post("newer")
	require.True(t, ok)
	require.Equal(t, "Newer Post | Test Plumbing Blog", p.View.Meta.Title)
	require.Equal(t, "article", p.View.Meta.OGType)
	html := render(t, s, p)
	require.Contains(t, html, `<h2 id="heading">Heading</h2>`)
	require.Contains(t, html, "Related Articles")
	require.Contains(t, html, `datetime="2024-06-01"`)

	_, ok = s.Post("missing")
	require.False(t, ok)
}

func TestBlogEmptyState(t *testing.T) {
	t.Parallel()

	parts := testParts(t)
	parts.Posts = nil
	s, err := New(testConfig(t), parts, nil)
	require.NoError(t, err)

	require.Contains(t, render(t, s, s.BlogIndex()), "Blog Posts Coming Soon")
}

func TestContactFormStates(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)

	idle := render(t, s, s.Contact(nil))
	require.Contains(t, idle, `action="/contact"`)
	require.NotContains(t, idle, "form-error")

	failed := &leads.Form{Values: leads.Lead{Name: "Jo <b>", Email: "jo@example.com"}}
	failed.Fail("Invalid email")
	html := render(t, s, s.Contact(failed))
	require.Contains(t, html, "Invalid email")
	require.Contains(t, html, `value="Jo &lt;b&gt;"`)

	done := &leads.Form{Status: leads.StatusSuccess}
	require.Contains(t, render(t, s, s.Contact(done)), "Thank You!")
}

func TestNotFoundPage(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	p := s.NotFound()
	require.Equal(t, http.StatusNotFound, p.Status)

	html := render(t, s, p)
	require.Contains(t, html, "Page Not Found")
	require.Contains(t, html, `<meta name="robots" content="noindex">`)
	require.NotContains(t, html, `rel="canonical"`)
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.StaticDir = filepath.Join(t.TempDir(), "static")
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.StaticDir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.StaticDir, "css", "site.css"), []byte("body{}"), 0o644))

	// Stale output is removed.
	require.NoError(t, os.MkdirAll(cfg.OutputDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.OutputDir, "stale.html"), nil, 0o644))

	s, err := New(cfg, testParts(t), nil)
	require.NoError(t, err)

	stats, err := s.Generate(context.Background())
	require.NoError(t, err)
	require.Equal(t, len(s.Pages()), stats.Pages)
	require.Equal(t, 1, stats.Static)

	for _, rel := range []string{
		"index.html",
		"about/index.html",
		"services/hot-water/index.html",
		"locations/carlton/index.html",
		"blog/older/index.html",
		"blocked-drains-in-st-kilda/index.html",
		"404.html",
		"sitemap.xml",
		"robots.txt",
		"css/site.css",
	} {
		require.FileExists(t, filepath.Join(cfg.OutputDir, filepath.FromSlash(rel)))
	}
	require.NoFileExists(t, filepath.Join(cfg.OutputDir, "stale.html"))

	sitemap, err := os.ReadFile(filepath.Join(cfg.OutputDir, "sitemap.xml"))
	require.NoError(t, err)
	require.Contains(t, string(sitemap), "<loc>https://plumbing.example/gas-fitting-in-carlton</loc>")
	require.Contains(t, string(sitemap), "<lastmod>2024-06-01</lastmod>")
	require.Equal(t, len(s.Pages()), strings.Count(string(sitemap), "<url>"))

	robots, err := os.ReadFile(filepath.Join(cfg.OutputDir, "robots.txt"))
	require.NoError(t, err)
	require.Contains(t, string(robots), "Sitemap: https://plumbing.example/sitemap.xml")
}

func TestGenerateKeepsBlogIndexWithDotfilePost(t *testing.T) {
	t.Parallel()

	contentDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, ".md"), []byte("---\ntitle: Hidden Dotfile\n---\nbody\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "fix-a-tap.md"), []byte("---\ntitle: Fix a Tap\n---\nbody\n"), 0o644))
	posts, err := content.LoadDir(contentDir, nil)
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.Workers = 1
	parts := testParts(t)
	parts.Posts = posts
	s, err := New(cfg, parts, nil)
	require.NoError(t, err)

	_, err = s.Generate(context.Background())
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(cfg.OutputDir, "blog", "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(index), "Plumbing Tips &amp; Advice")
	require.NotContains(t, string(index), "<h1>Hidden Dotfile</h1>")
	require.FileExists(t, filepath.Join(cfg.OutputDir, "blog", "fix-a-tap", "index.html"))
}

func TestGenerateCancelled(t *testing.T) {
	t.Parallel()

	s := newTestSite(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoadTemplatesFromDirectory(t *testing.T) {
	t.Parallel()

	// A directory without base.html falls back to the embedded layouts.
	tpl, err := LoadTemplates(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "embedded", tpl.Source())

	// A directory with base.html must provide every page layout.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.html"), []byte(`{{block "content" .}}{{end}}`), 0o644))
	_, err = LoadTemplates(dir)
	require.ErrorContains(t, err, "missing")
}

func TestPageFile(t *testing.T) {
	t.Parallel()

	require.Equal(t, "index.html", pageFile("/"))
	require.Equal(t, filepath.Join("blog", "x", "index.html"), pageFile("/blog/x"))
	require.Equal(t, filepath.Join("a-in-b", "index.html"), pageFile("/a-in-b/"))
}
