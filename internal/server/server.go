// Package server serves the site dynamically: every page is assembled per
// request from the current site snapshot, and contact submissions are
// forwarded to the lead endpoint.
package server

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/rapidresponse/leadsite/internal/leads"
	"github.com/rapidresponse/leadsite/internal/logging"
	"github.com/rapidresponse/leadsite/internal/site"
)

// Options configures a Server.
type Options struct {
	// Leads receives contact submissions. When nil every submission fails as
	// unavailable.
	Leads leads.Submitter
	// RatePerMinute and Burst bound lead submissions per client IP. A
	// non-positive rate disables limiting.
	RatePerMinute int
	Burst         int
	// StaticDir is served for paths no page claims.
	StaticDir      string
	RequestTimeout time.Duration
	// NoCache disables client caching, for local development.
	NoCache bool
	Logger  *zap.Logger
}

// Server is an http.Handler over a swappable site snapshot.
type Server struct {
	site      atomic.Pointer[site.Site]
	leads     leads.Submitter
	limiter   *ipLimiter
	staticDir string
	logger    *zap.Logger
	router    chi.Router
}

func New(s *site.Site, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	srv := &Server{
		leads:     opts.Leads,
		limiter:   newIPLimiter(opts.RatePerMinute, opts.Burst),
		staticDir: opts.StaticDir,
		logger:    logger,
	}
	srv.site.Store(s)

	r := chi.NewRouter()
	r.Use(
		chimw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		chimw.StripSlashes,
		chimw.Timeout(timeout),
	)
	r.Use(logging.RequestLogger(logger))
	if opts.NoCache {
		r.Use(noCache)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/", srv.handleHome)
	r.Get("/about", srv.handleAbout)
	r.Get("/contact", srv.handleContact)
	r.Post("/contact", srv.handleContactSubmit)
	r.Get("/services", srv.handleServices)
	r.Get("/services/{service}", srv.handleService)
	r.Get("/locations", srv.handleLocations)
	r.Get("/locations/{location}", srv.handleLocation)
	r.Get("/blog", srv.handleBlog)
	r.Get("/blog/{slug}", srv.handlePost)
	r.Get("/sitemap.xml", srv.handleSitemap)
	r.Get("/robots.txt", srv.handleRobots)
	r.Post("/api/leads", srv.handleLeadAPI)
	r.Get("/{token}", srv.handleCombined)
	r.NotFound(srv.handleFallback)

	srv.router = r
	return srv
}

// Reload swaps in a freshly loaded site. Requests already in flight finish
// against the snapshot they started with.
func (s *Server) Reload(next *site.Site) {
	s.site.Store(next)
	s.logger.Info("site reloaded")
}

// Site returns the snapshot new requests are served from.
func (s *Server) Site() *site.Site {
	return s.site.Load()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		next.ServeHTTP(w, r)
	})
}
