package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/rapidresponse/leadsite/internal/leads"
	"github.com/rapidresponse/leadsite/internal/logging"
	"github.com/rapidresponse/leadsite/internal/site"
)

const maxLeadBody = 64 << 10

func (s *Server) render(w http.ResponseWriter, r *http.Request, page site.Page, status int) {
	var buf bytes.Buffer
	if err := s.Site().Render(&buf, page); err != nil {
		logging.FromRequest(r, s.logger).Error("render page", zap.String("layout", page.Layout), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	page := s.Site().NotFound()
	s.render(w, r, page, page.Status)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.Site().Home(), http.StatusOK)
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.Site().About(), http.StatusOK)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.Site().Contact(nil), http.StatusOK)
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.Site().ServicesIndex(), http.StatusOK)
}

func (s *Server) handleService(w http.ResponseWriter, r *http.Request) {
	page, ok := s.Site().Service(chi.URLParam(r, "service"))
	if !ok {
		s.notFound(w, r)
		return
	}
	s.render(w, r, page, http.StatusOK)
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.Site().LocationsIndex(), http.StatusOK)
}

func (s *Server) handleLocation(w http.ResponseWriter, r *http.Request) {
	page, ok := s.Site().Location(chi.URLParam(r, "location"))
	if !ok {
		s.notFound(w, r)
		return
	}
	s.render(w, r, page, http.StatusOK)
}

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.Site().BlogIndex(), http.StatusOK)
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	page, ok := s.Site().Post(chi.URLParam(r, "slug"))
	if !ok {
		s.notFound(w, r)
		return
	}
	s.render(w, r, page, http.StatusOK)
}

// handleCombined serves "/<service>-in-<location>". Single-segment paths that
// are not combined tokens fall through to static files, then the 404 page.
func (s *Server) handleCombined(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	page, res := s.Site().Combined(token)
	if res.Found() {
		s.render(w, r, page, http.StatusOK)
		return
	}
	logging.FromRequest(r, s.logger).Debug("combined route not resolved",
		zap.String("token", token),
		zap.Stringer("reason", res.Reason),
	)
	s.handleFallback(w, r)
}

func (s *Server) handleFallback(w http.ResponseWriter, r *http.Request) {
	if s.serveStatic(w, r) {
		return
	}
	s.notFound(w, r)
}

// serveStatic serves the file under StaticDir matching the request path and
// reports whether one existed.
func (s *Server) serveStatic(w http.ResponseWriter, r *http.Request) bool {
	if s.staticDir == "" || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		return false
	}
	name := filepath.Join(s.staticDir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	info, err := os.Stat(name)
	if err != nil || info.IsDir() {
		return false
	}
	http.ServeFile(w, r, name)
	return true
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	st := s.Site()
	var buf bytes.Buffer
	if err := st.WriteSitemap(&buf, st.Pages()); err != nil {
		logging.FromRequest(r, s.logger).Error("write sitemap", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := s.Site().WriteRobots(w); err != nil {
		logging.FromRequest(r, s.logger).Warn("write robots", zap.Error(err))
	}
}

func (s *Server) submit(ctx context.Context, lead leads.Lead) error {
	lead = lead.Normalize()
	if err := lead.Validate(); err != nil {
		return err
	}
	if s.leads == nil {
		return leads.ErrUnavailable
	}
	return s.leads.Submit(ctx, lead)
}

// handleContactSubmit runs the form through one submission attempt and
// re-renders the contact page in the resulting state.
func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		form := leads.NewForm()
		form.Fail(leads.UserMessage(err))
		s.render(w, r, s.Site().Contact(form), http.StatusBadRequest)
		return
	}
	form := leads.NewForm()
	form.Values = leads.Lead{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Message: r.PostFormValue("message"),
	}

	if !s.limiter.Allow(r) {
		form.RateLimited()
		s.render(w, r, s.Site().Contact(form), http.StatusTooManyRequests)
		return
	}

	if err := form.Submit(r.Context(), submitterFunc(s.submit)); err != nil {
		logging.FromRequest(r, s.logger).Info("contact submission failed", zap.Error(err))
		s.render(w, r, s.Site().Contact(form), statusFor(err))
		return
	}
	s.render(w, r, s.Site().Contact(form), http.StatusOK)
}

type leadResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// handleLeadAPI accepts a JSON lead and forwards it, for clients that post
// without a page reload.
func (s *Server) handleLeadAPI(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromRequest(r, s.logger)

	if !s.limiter.Allow(r) {
		writeJSON(w, http.StatusTooManyRequests, leadResponse{Error: leads.MsgRateLimited})
		return
	}

	var lead leads.Lead
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxLeadBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&lead); err != nil {
		writeJSON(w, http.StatusBadRequest, leadResponse{Error: "Invalid request body"})
		return
	}

	if err := s.submit(r.Context(), lead); err != nil {
		logger.Info("lead api submission failed", zap.Error(err))
		writeJSON(w, statusFor(err), leadResponse{Error: leads.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, leadResponse{Success: true})
}

// statusFor maps a submission error to the status returned to the visitor.
func statusFor(err error) int {
	var rejected *leads.RejectedError
	switch {
	case errors.Is(err, leads.ErrInvalidLead):
		return http.StatusBadRequest
	case errors.As(err, &rejected):
		if rejected.Status >= 400 && rejected.Status < 500 {
			return http.StatusUnprocessableEntity
		}
		return http.StatusBadGateway
	case errors.Is(err, leads.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type submitterFunc func(context.Context, leads.Lead) error

func (f submitterFunc) Submit(ctx context.Context, lead leads.Lead) error { return f(ctx, lead) }

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
