package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/formschema"
	"github.com/aretw0/espalier/pkg/workflow"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ArtifactCache stores compiled artifacts keyed by form ID and version.
// The version token changes with the form, so a hit is always current.
type ArtifactCache interface {
	Get(ctx context.Context, formID, version string) (*formschema.Artifact, error)
	Put(ctx context.Context, artifact *formschema.Artifact) error
}

// Server exposes the review pipeline over HTTP. Every endpoint takes a full
// design document in the request body and runs a stateless analysis pass.
type Server struct {
	reviewer *espalier.Reviewer
	logger   *slog.Logger
	metrics  *metrics
	cache    ArtifactCache
}

// HandlerOption configures the HTTP handler.
type HandlerOption func(*Server)

// WithArtifactCache enables compiled-artifact caching on the compile endpoint.
func WithArtifactCache(cache ArtifactCache) HandlerOption {
	return func(s *Server) {
		s.cache = cache
	}
}

// NewHandler creates the HTTP handler for the review API.
func NewHandler(reviewer *espalier.Reviewer, logger *slog.Logger, opts ...HandlerOption) http.Handler {
	s := &Server{
		reviewer: reviewer,
		logger:   logger,
		metrics:  newMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	r.Route("/v1/designs", func(r chi.Router) {
		r.Post("/validate", s.handleValidate)
		r.Post("/compile", s.handleCompile)
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/review", s.handleReview)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": espalier.Version,
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	design, ok := s.decodeDesign(w, r, "validate")
	if !ok {
		return
	}

	issues := workflow.Validate(design.Workflow)
	s.metrics.reviews.WithLabelValues("validate", "ok").Inc()

	writeJSON(w, http.StatusOK, map[string]any{
		"issues":    issues,
		"hasErrors": workflow.HasErrors(issues),
	})
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	design, ok := s.decodeDesign(w, r, "compile")
	if !ok {
		return
	}

	artifacts := s.compileForms(r.Context(), design.Forms)
	s.metrics.reviews.WithLabelValues("compile", "ok").Inc()

	writeJSON(w, http.StatusOK, map[string]any{
		"artifacts": artifacts,
	})
}

// compileForms compiles each form, consulting the artifact cache when one is
// configured. Cache failures fall through to a fresh compile.
func (s *Server) compileForms(ctx context.Context, forms []domain.Form) []*formschema.Artifact {
	if s.cache == nil {
		return formschema.CompileAll(forms)
	}

	artifacts := make([]*formschema.Artifact, len(forms))
	for i, form := range forms {
		version := form.UpdatedAt.UTC().Format(time.RFC3339)
		if cached, err := s.cache.Get(ctx, form.ID, version); err == nil {
			artifacts[i] = cached
			continue
		}

		artifacts[i] = formschema.Compile(form)
		if err := s.cache.Put(ctx, artifacts[i]); err != nil {
			s.logger.Warn("failed to cache artifact", "form_id", form.ID, "err", err)
		}
	}
	return artifacts
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	design, ok := s.decodeDesign(w, r, "analyze")
	if !ok {
		return
	}

	result := s.reviewer.Review(design)
	s.metrics.reviews.WithLabelValues("analyze", "ok").Inc()
	s.countGaps(result)

	writeJSON(w, http.StatusOK, result.Report)
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	design, ok := s.decodeDesign(w, r, "review")
	if !ok {
		return
	}

	result := s.reviewer.Review(design)
	s.metrics.reviews.WithLabelValues("review", "ok").Inc()
	s.countGaps(result)

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) countGaps(result *espalier.ReviewResult) {
	s.metrics.gaps.WithLabelValues("critical").Add(float64(len(result.Report.CriticalGaps)))
	s.metrics.gaps.WithLabelValues("warning").Add(float64(len(result.Report.WarningGaps)))
	s.metrics.gaps.WithLabelValues("suggestion").Add(float64(len(result.Report.SuggestionGaps)))
}

func (s *Server) decodeDesign(w http.ResponseWriter, r *http.Request, endpoint string) (domain.Design, bool) {
	var design domain.Design
	if err := json.NewDecoder(r.Body).Decode(&design); err != nil {
		s.logger.Warn("rejected request body", "endpoint", endpoint, "err", err)
		s.metrics.reviews.WithLabelValues(endpoint, "bad_request").Inc()
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return domain.Design{}, false
	}
	return design, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
