package espalier

import (
	"log/slog"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/formschema"
	"github.com/aretw0/espalier/pkg/gaps"
	"github.com/aretw0/espalier/pkg/workflow"
)

// Version of the library. Bump on release.
const Version = "0.3.0"

// ReviewResult bundles the output of one full pipeline run.
type ReviewResult struct {
	Issues    []workflow.Issue       `json:"issues"`
	Artifacts []*formschema.Artifact `json:"artifacts"`
	Report    *gaps.Report           `json:"report"`
}

// Reviewer is the high-level entry point: one call runs the workflow
// validator, the schema compiler and the gap analyzer over a whole design.
// The zero value is usable; options tune logging and analysis.
type Reviewer struct {
	logger *slog.Logger
	opts   gaps.Options
}

// Option configures a Reviewer.
type Option func(*Reviewer)

// WithLogger sets a structured logger. Default is a no-op logger: the
// pipeline itself stays silent unless asked.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reviewer) {
		r.logger = logger
	}
}

// WithServiceType enables the service-specific analysis rule extension.
func WithServiceType(serviceType string) Option {
	return func(r *Reviewer) {
		r.opts.ServiceType = serviceType
	}
}

// WithAnalysisOptions replaces the full analysis options.
func WithAnalysisOptions(opts gaps.Options) Option {
	return func(r *Reviewer) {
		r.opts = opts
	}
}

// New creates a Reviewer.
func New(opts ...Option) *Reviewer {
	r := &Reviewer{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Review runs the full pipeline. It is pure and synchronous: no I/O, no
// shared state, deterministic for identical input. Concurrent calls are
// safe.
func (r *Reviewer) Review(design domain.Design) *ReviewResult {
	opts := r.opts
	if opts.ServiceType == "" {
		opts.ServiceType = design.ServiceType
	}

	issues := workflow.Validate(design.Workflow)
	artifacts := formschema.CompileAll(design.Forms)
	rep := gaps.Analyze(design, opts)

	r.logger.Debug("design reviewed",
		"issues", len(issues),
		"forms", len(artifacts),
		"gaps", rep.TotalGaps,
	)

	return &ReviewResult{
		Issues:    issues,
		Artifacts: artifacts,
		Report:    rep,
	}
}
