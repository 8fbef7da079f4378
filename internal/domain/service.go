package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// SummaryPublisher announces computed summaries to downstream consumers.
type SummaryPublisher interface {
	PublishSummaries(ctx context.Context, tenantID string, results []Result) error
}

// Recorder receives calculation outcomes for metrics.
type Recorder interface {
	SummaryComputed(Summary)
	DispatchFailed(reason string)
}

// Result pairs a package code with its computed summary.
type Result struct {
	Code    string
	Summary Summary
}

// PackageError identifies the package that stopped a batch.
type PackageError struct {
	Index int
	Code  string
	Err   error
}

func (e *PackageError) Error() string {
	return fmt.Sprintf("package %d (%s): %v", e.Index, e.Code, e.Err)
}

func (e *PackageError) Unwrap() error {
	return e.Err
}

// ServiceOption configures optional collaborators of a Service.
type ServiceOption func(*Service)

// WithPublisher sets the publisher notified after successful calculations.
func WithPublisher(p SummaryPublisher) ServiceOption {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) ServiceOption {
	return func(s *Service) {
		s.recorder = r
	}
}

// WithLogger overrides the service logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// Service orchestrates summary calculation for the API.
type Service struct {
	walking   WalkingFormula
	publisher SummaryPublisher
	recorder  Recorder
	logger    *slog.Logger
}

// NewService constructs a Service using walking as the default race-walking formula.
func NewService(walking WalkingFormula, opts ...ServiceOption) *Service {
	s := &Service{
		walking:  walking,
		recorder: nopRecorder{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SummarizeInput captures a single calculation request.
type SummarizeInput struct {
	TenantID       string
	Package        Package
	WalkingFormula WalkingFormula
}

// SummarizeBatchInput captures an ordered batch of packages.
type SummarizeBatchInput struct {
	TenantID       string
	Packages       []Package
	WalkingFormula WalkingFormula
}

// Summarize computes and publishes the summary for one package.
func (s *Service) Summarize(ctx context.Context, input SummarizeInput) (Result, error) {
	results, err := s.SummarizeBatch(ctx, SummarizeBatchInput{
		TenantID:       input.TenantID,
		Packages:       []Package{input.Package},
		WalkingFormula: input.WalkingFormula,
	})
	if err != nil {
		var pkgErr *PackageError
		if errors.As(err, &pkgErr) {
			return Result{}, pkgErr.Err
		}
		return Result{}, err
	}
	return results[0], nil
}

// SummarizeBatch computes every package in order. The first failing package
// aborts the batch with a *PackageError and nothing is published.
func (s *Service) SummarizeBatch(ctx context.Context, input SummarizeBatchInput) ([]Result, error) {
	formula := input.WalkingFormula
	if formula == "" {
		formula = s.walking
	}
	dispatcher := NewDispatcher(WithWalkingFormula(formula))

	results := make([]Result, 0, len(input.Packages))
	for i, pkg := range input.Packages {
		summary, err := summarize(dispatcher, pkg)
		if err != nil {
			s.recorder.DispatchFailed(ErrorReason(err))
			return nil, &PackageError{Index: i, Code: pkg.Code, Err: err}
		}
		s.recorder.SummaryComputed(summary)
		results = append(results, Result{Code: pkg.Code, Summary: summary})
	}

	if s.publisher != nil && len(results) > 0 {
		if err := s.publisher.PublishSummaries(ctx, input.TenantID, results); err != nil {
			s.logger.Warn("publish summaries failed", "tenant_id", input.TenantID, "count", len(results), "error", err)
		}
	}
	return results, nil
}

func summarize(d *Dispatcher, pkg Package) (Summary, error) {
	workout, err := d.ReadPackage(pkg)
	if err != nil {
		return Summary{}, err
	}
	return workout.Summary()
}

type nopRecorder struct{}

func (nopRecorder) SummaryComputed(Summary) {}
func (nopRecorder) DispatchFailed(string)   {}
