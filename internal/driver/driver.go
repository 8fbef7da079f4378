// Package driver runs a list of sensor packages through the dispatcher and
// writes one summary line per package.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"example.com/workouts/internal/domain"
)

// DefaultPackages is the built-in sensor feed stand-in.
func DefaultPackages() []domain.Package {
	return []domain.Package{
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger overrides the logger used to report skipped packages.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithContinueOnError makes the driver skip failing packages instead of
// stopping the batch. Failures are returned joined after the last package.
func WithContinueOnError(enabled bool) Option {
	return func(d *Driver) {
		d.continueOnError = enabled
	}
}

// WithRecorder reports outcomes to r.
func WithRecorder(r domain.Recorder) Option {
	return func(d *Driver) {
		d.recorder = r
	}
}

// Driver writes summary lines for packages in input order.
type Driver struct {
	dispatcher      *domain.Dispatcher
	out             io.Writer
	continueOnError bool
	recorder        domain.Recorder
	logger          *slog.Logger
}

// New constructs a Driver writing to out.
func New(dispatcher *domain.Dispatcher, out io.Writer, opts ...Option) *Driver {
	d := &Driver{
		dispatcher: dispatcher,
		out:        out,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run processes packages sequentially. By default the first failing package
// stops the run with a *domain.PackageError; lines written before it stay written.
func (d *Driver) Run(ctx context.Context, packages []domain.Package) error {
	var failures []error
	for i, pkg := range packages {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := d.line(pkg)
		if err != nil {
			pkgErr := &domain.PackageError{Index: i, Code: pkg.Code, Err: err}
			if d.recorder != nil {
				d.recorder.DispatchFailed(domain.ErrorReason(err))
			}
			if !d.continueOnError {
				return pkgErr
			}
			d.logger.Warn("skipping package", "index", i, "code", pkg.Code, "error", err)
			failures = append(failures, pkgErr)
			continue
		}

		if _, err := fmt.Fprintln(d.out, line); err != nil {
			return fmt.Errorf("write summary %d: %w", i, err)
		}
	}
	return errors.Join(failures...)
}

func (d *Driver) line(pkg domain.Package) (string, error) {
	workout, err := d.dispatcher.ReadPackage(pkg)
	if err != nil {
		return "", err
	}
	summary, err := workout.Summary()
	if err != nil {
		return "", err
	}
	if d.recorder != nil {
		d.recorder.SummaryComputed(summary)
	}
	return summary.Message(), nil
}
