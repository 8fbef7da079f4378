// Package observability exports Prometheus collectors for summary calculations.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"example.com/workouts/internal/domain"
)

var (
	summariesComputed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workouts",
		Subsystem: "summaries",
		Name:      "computed_total",
		Help:      "Number of workout summaries computed, by workout type.",
	}, []string{"workout_type"})

	dispatchErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "workouts",
		Subsystem: "summaries",
		Name:      "dispatch_errors_total",
		Help:      "Number of packages rejected before a summary could be computed, by reason.",
	}, []string{"reason"})

	caloriesBurned = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "workouts",
		Subsystem: "summaries",
		Name:      "calories_burned",
		Help:      "Distribution of calories per computed summary.",
		Buckets:   prometheus.LinearBuckets(0, 100, 15),
	}, []string{"workout_type"})
)

func init() {
	prometheus.MustRegister(summariesComputed, dispatchErrors, caloriesBurned)
}

// Recorder reports domain outcomes to the Prometheus collectors.
type Recorder struct{}

// SummaryComputed implements domain.Recorder.
func (Recorder) SummaryComputed(s domain.Summary) {
	summariesComputed.WithLabelValues(s.WorkoutType).Inc()
	caloriesBurned.WithLabelValues(s.WorkoutType).Observe(s.Calories)
}

// DispatchFailed implements domain.Recorder.
func (Recorder) DispatchFailed(reason string) {
	dispatchErrors.WithLabelValues(reason).Inc()
}

var _ domain.Recorder = Recorder{}
