package publisher

import "github.com/prometheus/client_golang/prometheus"

var (
	publishedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "workouts",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Number of workout.summarized events written to Kafka.",
	})

	failedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "workouts",
		Subsystem: "events",
		Name:      "failed_total",
		Help:      "Number of workout.summarized events that could not be written.",
	})

	publishDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "workouts",
		Subsystem: "events",
		Name:      "publish_duration_seconds",
		Help:      "Time spent writing a batch of summary events.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
	})
)

func init() {
	prometheus.MustRegister(publishedCounter, failedCounter, publishDuration)
}
