// Package publisher delivers workout summary events to Kafka.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"example.com/workouts/internal/domain"
	"example.com/workouts/internal/events"
)

type messageWriter interface {
	WriteMessages(context.Context, string, ...kafka.Message) error
}

// Option configures an EventPublisher.
type Option func(*EventPublisher)

// WithLogger overrides the logger used to report delivery errors.
func WithLogger(logger *slog.Logger) Option {
	return func(p *EventPublisher) {
		p.logger = logger
	}
}

// WithTimeout bounds each delivery.
func WithTimeout(timeout time.Duration) Option {
	return func(p *EventPublisher) {
		p.timeout = timeout
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *EventPublisher) {
		p.now = now
	}
}

// EventPublisher turns computed summaries into workout.summarized records.
type EventPublisher struct {
	writer  messageWriter
	topic   string
	timeout time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

// NewEventPublisher constructs an EventPublisher writing to topic.
func NewEventPublisher(writer messageWriter, topic string, opts ...Option) *EventPublisher {
	p := &EventPublisher{
		writer: writer,
		topic:  topic,
		now:    func() time.Time { return time.Now().UTC() },
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PublishSummaries writes one record per result, keyed by tenant so a tenant's
// summaries stay ordered within a partition.
func (p *EventPublisher) PublishSummaries(ctx context.Context, tenantID string, results []domain.Result) error {
	if len(results) == 0 {
		return nil
	}
	start := time.Now()
	defer func() { publishDuration.Observe(time.Since(start).Seconds()) }()

	occurredAt := p.now()
	msgs := make([]kafka.Message, 0, len(results))
	for _, res := range results {
		evt := events.WorkoutSummarized{
			EventID:     uuid.NewString(),
			TenantID:    tenantID,
			Code:        res.Code,
			WorkoutType: res.Summary.WorkoutType,
			Duration:    domain.Finite(res.Summary.Duration),
			Distance:    domain.Finite(res.Summary.Distance),
			Speed:       domain.Finite(res.Summary.Speed),
			Calories:    domain.Finite(res.Summary.Calories),
			Message:     res.Summary.Message(),
			OccurredAt:  occurredAt,
		}
		payload, err := json.Marshal(evt)
		if err != nil {
			failedCounter.Add(float64(len(results)))
			return fmt.Errorf("encode %s event: %w", events.TypeWorkoutSummarized, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(tenantID),
			Value: payload,
			Time:  occurredAt,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(events.TypeWorkoutSummarized)},
				{Key: "event_id", Value: []byte(evt.EventID)},
				{Key: "tenant_id", Value: []byte(tenantID)},
			},
		})
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.writer.WriteMessages(ctx, p.topic, msgs...); err != nil {
		failedCounter.Add(float64(len(msgs)))
		p.logger.Error("summary events not delivered", "topic", p.topic, "tenant_id", tenantID, "count", len(msgs), "error", err)
		return fmt.Errorf("write %d events to %s: %w", len(msgs), p.topic, err)
	}
	publishedCounter.Add(float64(len(msgs)))
	p.logger.Debug("summary events delivered", "topic", p.topic, "tenant_id", tenantID, "count", len(msgs))
	return nil
}

// Noop discards summaries. It is used when no brokers are configured.
type Noop struct{}

// PublishSummaries implements domain.SummaryPublisher.
func (Noop) PublishSummaries(context.Context, string, []domain.Result) error { return nil }
