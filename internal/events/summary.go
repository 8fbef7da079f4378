// Package events defines the payloads the tracker emits to Kafka.
package events

import "time"

// TypeWorkoutSummarized is the event_type header value for WorkoutSummarized.
const TypeWorkoutSummarized = "workout.summarized"

// WorkoutSummarized is emitted for every workout summary the API computes.
// Numbers that are NaN or infinite (zero duration input) are null.
type WorkoutSummarized struct {
	EventID     string    `json:"event_id"`
	TenantID    string    `json:"tenant_id"`
	Code        string    `json:"code"`
	WorkoutType string    `json:"workout_type"`
	Duration    *float64  `json:"duration_h"`
	Distance    *float64  `json:"distance_km"`
	Speed       *float64  `json:"speed_kmh"`
	Calories    *float64  `json:"calories_kcal"`
	Message     string    `json:"message"`
	OccurredAt  time.Time `json:"occurred_at"`
}
