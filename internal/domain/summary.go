package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Summary is the computed report for one workout.
type Summary struct {
	WorkoutType string
	Duration    float64
	Distance    float64
	Speed       float64
	Calories    float64
}

// Message renders the summary as the tracker's fixed informational line.
func (s Summary) Message() string {
	return fmt.Sprintf(
		"Тип тренировки: %s; Длительность: %s ч.; Дистанция: %s км; Ср. скорость: %s км/ч; Потрачено ккал: %s.",
		s.WorkoutType, fixed3(s.Duration), fixed3(s.Distance), fixed3(s.Speed), fixed3(s.Calories),
	)
}

// Finite returns a pointer to v, or nil when v is NaN or infinite.
// JSON payloads carry non-finite results as null.
func Finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// fixed3 formats v with three decimals; non-finite values print as inf, -inf and nan.
func fixed3(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
