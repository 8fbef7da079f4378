package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWorkoutType is returned when a package carries an unregistered type code.
	ErrUnknownWorkoutType = errors.New("unknown workout type")
	// ErrArgumentCountMismatch is returned when a package has the wrong number of readings.
	ErrArgumentCountMismatch = errors.New("argument count mismatch")
	// ErrNotImplementedForBaseType is returned when calories are requested from a bare workout.
	ErrNotImplementedForBaseType = errors.New("calorie formula not implemented for base workout")
)

// UnknownWorkoutTypeError carries the rejected code.
type UnknownWorkoutTypeError struct {
	Code string
}

func (e *UnknownWorkoutTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownWorkoutType, e.Code)
}

func (e *UnknownWorkoutTypeError) Unwrap() error {
	return ErrUnknownWorkoutType
}

// ArgumentCountError reports the arity expected for a code and the count received.
type ArgumentCountError struct {
	Code string
	Want int
	Got  int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("%s: %s expects %d values, got %d", ErrArgumentCountMismatch, e.Code, e.Want, e.Got)
}

func (e *ArgumentCountError) Unwrap() error {
	return ErrArgumentCountMismatch
}

// ErrorReason classifies a domain error for metrics and API responses.
func ErrorReason(err error) string {
	switch {
	case errors.Is(err, ErrUnknownWorkoutType):
		return "unknown_workout_type"
	case errors.Is(err, ErrArgumentCountMismatch):
		return "argument_count_mismatch"
	case errors.Is(err, ErrNotImplementedForBaseType):
		return "base_type"
	default:
		return "internal"
	}
}
