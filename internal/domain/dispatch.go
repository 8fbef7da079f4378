package domain

import "sort"

// Package is one raw sensor reading: a workout type code and its positional values.
type Package struct {
	Code string
	Data []float64
}

// TypeSpec describes how a type code maps onto a workout kind.
type TypeSpec struct {
	Code   string
	Kind   Kind
	Fields []string
}

// Arity is the exact number of values a package of this type must carry.
func (s TypeSpec) Arity() int {
	return len(s.Fields)
}

var registry = map[string]TypeSpec{
	"RUN": {Code: "RUN", Kind: KindRunning, Fields: []string{"action", "duration", "weight"}},
	"WLK": {Code: "WLK", Kind: KindRaceWalking, Fields: []string{"action", "duration", "weight", "height"}},
	"SWM": {Code: "SWM", Kind: KindSwimming, Fields: []string{"action", "duration", "weight", "length_pool", "count_pool"}},
}

// Codes lists the registered type codes in sorted order.
func Codes() []string {
	out := make([]string, 0, len(registry))
	for code := range registry {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Spec returns the registration for code.
func Spec(code string) (TypeSpec, bool) {
	spec, ok := registry[code]
	return spec, ok
}

// Dispatcher turns packages into workouts.
type Dispatcher struct {
	walking WalkingFormula
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithWalkingFormula selects the race-walking calorie formula.
func WithWalkingFormula(f WalkingFormula) DispatcherOption {
	return func(d *Dispatcher) {
		d.walking = f
	}
}

// NewDispatcher constructs a Dispatcher. The floor race-walking formula is the default.
func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{walking: WalkingFormulaFloor}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Read validates the code and value count and builds the matching workout.
// Values are not range checked; integer fields are truncated toward zero.
func (d *Dispatcher) Read(code string, data []float64) (Workout, error) {
	spec, ok := registry[code]
	if !ok {
		return Workout{}, &UnknownWorkoutTypeError{Code: code}
	}
	if len(data) != spec.Arity() {
		return Workout{}, &ArgumentCountError{Code: code, Want: spec.Arity(), Got: len(data)}
	}

	action, duration, weight := int(data[0]), data[1], data[2]
	switch spec.Kind {
	case KindRunning:
		return NewRunning(action, duration, weight), nil
	case KindRaceWalking:
		return NewRaceWalking(action, duration, weight, data[3]).WithWalkingFormula(d.walking), nil
	default:
		return NewSwimming(action, duration, weight, data[3], int(data[4])), nil
	}
}

// ReadPackage is Read for a Package value.
func (d *Dispatcher) ReadPackage(p Package) (Workout, error) {
	return d.Read(p.Code, p.Data)
}
