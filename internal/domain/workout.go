// Package domain defines the workout formulas and the dispatcher that builds them.
package domain

import "math"

const (
	mInKm  = 1000
	minInH = 60

	runCaloriesSpeedMultiplier = 18
	runCaloriesSpeedShift      = 20

	walkCaloriesWeightMultiplier = 0.035
	walkCaloriesSpeedMultiplier  = 0.029

	swimCaloriesSpeedShift       = 1.1
	swimCaloriesWeightMultiplier = 2
)

// Kind tags the workout variant.
type Kind int

const (
	// KindBase is a bare workout without a calorie formula.
	KindBase Kind = iota
	// KindRunning is a run measured in steps.
	KindRunning
	// KindRaceWalking is a race walk; its calories also depend on height.
	KindRaceWalking
	// KindSwimming is a pool swim measured in strokes and pool lengths.
	KindSwimming
)

// WalkingFormula selects how the race-walking calorie term divides squared speed by height.
type WalkingFormula string

const (
	// WalkingFormulaFloor floors the quotient, matching the historical tracker output.
	WalkingFormulaFloor WalkingFormula = "floor"
	// WalkingFormulaReal uses plain division.
	WalkingFormulaReal WalkingFormula = "real"
)

// ParseWalkingFormula maps a config value to a WalkingFormula.
func ParseWalkingFormula(value string) (WalkingFormula, bool) {
	switch WalkingFormula(value) {
	case WalkingFormulaFloor, "":
		return WalkingFormulaFloor, true
	case WalkingFormulaReal:
		return WalkingFormulaReal, true
	default:
		return "", false
	}
}

type kindConstants struct {
	name       string
	stepLength float64
}

var constants = map[Kind]kindConstants{
	KindBase:        {name: "Training", stepLength: 0.65},
	KindRunning:     {name: "Running", stepLength: 0.65},
	KindRaceWalking: {name: "SportsWalking", stepLength: 0.65},
	KindSwimming:    {name: "Swimming", stepLength: 1.38},
}

// Name returns the workout type name used in summaries.
func (k Kind) Name() string {
	if c, ok := constants[k]; ok {
		return c.name
	}
	return "Unknown"
}

// StepLength returns the metres covered per action, per kind.
func (k Kind) StepLength() float64 {
	return constants[k].stepLength
}

// Workout holds raw sensor readings for one session. Fields outside the
// workout's kind are ignored by the formulas.
type Workout struct {
	Kind     Kind
	Action   int
	Duration float64
	Weight   float64

	Height float64

	LengthPool float64
	CountPool  int

	walking WalkingFormula
}

// NewRunning builds a running workout.
func NewRunning(action int, duration, weight float64) Workout {
	return Workout{Kind: KindRunning, Action: action, Duration: duration, Weight: weight}
}

// NewRaceWalking builds a race-walking workout using the floor formula.
func NewRaceWalking(action int, duration, weight, height float64) Workout {
	return Workout{Kind: KindRaceWalking, Action: action, Duration: duration, Weight: weight, Height: height}
}

// NewSwimming builds a swimming workout.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Workout {
	return Workout{
		Kind:       KindSwimming,
		Action:     action,
		Duration:   duration,
		Weight:     weight,
		LengthPool: lengthPool,
		CountPool:  countPool,
	}
}

// WithWalkingFormula returns a copy of w using the given race-walking formula.
func (w Workout) WithWalkingFormula(f WalkingFormula) Workout {
	w.walking = f
	return w
}

// Distance returns the covered distance in km.
func (w Workout) Distance() float64 {
	return float64(w.Action) * w.Kind.StepLength() / mInKm
}

// MeanSpeed returns the average speed in km/h.
func (w Workout) MeanSpeed() float64 {
	if w.Kind == KindSwimming {
		return w.LengthPool * float64(w.CountPool) / mInKm / w.Duration
	}
	return w.Distance() / w.Duration
}

// SpentCalories returns the calories burned during the workout.
func (w Workout) SpentCalories() (float64, error) {
	switch w.Kind {
	case KindRunning:
		return (runCaloriesSpeedMultiplier*w.MeanSpeed() - runCaloriesSpeedShift) *
			w.Weight / mInKm * w.Duration * minInH, nil
	case KindRaceWalking:
		return (walkCaloriesWeightMultiplier*w.Weight +
			w.speedHeightTerm()*walkCaloriesSpeedMultiplier*w.Height) * w.Duration * minInH, nil
	case KindSwimming:
		return (w.MeanSpeed() + swimCaloriesSpeedShift) * swimCaloriesWeightMultiplier * w.Weight, nil
	default:
		return 0, ErrNotImplementedForBaseType
	}
}

func (w Workout) speedHeightTerm() float64 {
	speed := w.MeanSpeed()
	if w.walking == WalkingFormulaReal {
		return speed * speed / w.Height
	}
	return floorDiv(speed*speed, w.Height)
}

// Summary computes the workout statistics.
func (w Workout) Summary() (Summary, error) {
	calories, err := w.SpentCalories()
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		WorkoutType: w.Kind.Name(),
		Duration:    w.Duration,
		Distance:    w.Distance(),
		Speed:       w.MeanSpeed(),
		Calories:    calories,
	}, nil
}

// floorDiv divides a by b rounding toward negative infinity, with the
// remainder taken first so near-integer quotients are not rounded up.
func floorDiv(a, b float64) float64 {
	if b == 0 {
		return math.NaN()
	}
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}
