package workout

import (
	"errors"
	"math"
)

const (
	metersPerKm    = 1000
	minutesPerHour = 60

	stepLength   = 0.65 // meters in one step
	strokeLength = 1.38 // meters in one stroke
)

var (
	// ErrNotImplemented is returned when the base Training is asked for calories
	ErrNotImplemented = errors.New("calorie rule not implemented")
	// ErrDivisionByZero is returned when a formula divisor (duration or height) is zero
	ErrDivisionByZero = errors.New("division by zero")
)

// Kind is the display name of an activity variant
type Kind string

const (
	KindTraining Kind = "Training"
	KindRunning  Kind = "Running"
	KindWalking  Kind = "SportsWalking"
	KindSwimming Kind = "Swimming"
)

// Activity computes distance, speed and calories from raw sensor inputs
type Activity interface {
	Kind() Kind
	Hours() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() (float64, error)
}

// Training holds the inputs common to all activities
type Training struct {
	Action   int
	Duration float64
	Weight   float64
}

func (t *Training) Kind() Kind {
	return KindTraining
}

func (t *Training) Hours() float64 {
	return t.Duration
}

// Distance returns the distance in km covered by steps of the default length
func (t *Training) Distance() float64 {
	return distance(t.Action, stepLength)
}

// MeanSpeed returns the mean speed in km/h
func (t *Training) MeanSpeed() float64 {
	return t.Distance() / t.Duration
}

// SpentCalories has no rule for the base type; every variant supplies its own
func (t *Training) SpentCalories() (float64, error) {
	return 0, ErrNotImplemented
}

func distance(action int, length float64) float64 {
	return float64(action) * length / metersPerKm
}

type Running struct {
	Training
}

const (
	runSpeedCoeffA = 18
	runSpeedCoeffB = 20
)

func NewRunning(action int, duration, weight float64) *Running {
	return &Running{Training{Action: action, Duration: duration, Weight: weight}}
}

func (r *Running) Kind() Kind {
	return KindRunning
}

func (r *Running) SpentCalories() (float64, error) {
	if r.Duration == 0 {
		return 0, ErrDivisionByZero
	}
	return (runSpeedCoeffA*r.MeanSpeed() - runSpeedCoeffB) *
		r.Weight / metersPerKm * (r.Duration * minutesPerHour), nil
}

type Walking struct {
	Training
	Height int
}

const (
	walkWeightCoeff      = 0.035
	walkSpeedHeightCoeff = 0.029
)

func NewWalking(action int, duration, weight float64, height int) *Walking {
	return &Walking{
		Training: Training{Action: action, Duration: duration, Weight: weight},
		Height:   height,
	}
}

func (w *Walking) Kind() Kind {
	return KindWalking
}

// SpentCalories floors the squared speed over height before applying the coefficient
func (w *Walking) SpentCalories() (float64, error) {
	if w.Duration == 0 || w.Height == 0 {
		return 0, ErrDivisionByZero
	}
	speed := w.MeanSpeed()
	ratio := math.Floor(speed * speed / float64(w.Height))
	return (walkWeightCoeff*w.Weight + ratio*walkSpeedHeightCoeff*w.Weight) *
		(w.Duration * minutesPerHour), nil
}

type Swimming struct {
	Training
	PoolLength int
	PoolCount  int
}

const (
	swimSpeedOffset = 1.1
	swimMultiplier  = 2
)

func NewSwimming(action int, duration, weight float64, poolLength, poolCount int) *Swimming {
	return &Swimming{
		Training:   Training{Action: action, Duration: duration, Weight: weight},
		PoolLength: poolLength,
		PoolCount:  poolCount,
	}
}

func (s *Swimming) Kind() Kind {
	return KindSwimming
}

// Distance counts strokes rather than steps
func (s *Swimming) Distance() float64 {
	return distance(s.Action, strokeLength)
}

// MeanSpeed is derived from the pool lengths swum, not the stroke count
func (s *Swimming) MeanSpeed() float64 {
	return float64(s.PoolLength*s.PoolCount) / metersPerKm / s.Duration
}

func (s *Swimming) SpentCalories() (float64, error) {
	if s.Duration == 0 {
		return 0, ErrDivisionByZero
	}
	return (s.MeanSpeed() + swimSpeedOffset) * swimMultiplier * s.Weight, nil
}

// Summary computes the record for an activity
func Summary(act Activity) (*Record, error) {
	if act.Hours() == 0 {
		return nil, ErrDivisionByZero
	}
	cal, err := act.SpentCalories()
	if err != nil {
		return nil, err
	}
	return &Record{
		Type:     act.Kind(),
		Duration: act.Hours(),
		Distance: act.Distance(),
		Speed:    act.MeanSpeed(),
		Calories: cal,
	}, nil
}
