package workout

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownActivityType = errors.New("unknown activity type")
	ErrArityMismatch       = errors.New("arity mismatch")
)

// UnknownTypeError reports a type code with no registered variant
type UnknownTypeError struct {
	Code string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownActivityType, e.Code)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownActivityType
}

// ArityError reports a parameter count that does not fit the variant
type ArityError struct {
	Code string
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: %s takes %d params, got %d", ErrArityMismatch, e.Code, e.Want, e.Got)
}

func (e *ArityError) Unwrap() error {
	return ErrArityMismatch
}

type constructor struct {
	arity int
	build func(p []float64) Activity
}

var constructors = map[string]constructor{
	"SWM": {5, func(p []float64) Activity {
		return NewSwimming(int(p[0]), p[1], p[2], int(p[3]), int(p[4]))
	}},
	"RUN": {3, func(p []float64) Activity {
		return NewRunning(int(p[0]), p[1], p[2])
	}},
	"WLK": {4, func(p []float64) Activity {
		return NewWalking(int(p[0]), p[1], p[2], int(p[3]))
	}},
}

// Codes returns the recognized type codes
func Codes() []string {
	return []string{"SWM", "RUN", "WLK"}
}

// Resolve binds the params positionally to the variant named by code
func Resolve(code string, params []float64) (Activity, error) {
	c, ok := constructors[code]
	if !ok {
		return nil, &UnknownTypeError{Code: code}
	}
	if len(params) != c.arity {
		return nil, &ArityError{Code: code, Want: c.arity, Got: len(params)}
	}
	return c.build(params), nil
}
