package calc

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFormula   = errors.New("calc: unknown formula")
	ErrDuplicateFormula = errors.New("calc: formula already registered")
	ErrArity            = errors.New("calc: wrong number of inputs")
	ErrMissingInput     = errors.New("calc: missing input")
	ErrUnknownInput     = errors.New("calc: unknown input")
	ErrInvalidSweep     = errors.New("calc: invalid sweep range")
)

// InputError ties an input failure to the formula and input it concerns.
type InputError struct {
	Formula string
	Input   string
	Err     error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: input %q: %v", e.Formula, e.Input, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
