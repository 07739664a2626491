package calc

import (
	"fmt"
	"math"
)

type Input struct {
	Name     string
	Quantity Quantity
}

type Formula struct {
	Name        string
	Description string
	Inputs      []Input
	Output      Quantity
	// ScalarUnit names the unit of a Scalar output, e.g. "kg·m/s".
	ScalarUnit string
	Eval       func(args []float64) float64
}

// OutputUnit returns the unit symbol of the formula's result.
func (f Formula) OutputUnit() string {
	if f.Output == Scalar {
		return f.ScalarUnit
	}
	return f.Output.Unit()
}

// InputIndex returns the position of the named input or -1.
func (f Formula) InputIndex(name string) int {
	for i, in := range f.Inputs {
		if in.Name == name {
			return i
		}
	}
	return -1
}

// ParseArgs orders named values into the argument list Eval expects.
// Every input must be present and no unknown name may be given.
func (f Formula) ParseArgs(named map[string]float64) ([]float64, error) {
	for name := range named {
		if f.InputIndex(name) < 0 {
			return nil, &InputError{Formula: f.Name, Input: name, Err: ErrUnknownInput}
		}
	}
	args := make([]float64, len(f.Inputs))
	for i, in := range f.Inputs {
		v, ok := named[in.Name]
		if !ok {
			return nil, &InputError{Formula: f.Name, Input: in.Name, Err: ErrMissingInput}
		}
		args[i] = v
	}
	return args, nil
}

type Result struct {
	Formula string
	Inputs  []Input
	Args    []float64
	Output  Quantity
	Unit    string
	Value   float64
}

// Finite reports whether Value is neither NaN nor infinite.
func (r Result) Finite() bool {
	return !math.IsNaN(r.Value) && !math.IsInf(r.Value, 0)
}

// Apply evaluates the formula after checking arity.
func (f Formula) Apply(args []float64) (Result, error) {
	if len(args) != len(f.Inputs) {
		return Result{}, fmt.Errorf("%s: want %d, got %d: %w", f.Name, len(f.Inputs), len(args), ErrArity)
	}
	in := make([]float64, len(args))
	copy(in, args)
	return Result{
		Formula: f.Name,
		Inputs:  f.Inputs,
		Args:    in,
		Output:  f.Output,
		Unit:    f.OutputUnit(),
		Value:   f.Eval(in),
	}, nil
}
