// Package calc exposes the unit derivations as named, introspectable
// formulas so they can be driven from raw numbers.
//
// A [Formula] describes its ordered inputs and its output quantity and
// evaluates over plain float64 values in canonical units:
//
//	reg := calc.NewRegistry()
//	res, err := reg.Evaluate("force", []float64{1000, 9.8}) // 9.8 N
//
// [Sweep] varies one input over a range and collects the outputs, which
// the CLI plots and stores.
package calc
