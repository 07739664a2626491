package calc

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/dimcalc/internal/logger"
)

// MaxSweepSteps bounds the number of samples one sweep may take.
const MaxSweepSteps = 100000

type SweepConfig struct {
	// Vary names the input that changes between samples.
	Vary  string
	From  float64
	To    float64
	Steps int
}

type SweepResult struct {
	Formula string
	Inputs  []Input
	Input   Input
	Unit    string
	// Base holds the fixed arguments; Base[index of Input] is ignored.
	Base []float64
	Xs   []float64
	Ys   []float64
}

// Sweep evaluates f at cfg.Steps evenly spaced values of one input, holding
// the others at base. Samples whose output is NaN or infinite are kept.
func Sweep(ctx context.Context, f Formula, base []float64, cfg SweepConfig) (*SweepResult, error) {
	idx := f.InputIndex(cfg.Vary)
	if idx < 0 {
		return nil, &InputError{Formula: f.Name, Input: cfg.Vary, Err: ErrUnknownInput}
	}
	if len(base) != len(f.Inputs) {
		return nil, fmt.Errorf("%s: want %d, got %d: %w", f.Name, len(f.Inputs), len(base), ErrArity)
	}
	if err := validateSweep(cfg); err != nil {
		return nil, err
	}

	res := &SweepResult{
		Formula: f.Name,
		Inputs:  f.Inputs,
		Input:   f.Inputs[idx],
		Unit:    f.OutputUnit(),
		Base:    append([]float64(nil), base...),
		Xs:      make([]float64, 0, cfg.Steps),
		Ys:      make([]float64, 0, cfg.Steps),
	}

	args := append([]float64(nil), base...)
	last := float64(cfg.Steps - 1)

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			return res, fmt.Errorf("sweep %s after %d samples: %w", f.Name, i, ctx.Err())
		default:
		}

		// Weighted form stays finite when To-From overflows.
		frac := float64(i) / last
		x := cfg.From*(1-frac) + cfg.To*frac
		if i == cfg.Steps-1 {
			x = cfg.To
		}
		args[idx] = x

		res.Xs = append(res.Xs, x)
		res.Ys = append(res.Ys, f.Eval(args))
	}

	logger.Debug("sweep finished", "formula", f.Name, "vary", cfg.Vary, "samples", len(res.Xs))
	return res, nil
}

func validateSweep(cfg SweepConfig) error {
	if cfg.Steps < 2 || cfg.Steps > MaxSweepSteps {
		return fmt.Errorf("steps %d outside [2, %d]: %w", cfg.Steps, MaxSweepSteps, ErrInvalidSweep)
	}
	if math.IsNaN(cfg.From) || math.IsNaN(cfg.To) || math.IsInf(cfg.From, 0) || math.IsInf(cfg.To, 0) {
		return fmt.Errorf("bounds must be finite: %w", ErrInvalidSweep)
	}
	if cfg.From == cfg.To {
		return fmt.Errorf("empty range at %g: %w", cfg.From, ErrInvalidSweep)
	}
	return nil
}

// Finite reports whether every output sample is a finite number.
func (s *SweepResult) Finite() bool {
	for _, y := range s.Ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			return false
		}
	}
	return true
}

// Range returns the smallest and largest finite outputs. ok is false when
// no sample is finite.
func (s *SweepResult) Range() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, y := range s.Ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			continue
		}
		lo = math.Min(lo, y)
		hi = math.Max(hi, y)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}
