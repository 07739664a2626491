package viz

import (
	"errors"
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/dimcalc/internal/calc"
)

var ErrNothingToPlot = errors.New("viz: no finite samples to plot")

type PlotOptions struct {
	Width     int
	Height    int
	Precision uint
}

// Plot draws ys against its sample index. NaN and infinite samples are
// left as gaps.
func Plot(ys []float64, caption string, opts PlotOptions) (string, error) {
	if _, _, ok := finiteRange(ys); !ok {
		return "", ErrNothingToPlot
	}

	data := make([]float64, len(ys))
	for i, y := range ys {
		if isFinite(y) {
			data[i] = y
		} else {
			data[i] = math.NaN()
		}
	}

	graphOpts := []asciigraph.Option{asciigraph.Caption(caption)}
	if opts.Width > 0 {
		graphOpts = append(graphOpts, asciigraph.Width(opts.Width))
	}
	if opts.Height > 0 {
		graphOpts = append(graphOpts, asciigraph.Height(opts.Height))
	}
	if opts.Precision > 0 {
		graphOpts = append(graphOpts, asciigraph.Precision(opts.Precision))
	}
	return asciigraph.Plot(data, graphOpts...), nil
}

// PlotSweep plots a sweep with a caption naming both axes.
func PlotSweep(res *calc.SweepResult, opts PlotOptions) (string, error) {
	caption := fmt.Sprintf("%s [%s] vs %s %s..%s %s",
		res.Formula, res.Unit, res.Input.Name,
		FormatNumber(first(res.Xs), 4), FormatNumber(last(res.Xs), 4), res.Input.Quantity.Unit())
	return Plot(res.Ys, caption, opts)
}

func first(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[0]
}

func last(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return xs[len(xs)-1]
}
