package calc

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/dimcalc/internal/logger"
)

// Batch evaluates f once per row on up to workers goroutines. Results are
// returned in row order. A non-positive workers uses GOMAXPROCS.
func Batch(ctx context.Context, f Formula, rows [][]float64, workers int) ([]Result, error) {
	for i, row := range rows {
		if len(row) != len(f.Inputs) {
			return nil, fmt.Errorf("%s: row %d: want %d, got %d: %w", f.Name, i, len(f.Inputs), len(row), ErrArity)
		}
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(rows))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, row := range rows {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := f.Apply(row)
			if err != nil {
				return fmt.Errorf("row %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("batch evaluated", "formula", f.Name, "rows", len(rows), "workers", workers)
	return results, nil
}
