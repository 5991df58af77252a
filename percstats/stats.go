package percstats

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/percolation/percolation"
)

// Trial opens uniformly random sites of a fresh n×n grid, with repetition,
// until it percolates, and returns the fraction of sites that are open.
// The loop always terminates: once every site is open the grid percolates.
// Errors from src producing out-of-range coordinates are returned unchanged.
func Trial(n int, src Source) (float64, error) {
	g, err := percolation.New(n)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	for !g.Percolates() {
		row := src.Uniform(1, n)
		col := src.Uniform(1, n)
		if err = g.Open(row, col); err != nil {
			return 0, err
		}
	}

	return float64(g.NumberOfOpenSites()) / float64(n*n), nil
}

// Run performs trials independent Trial calls on n×n grids and summarises them.
//
// Steps:
//  1. Validate n and trials.
//  2. Fan trials out on an errgroup limited to Options.Workers; trial i writes
//     only thresholds[i] and uses trialRNG(Seed, i).
//  3. Wait for every trial, then reduce with Summarize.
//
// Cancelling ctx stops scheduling new trials; Run then returns ctx's error.
func Run(ctx context.Context, n, trials int, opts ...Option) (*Result, error) {
	if n <= 0 || trials <= 0 {
		return nil, fmt.Errorf("%w: n=%d trials=%d", ErrInvalidArgument, n, trials)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	thresholds := make([]float64, trials)
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i := 0; i < trials; i++ {
		if ectx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			p, err := Trial(n, NewRandSource(trialRNG(o.Seed, i)))
			if err != nil {
				return err
			}
			thresholds[i] = p
			if o.OnTrial != nil {
				o.OnTrial(i, p)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	// errgroup only reports errors returned by Go funcs; a cancel that raced
	// the loop break still has to surface.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := Summarize(thresholds)
	if err != nil {
		return nil, err
	}
	res.N = n

	return res, nil
}

// Summarize computes mean, sample standard deviation and the 95% confidence
// interval of thresholds. With one value the stddev and interval are NaN.
// The input slice is copied.
func Summarize(thresholds []float64) (*Result, error) {
	t := len(thresholds)
	if t == 0 {
		return nil, fmt.Errorf("%w: no thresholds", ErrInvalidArgument)
	}
	res := &Result{
		Trials:     t,
		Thresholds: append([]float64(nil), thresholds...),
	}
	if t == 1 {
		res.Mean = thresholds[0]
		res.Stddev = math.NaN()
		res.ConfidenceLo = math.NaN()
		res.ConfidenceHi = math.NaN()
		return res, nil
	}

	res.Mean, res.Stddev = stat.MeanStdDev(thresholds, nil)
	half := Confidence95 * res.Stddev / math.Sqrt(float64(t))
	res.ConfidenceLo = res.Mean - half
	res.ConfidenceHi = res.Mean + half

	return res, nil
}
