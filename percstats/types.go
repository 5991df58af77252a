package percstats

import (
	"errors"
	"math"
)

// ErrInvalidArgument indicates a non-positive grid size or trial count.
var ErrInvalidArgument = errors.New("percstats: grid size and trial count must be > 0")

// Confidence95 is the two-sided z-score for a 95% confidence interval.
const Confidence95 = 1.96

// Source yields uniformly distributed integers over the closed range [lo, hi].
type Source interface {
	Uniform(lo, hi int) int
}

// Options configures Run.
type Options struct {
	// Seed selects the RNG family; 0 means defaultRNGSeed.
	Seed int64
	// Workers bounds the number of trials run concurrently; values < 1 mean 1.
	Workers int
	// OnTrial, if set, is called after each trial completes. It may be
	// called from several goroutines at once.
	OnTrial func(index int, threshold float64)
}

// Option mutates Options.
type Option func(*Options)

// WithSeed sets Options.Seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithWorkers sets Options.Workers.
func WithWorkers(w int) Option {
	return func(o *Options) {
		o.Workers = w
	}
}

// WithOnTrial sets Options.OnTrial.
func WithOnTrial(fn func(index int, threshold float64)) Option {
	return func(o *Options) {
		o.OnTrial = fn
	}
}

// DefaultOptions returns Seed=0 (default stream), Workers=1, no hook.
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Workers: 1,
	}
}

// Result holds per-trial thresholds and their summary statistics.
type Result struct {
	N            int       `toml:"n"`
	Trials       int       `toml:"trials"`
	Thresholds   []float64 `toml:"-"`
	Mean         float64   `toml:"mean"`
	Stddev       float64   `toml:"stddev"`
	ConfidenceLo float64   `toml:"confidence_lo"`
	ConfidenceHi float64   `toml:"confidence_hi"`
}

// HasInterval reports whether the confidence interval is finite.
func (r *Result) HasInterval() bool {
	return !math.IsNaN(r.ConfidenceLo) && !math.IsNaN(r.ConfidenceHi)
}
