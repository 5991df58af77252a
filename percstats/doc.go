// Package percstats estimates the percolation threshold of an n×n grid by
// Monte Carlo simulation.
//
// What:
//
//   - Trial opens uniformly random sites of a fresh percolation.Grid until it
//     percolates and returns the fraction of open sites.
//   - Run repeats Trial t times on a bounded worker pool and reduces the
//     fractions to mean, sample standard deviation and a 95% confidence
//     interval mean ± 1.96·s/√t.
//   - Summarize performs only the reduction, for callers that collect
//     thresholds themselves.
//
// Determinism:
//
//   - Trial i draws from its own RNG, seeded from (Seed, i) by a SplitMix64
//     mix. Results are identical for any worker count, and seed 0 selects a
//     fixed default.
//
// Degenerate input:
//
//   - With a single trial the sample standard deviation is undefined. Stddev,
//     ConfidenceLo and ConfidenceHi are NaN; Result.HasInterval reports false.
//
// Errors:
//
//   - ErrInvalidArgument: n <= 0, trials <= 0, or empty input to Summarize.
//   - Context errors from Run when ctx is cancelled before all trials finish.
package percstats
