// Package percolation is the root of a small toolkit for site percolation on
// square grids.
//
// Under the hood, everything is organized under three subpackages and a command:
//
//	unionfind/     weighted quick-union with path compression over [0, m)
//	percolation/   n×n Grid with virtual top/bottom nodes: Open, IsOpen,
//	               IsFull, NumberOfOpenSites, Percolates
//	percstats/     Monte Carlo threshold estimation: Trial, Run, Summarize
//	cmd/percolate  CLI printing mean, stddev and the 95% confidence interval
//
// Quick ASCII example (X = open):
//
//	. X .
//	. X X
//	. . X
//
// percolates: the open path joins the top row to the bottom row.
//
//	go run ./cmd/percolate 200 100
package percolation
