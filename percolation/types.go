package percolation

import (
	"errors"

	"github.com/katalvlaran/percolation/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrInvalidArgument indicates a non-positive grid dimension.
	ErrInvalidArgument = errors.New("percolation: grid size must be > 0")
	// ErrIndexOutOfRange indicates coordinates outside [1,n]×[1,n].
	ErrIndexOutOfRange = errors.New("percolation: site coordinates out of range")
)

// SiteState is the observable state of a single site.
type SiteState int

const (
	// Blocked sites do not conduct.
	Blocked SiteState = iota
	// Open sites conduct but are not connected to the top.
	Open
	// Full sites are open and connected to the top row.
	Full
)

// String implements fmt.Stringer.
func (s SiteState) String() string {
	switch s {
	case Blocked:
		return "blocked"
	case Open:
		return "open"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Options configures a Grid.
type Options struct {
	// BackwashGuard answers IsFull from a second union-find that has no
	// virtual bottom node. Costs one extra n²+1 union-find.
	BackwashGuard bool
}

// Option mutates Options.
type Option func(*Options)

// WithBackwashGuard enables the second union-find used by IsFull.
func WithBackwashGuard() Option {
	return func(o *Options) {
		o.BackwashGuard = true
	}
}

// DefaultOptions returns Options with BackwashGuard disabled.
func DefaultOptions() Options {
	return Options{BackwashGuard: false}
}

// neighborOffsets lists (dRow, dCol) for 4-connectivity: N, E, S, W.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is an n×n percolation system.
//
// Site (row, col) maps to id (row-1)*n + (col-1). The union-find holds n²+2
// elements: ids [0, n²) are sites, top = n² and bottom = n²+1 are virtual.
// fill, when non-nil, holds n²+1 elements (sites plus top only).
type Grid struct {
	n         int
	open      []bool
	openCount int
	uf        *unionfind.UnionFind
	fill      *unionfind.UnionFind
	top       int
	bottom    int
}
