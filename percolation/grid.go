package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// New returns an n×n Grid with every site blocked.
// Returns ErrInvalidArgument if n <= 0.
// Complexity: O(n²) time and memory.
func New(n int, opts ...Option) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidArgument, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sites := n * n
	uf, err := unionfind.New(sites + 2)
	if err != nil {
		return nil, err
	}
	g := &Grid{
		n:      n,
		open:   make([]bool, sites),
		uf:     uf,
		top:    sites,
		bottom: sites + 1,
	}
	if o.BackwashGuard {
		if g.fill, err = unionfind.New(sites + 1); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// N returns the grid dimension.
func (g *Grid) N() int {
	return g.n
}

// SiteID maps 1-indexed (row, col) to the row-major id (row-1)*n + (col-1).
// Returns ErrIndexOutOfRange when either coordinate is outside [1,n].
func (g *Grid) SiteID(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) not in [1,%d]x[1,%d]", ErrIndexOutOfRange, row, col, g.n, g.n)
	}

	return g.index(row, col), nil
}

// Open opens the site at (row, col). Opening an open site is a no-op.
// A newly opened site is joined to every already-open 4-neighbour inside
// the grid, to the virtual top if row == 1, and to the virtual bottom if
// row == n.
func (g *Grid) Open(row, col int) error {
	id, err := g.SiteID(row, col)
	if err != nil {
		return err
	}
	if g.open[id] {
		return nil
	}
	g.open[id] = true
	g.openCount++

	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !g.inBounds(nr, nc) {
			continue
		}
		nid := g.index(nr, nc)
		if g.open[nid] {
			g.join(id, nid)
		}
	}
	if row == 1 {
		g.join(id, g.top)
	}
	if row == g.n {
		// fill has no bottom node.
		mustUnion(g.uf, id, g.bottom)
	}

	return nil
}

// IsOpen reports whether (row, col) is open.
func (g *Grid) IsOpen(row, col int) (bool, error) {
	id, err := g.SiteID(row, col)
	if err != nil {
		return false, err
	}

	return g.open[id], nil
}

// IsFull reports whether (row, col) is open and connected to the top row.
// A blocked site is never full.
func (g *Grid) IsFull(row, col int) (bool, error) {
	id, err := g.SiteID(row, col)
	if err != nil {
		return false, err
	}

	return g.isFull(id), nil
}

// NumberOfOpenSites returns the number of open sites.
func (g *Grid) NumberOfOpenSites() int {
	return g.openCount
}

// Percolates reports whether the virtual top and bottom share a root.
func (g *Grid) Percolates() bool {
	return mustConnected(g.uf, g.top, g.bottom)
}

// State returns Blocked, Open or Full for (row, col).
func (g *Grid) State(row, col int) (SiteState, error) {
	id, err := g.SiteID(row, col)
	if err != nil {
		return Blocked, err
	}

	return g.state(id), nil
}

// Snapshot returns the state of every site; result[r][c] is site (r+1, c+1).
// The returned slices are owned by the caller.
func (g *Grid) Snapshot() [][]SiteState {
	out := make([][]SiteState, g.n)
	for r := 0; r < g.n; r++ {
		out[r] = make([]SiteState, g.n)
		for c := 0; c < g.n; c++ {
			out[r][c] = g.state(r*g.n + c)
		}
	}

	return out
}

func (g *Grid) state(id int) SiteState {
	switch {
	case g.isFull(id):
		return Full
	case g.open[id]:
		return Open
	default:
		return Blocked
	}
}

func (g *Grid) isFull(id int) bool {
	if !g.open[id] {
		return false
	}
	if g.fill != nil {
		return mustConnected(g.fill, id, g.top)
	}

	return mustConnected(g.uf, id, g.top)
}

// join unions a and b in every union-find the grid maintains.
// Neither a nor b may be the virtual bottom.
func (g *Grid) join(a, b int) {
	mustUnion(g.uf, a, b)
	if g.fill != nil {
		mustUnion(g.fill, a, b)
	}
}

// inBounds reports whether 1-indexed (row, col) lies inside the grid.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// index maps validated (row, col) to its row-major id.
func (g *Grid) index(row, col int) int {
	return (row-1)*g.n + (col - 1)
}

// mustUnion and mustConnected are only called with ids derived from
// validated coordinates or the virtual nodes, so an error is a bug.
func mustUnion(uf *unionfind.UnionFind, a, b int) {
	if err := uf.Union(a, b); err != nil {
		panic(err)
	}
}

func mustConnected(uf *unionfind.UnionFind, a, b int) bool {
	ok, err := uf.Connected(a, b)
	if err != nil {
		panic(err)
	}

	return ok
}
