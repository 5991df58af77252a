package percolation_test

import "github.com/katalvlaran/percolation/percolation"

// floodFull returns, for a snapshot, which sites are reachable from an open
// top-row site through open 4-neighbours, and whether any bottom-row site was
// reached. It is a BFS oracle independent of the union-find.
func floodFull(snap [][]percolation.SiteState) ([][]bool, bool) {
	n := len(snap)
	seen := make([][]bool, n)
	for r := range seen {
		seen[r] = make([]bool, n)
	}
	isOpen := func(r, c int) bool { return snap[r][c] != percolation.Blocked }

	queue := make([][2]int, 0, n)
	for c := 0; c < n; c++ {
		if isOpen(0, c) {
			seen[0][c] = true
			queue = append(queue, [2]int{0, c})
		}
	}
	offsets := [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range offsets {
			r, c := u[0]+d[0], u[1]+d[1]
			if r < 0 || r >= n || c < 0 || c >= n || seen[r][c] || !isOpen(r, c) {
				continue
			}
			seen[r][c] = true
			queue = append(queue, [2]int{r, c})
		}
	}

	reached := false
	for c := 0; c < n; c++ {
		if seen[n-1][c] {
			reached = true
		}
	}

	return seen, reached
}

// mustGrid builds a grid or panics; used for fixtures only.
func mustGrid(n int, opts ...percolation.Option) *percolation.Grid {
	g, err := percolation.New(n, opts...)
	if err != nil {
		panic(err)
	}

	return g
}
