// Package percolation models an n×n grid of sites that are opened one at a
// time, and answers whether the open sites connect the top row to the
// bottom row.
//
// What:
//
//   - Grid tracks Blocked/Open state per site, 1-indexed (row, col).
//   - Open joins a site with its already-open 4-neighbours in a union-find.
//   - Two virtual nodes stand for the top and bottom boundaries: every open
//     site in row 1 is joined to virtualTop, every open site in row n to
//     virtualBottom. Percolates is then one root comparison instead of a
//     scan over the top row.
//   - IsFull reports whether an open site is connected to the top.
//
// Why:
//
//   - Porous media, conductivity of composite materials, forest-fire spread:
//     all reduce to "is there a connected open path from top to bottom".
//   - The percolation threshold p* ≈ 0.5927 for site percolation on the square
//     lattice is estimated by package percstats on top of this model.
//
// Backwash:
//
//	With a single union-find the virtual bottom can make a bottom-row site look
//	full once the grid percolates, even when its only route to the top is
//	through virtualBottom. WithBackwashGuard keeps a second union-find without
//	the bottom node and answers IsFull from it. Percolates is unaffected.
//
// Complexity:
//
//   - New:                  O(n²) time and memory.
//   - Open:                 O(α(n²)) amortised (at most 5 unions).
//   - IsOpen, NumberOfOpenSites: O(1).
//   - IsFull, Percolates:   O(α(n²)) amortised.
//   - Snapshot:             O(n²·α(n²)).
//
// Errors:
//
//   - ErrInvalidArgument: New called with n <= 0.
//   - ErrIndexOutOfRange: (row, col) outside [1,n]×[1,n].
//
// Concurrency:
//
//   - A *Grid is single-threaded. Run independent trials on independent grids.
package percolation
