// Package unionfind provides an array-backed disjoint-set (union-find)
// structure over the integer ID space [0, m).
//
// What:
//
//   - New(m) creates m singleton sets.
//   - Find returns the canonical root of a set, compressing the path it walks.
//   - Union merges two sets, attaching the smaller tree under the larger root.
//   - Connected, Count and Size answer membership and cardinality queries.
//
// Why:
//
//   - Incremental connectivity: percolation grids, Kruskal's MST, image
//     labelling, clustering by threshold.
//   - Union by size keeps trees O(log m) deep; path compression flattens them
//     further, giving amortised α(m) per operation.
//
// Complexity:
//
//   - New:              O(m) time, O(m) memory (two int slices).
//   - Find/Union:       O(α(m)) amortised.
//   - Connected/Size:   O(α(m)) amortised.
//   - Count/Len:        O(1).
//
// Errors:
//
//   - ErrInvalidArgument: New called with m <= 0.
//   - ErrIndexOutOfRange: an id outside [0, m) was passed to any method.
//
// Concurrency:
//
//   - A *UnionFind is NOT safe for concurrent use; Find mutates parent links.
//     Give each goroutine its own instance.
package unionfind
