package unionfind

import "fmt"

// New returns a UnionFind holding m singleton sets {0}, {1}, ..., {m-1}.
// Returns ErrInvalidArgument if m <= 0.
// Complexity: O(m) time and memory.
func New(m int) (*UnionFind, error) {
	if m <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidArgument, m)
	}
	uf := &UnionFind{
		parent: make([]int, m),
		size:   make([]int, m),
		count:  m,
	}
	for i := 0; i < m; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements m.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the current number of disjoint sets.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root of id's set.
// Every node on the walked path is re-pointed directly at the root.
// Complexity: O(α(m)) amortised.
func (uf *UnionFind) Find(id int) (int, error) {
	if err := uf.validate(id); err != nil {
		return 0, err
	}

	return uf.root(id), nil
}

// Union merges the sets containing a and b. It is a no-op when they
// already share a root. The smaller tree is attached under the larger
// one; on equal sizes b's root goes under a's root.
// Complexity: O(α(m)) amortised.
func (uf *UnionFind) Union(a, b int) error {
	if err := uf.validate(a); err != nil {
		return err
	}
	if err := uf.validate(b); err != nil {
		return err
	}

	ra, rb := uf.root(a), uf.root(b)
	if ra == rb {
		return nil
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
	uf.count--

	return nil
}

// Connected reports whether a and b belong to the same set.
func (uf *UnionFind) Connected(a, b int) (bool, error) {
	if err := uf.validate(a); err != nil {
		return false, err
	}
	if err := uf.validate(b); err != nil {
		return false, err
	}

	return uf.root(a) == uf.root(b), nil
}

// Size returns the number of elements in id's set.
func (uf *UnionFind) Size(id int) (int, error) {
	if err := uf.validate(id); err != nil {
		return 0, err
	}

	return uf.size[uf.root(id)], nil
}

// root returns the root of id and compresses the path behind it.
//
// Steps:
//  1. Walk parent links until parent[r] == r.
//  2. Walk the same path again, re-pointing every node directly at r.
//
// Notes:
//   - Iterative rather than recursive, so deep trees built before any
//     compression cannot grow the stack.
//   - id must already be validated.
//
// Complexity: O(α(m)) amortised.
func (uf *UnionFind) root(id int) int {
	var r, next int
	r = id
	for uf.parent[r] != r {
		r = uf.parent[r]
	}
	for id != r {
		next = uf.parent[id]
		uf.parent[id] = r
		id = next
	}

	return r
}

func (uf *UnionFind) validate(id int) error {
	if id < 0 || id >= len(uf.parent) {
		return fmt.Errorf("%w: id %d not in [0,%d)", ErrIndexOutOfRange, id, len(uf.parent))
	}

	return nil
}
