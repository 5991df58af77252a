package unionfind

import "errors"

// Sentinel errors for unionfind operations.
var (
	// ErrInvalidArgument indicates a non-positive element count was requested.
	ErrInvalidArgument = errors.New("unionfind: element count must be > 0")
	// ErrIndexOutOfRange indicates an id outside [0, m).
	ErrIndexOutOfRange = errors.New("unionfind: id out of range")
)

// UnionFind is a weighted quick-union forest with path compression.
// parent[i] == i marks a root; size[r] is only meaningful for roots.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}
