package dfs

import "errors"

// Visitation states for the three-color DFS used by TopologicalSort.
const (
	White = 0 // unvisited
	Gray  = 1 // on the current recursion stack
	Black = 2 // fully explored
)

// ErrGraphNil indicates a nil graph pointer was passed to an algorithm.
var ErrGraphNil = errors.New("dfs: graph is nil")

// ErrCycleDetected indicates TopologicalSort found a cycle (a back-edge to a
// Gray node).
var ErrCycleDetected = errors.New("dfs: cycle detected")
