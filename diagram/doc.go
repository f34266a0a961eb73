// Package diagram implements diagram_lattice, the incremental Bordat-style
// construction of a ConceptLattice's Hasse diagram (spec §4.7), together
// with the DependencyGraph computed simultaneously as a byproduct of
// discovering each node's immediate successors.
//
// Grounded on dfs.StronglyConnectedComponents/CondensationDAG for the
// precedence-graph contraction the spec requires in place of a topological
// sort (non-reduced closure systems have cycles in the precedence
// relation), and on depgraph for the inclusion-minimal witness bookkeeping.
package diagram

import "github.com/katalvlaran/implication/closuresys"

// Set is the element-collection type intents/extents/successors are built
// from.
type Set = closuresys.Set
