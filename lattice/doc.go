// Package lattice implements ConceptLattice and its reductions/projections
// (spec §4.8): the Hasse diagram of a ClosureSystem's closed sets, ordered
// by inclusion, plus the iceberg restriction and the inclusion/irreducibles
// reductions used to compact a lattice for display.
//
// Grounded on core.Graph as the node/edge arena (spec design note "shared
// nodes in graphs with payload edges → arena + index"), the same primitive
// package depgraph and package diagram build on.
package lattice

import (
	"github.com/katalvlaran/implication/closuresys"
)

// Set is the element-collection type lattice intents/extents are built
// from.
type Set = closuresys.Set

// Concept is a lattice node's payload: its intent (closed set) and extent.
type Concept = closuresys.Concept
