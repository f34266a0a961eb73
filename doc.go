// Package implication is the root of a Formal Concept Analysis toolkit:
// implicational systems, their closure operators, canonical-basis
// normalisation rewrites, concept/closed-set lattices, and incremental
// Hasse-diagram generation with a simultaneously-built dependency graph.
//
// There is no code at this import path; it exists to document how the
// subpackages fit together:
//
//	elements/   — Set, the finite-subset-of-S primitive everything else shares
//	core/       — generic directed Graph[N, E] used throughout as the arena
//	dfs/        — strongly connected components, condensation, topological sort
//	is/         — ImplicationalSystem: rules, closure, the canonical-basis
//	             rewrites, and the graphs derived from minimal generators
//	depgraph/   — DependencyGraph and its inclusion-minimal Antichain edges
//	closuresys/ — the ClosureSystem capability interface, Next-Closure
//	             enumeration, and the FormalContext implementation
//	lattice/    — ConceptLattice construction, iceberg pruning, reductions
//	diagram/    — Bordat's incremental Hasse-diagram generator
//	isio/       — the external text format and its I/O-factory registry
//
// A typical program builds an ImplicationalSystem or FormalContext, reduces
// it to a canonical basis, then hands it to diagram.Generate to obtain its
// ConceptLattice and DependencyGraph together.
package implication
