// Package is implements ImplicationalSystem (spec.md §3–§4.4): the closure
// operator over a rule set, the nine normalisation rewrites and their
// property predicates, and the representative/dependency graph that Bordat
// diagram generation consumes.
//
// Elements are represented concretely as strings (spec.md's "opaque
// comparable value drawn from S"); Element is not a type parameter. A Set is always kept sorted
// and deduplicated so that two sets are structurally equal iff their
// underlying slices are equal, and so that Rule gets a total order for free
// by lexicographic slice comparison (spec §3).
//
// ImplicationalSystem is not safe for concurrent use: spec.md §5 mandates a
// single-threaded model for IS, unlike core.Graph (shared across packages,
// kept thread-safe per the teacher's convention because other callers do
// rely on it concurrently, e.g. two independent diagram.Generate runs over
// read-only ClosureSystems sharing no mutable IS).
package is
