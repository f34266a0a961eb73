// Package depgraph implements the DependencyGraph of spec.md §3/§4.6: a
// directed graph over the ground set S whose edges carry an inclusion-
// minimal antichain of element subsets (a "set of sets"). Semantically,
// W ∈ payload(u,v) means W is an inclusion-minimal witness that
// closure(W ∪ {v}) ⊇ {u} while u ∉ closure(W).
//
// It is split out from both is (which builds one via RepresentativeGraph/
// DependencyGraph) and diagram (which builds one incrementally during
// Bordat expansion) so that neither package needs to import the other just
// to share this payload type.
package depgraph
