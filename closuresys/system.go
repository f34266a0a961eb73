package closuresys

import "github.com/katalvlaran/implication/core"

// ClosureSystem is the abstract contract of spec §4.5. IS (package is) and
// FormalContext (this package) are independent implementations; package
// diagram's Bordat expansion is written generically against this interface.
type ClosureSystem interface {
	// GroundSet returns S in its total order.
	GroundSet() Set

	// Closure returns X* for X ⊆ S.
	Closure(x Set) Set

	// PrecedenceGraph returns a graph with node set S and an edge a → b iff
	// b ∈ closure({a}) ∖ {a} (a immediately precedes b under ⇒).
	PrecedenceGraph() *core.Graph[string, struct{}]

	// AllClosures enumerates every closed set exactly once, in lectic
	// order, via Ganter's Next-Closure algorithm.
	AllClosures() []Concept

	// ReducibleElements maps each element x to the other elements y that are
	// closure-equivalent to it (y ∈ closure({x}) and x ∈ closure({y})).
	// Equivalence is tested against single elements only: an element whose
	// closure equals that of a set of several others, but of no single one,
	// is not listed.
	ReducibleElements() map[string]Set
}

// ExtentDeriver is an optional capability a ClosureSystem implementation may
// satisfy to report a closed set's true extent. ImplicationalSystem has no
// separate object dimension (spec §3: its ground set and its intents are
// the same universe) and does not implement it; FormalContext does, since
// objects and attributes are genuinely distinct there. Callers building a
// ConceptLattice (package diagram) should type-assert for this interface
// and fall back to treating the intent itself as the extent when absent.
type ExtentDeriver interface {
	ExtentOf(intent Set) Set
}

// PrecedenceGraph is shared scaffolding for ClosureSystem implementations:
// build the node-set-S graph with a → b iff b ∈ closure({a}) ∖ {a}.
func PrecedenceGraph(groundSet Set, closure func(Set) Set) *core.Graph[string, struct{}] {
	g := core.NewGraph[string, struct{}]()
	for _, e := range groundSet {
		_, _ = g.AddNode(e, e)
	}
	for _, a := range groundSet {
		ca := closure(NewSet(a))
		for _, b := range ca {
			if b == a {
				continue
			}
			_, _ = g.AddEdge(a, b, struct{}{})
		}
	}

	return g
}
