package depgraph

import (
	"github.com/katalvlaran/implication/core"
	"github.com/katalvlaran/implication/elements"
)

// Graph is a DependencyGraph: nodes are ground-set element IDs, edges carry
// an Antichain payload.
type Graph = core.Graph[string, Antichain]

// New creates an empty DependencyGraph with the given node set pre-seeded
// (spec §4.7 step 1: "attach a fresh DependencyGraph D with node set =
// Φ.ground_set()").
func New(groundSet elements.Set) *Graph {
	g := core.NewGraph[string, Antichain](core.WithLoops[string, Antichain]())
	for _, e := range groundSet {
		_, _ = g.AddNode(e, e)
	}

	return g
}

// AddWitness finds (or creates) the edge from→to and merges w into its
// Antichain payload, applying the inclusion-minimality pruning of spec §4.6
// ("payload 'set of sets' on dependency edges") / §4.7 step 2. Reports
// whether the edge's payload actually changed.
func AddWitness(g *Graph, from, to string, w elements.Set) bool {
	e, err := g.GetEdge(from, to)
	if err != nil {
		a := Antichain{w.Clone()}
		_, _ = g.AddEdge(from, to, a)

		return true
	}

	changed := e.Payload.Insert(w.Clone())

	return changed
}
