package diagram

import (
	"github.com/katalvlaran/implication/closuresys"
	"github.com/katalvlaran/implication/depgraph"
	"github.com/katalvlaran/implication/lattice"
)

// generator holds the state threaded through one diagram_lattice run: the
// ClosureSystem being expanded, the DependencyGraph accumulated as a
// byproduct (spec §4.7 step 1: "attach a fresh DependencyGraph D"), and the
// ConceptLattice under construction.
type generator struct {
	sys closuresys.ClosureSystem
	dep *depgraph.Graph
	lat *lattice.ConceptLattice
}

// Generate builds the ConceptLattice of sys by the Bordat incremental
// expansion (spec §4.7): starting from the bottom concept, recursively
// discovering each node's immediate successors and linking to (or creating)
// the corresponding lattice node. Returns the DependencyGraph computed
// simultaneously, since immediate_successors needs it as working state
// anyway and spec §4.6/§4.7 treats the two as companion artifacts of one
// generator run.
func Generate(sys closuresys.ClosureSystem) (*lattice.ConceptLattice, *depgraph.Graph, error) {
	g := &generator{
		sys: sys,
		dep: depgraph.New(sys.GroundSet()),
		lat: lattice.New(),
	}

	bottom := sys.Closure(closuresys.NewSet())
	bottomID, _ := g.lat.AddConcept(closuresys.Concept{Intent: bottom, Extent: g.extentOf(bottom)})

	visited := make(map[string]bool)
	if err := g.expand(bottomID, visited); err != nil {
		return nil, nil, err
	}

	return g.lat, g.dep, nil
}

// extentOf reports intent's true extent when sys implements
// closuresys.ExtentDeriver (FormalContext); otherwise the intent itself is
// the only notion of extent available (ImplicationalSystem has no separate
// object dimension), so it is cloned in directly. This keeps Iceberg's
// |extent|/|bottom.extent| ratio meaningful whenever the underlying
// ClosureSystem can actually distinguish the two.
func (g *generator) extentOf(intent Set) Set {
	if d, ok := g.sys.(closuresys.ExtentDeriver); ok {
		return d.ExtentOf(intent)
	}

	return intent.Clone()
}

// expand discovers nodeID's immediate successors and recurses into each,
// memoized by visited so a closed set reached via two different parents is
// only expanded once (spec §4.7 step 3: "if a node with intent F' exists,
// add edge n → existing").
func (g *generator) expand(nodeID string, visited map[string]bool) error {
	if visited[nodeID] {
		return nil
	}
	visited[nodeID] = true

	concept, err := g.lat.Concept(nodeID)
	if err != nil {
		return err
	}

	successors, err := g.immediateSuccessors(concept.Intent)
	if err != nil {
		return err
	}

	for _, fPrime := range successors {
		childID, exists := g.lat.FindByIntent(fPrime)
		if !exists {
			childID, _ = g.lat.AddConcept(closuresys.Concept{Intent: fPrime, Extent: g.extentOf(fPrime)})
		}
		if err := g.lat.AddCover(nodeID, childID); err != nil {
			return err
		}
		if err := g.expand(childID, visited); err != nil {
			return err
		}
	}

	return nil
}
