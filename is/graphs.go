package is

import "github.com/katalvlaran/implication/depgraph"

// RepresentativeGraph builds the representative graph of sys (spec §4.6) on
// a clone normalised by MakeUnary: nodes are S; for every unary rule
// (P ∪ {b}, {a}) with a ∉ P, an edge a → b carries P as a witness (a rule
// ({b}, {a}) contributes the empty set). Multiple rules may contribute
// multiple witnesses to the same edge — depgraph.Antichain keeps only the
// inclusion-minimal ones (spec §4.6/§4.7's pruning rule).
func (sys *ImplicationalSystem) RepresentativeGraph() *depgraph.Graph {
	clone := sys.Clone()
	clone.MakeUnary()

	g := depgraph.New(clone.groundSet)
	for _, r := range clone.rules {
		a := r.Conclusion[0] // unary: exactly one element
		for _, b := range r.Premise {
			premiseMinusB := r.Premise.Diff(NewSet(b))
			if premiseMinusB.Contains(a) {
				continue
			}
			depgraph.AddWitness(g, a, b, premiseMinusB)
		}
	}

	return g
}

// DependencyGraph builds the dependency graph of sys (spec §4.6):
// make_canonical_direct_basis, then make_unary, then representative_graph.
// It encodes simultaneously the minimal generators and the canonical direct
// basis.
func (sys *ImplicationalSystem) DependencyGraph() *depgraph.Graph {
	clone := sys.Clone()
	clone.MakeCanonicalDirectBasis()
	clone.MakeUnary()

	return clone.RepresentativeGraph()
}
