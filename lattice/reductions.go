package lattice

import "github.com/katalvlaran/implication/dfs"

// MakeInclusionReduction replaces every node's intent and extent with its
// "reduced" label (spec §4.8): walking intents in reverse topological order
// (top to bottom), each node's intent loses everything already present in
// any immediate predecessor's (still-unreduced) intent; walking extents in
// forward topological order (bottom to top), each node's extent loses
// everything already present in any immediate successor's (still-
// unreduced) extent. The full sets remain recoverable: a node's true intent
// is the union of its own reduced label with every predecessor's, and
// likewise for extents with successors.
func (l *ConceptLattice) MakeInclusionReduction() error {
	order, err := dfs.TopologicalSort(l.g)
	if err != nil {
		return err
	}

	predecessors := make(map[string][]string, len(order))
	successors := make(map[string][]string, len(order))
	for _, e := range l.g.Edges() {
		predecessors[e.To] = append(predecessors[e.To], e.From)
		successors[e.From] = append(successors[e.From], e.To)
	}

	for i := len(order) - 1; i >= 0; i-- {
		n, err := l.g.GetNode(order[i])
		if err != nil {
			return err
		}
		reduced := n.Payload.Intent
		for _, p := range predecessors[order[i]] {
			pn, err := l.g.GetNode(p)
			if err != nil {
				return err
			}
			reduced = reduced.Diff(pn.Payload.Intent)
		}
		n.Payload.Intent = reduced
	}

	for _, id := range order {
		n, err := l.g.GetNode(id)
		if err != nil {
			return err
		}
		reduced := n.Payload.Extent
		for _, s := range successors[id] {
			sn, err := l.g.GetNode(s)
			if err != nil {
				return err
			}
			reduced = reduced.Diff(sn.Payload.Extent)
		}
		n.Payload.Extent = reduced
	}

	return nil
}

// MakeIrreduciblesReduction applies MakeInclusionReduction, then clears the
// intent of every node that is not join-irreducible (does not have exactly
// one immediate predecessor) and the extent of every node that is not
// meet-irreducible (does not have exactly one immediate successor).
func (l *ConceptLattice) MakeIrreduciblesReduction() error {
	if err := l.MakeInclusionReduction(); err != nil {
		return err
	}

	inDegree := make(map[string]int)
	outDegree := make(map[string]int)
	for _, e := range l.g.Edges() {
		inDegree[e.To]++
		outDegree[e.From]++
	}

	for _, n := range l.Nodes() {
		if inDegree[n.ID] != 1 {
			n.Payload.Intent = nil
		}
		if outDegree[n.ID] != 1 {
			n.Payload.Extent = nil
		}
	}

	return nil
}
