package diagram

import (
	"strconv"

	"github.com/katalvlaran/implication/closuresys"
	"github.com/katalvlaran/implication/core"
	"github.com/katalvlaran/implication/depgraph"
	"github.com/katalvlaran/implication/dfs"
)

// componentID mirrors dfs.CondensationDAG's unexported node-ID convention
// ("scc<index>") so this package can look a component's node back up after
// calling dfs.StronglyConnectedComponents/CondensationDAG itself.
func componentID(i int) string {
	return "scc" + strconv.Itoa(i)
}

// immediateSuccessors implements Bordat's step of spec §4.7: given the
// intent f of the node being expanded, returns every immediate successor
// closed set.
func (g *generator) immediateSuccessors(f Set) ([]Set, error) {
	precedence := g.sys.PrecedenceGraph()
	scc := dfs.StronglyConnectedComponents(precedence)
	condensation := dfs.CondensationDAG(precedence, scc)
	reach := dfs.TransitiveClosure(condensation)

	// newVal = f minus every element lying in a strict minorant SCC of any
	// SCC containing an element of f.
	minorantComponents := make(map[string]bool)
	for _, e := range f {
		cid := componentID(scc.ComponentOf[e])
		for d := range reach[cid] {
			minorantComponents[d] = true
		}
	}
	minorantElems := closuresys.NewSet()
	for cid := range minorantComponents {
		node, err := condensation.GetNode(cid)
		if err != nil {
			return nil, err
		}
		minorantElems = minorantElems.Union(closuresys.NewSet(node.Payload...))
	}
	newVal := f.Diff(minorantElems)

	n := g.sys.GroundSet().Diff(f)

	// For every ordered pair (u,v) ∈ N×N, u ≠ v: test u ∈ closure(F ∪ {v}).
	delta := core.NewGraph[string, struct{}]()
	for _, e := range n {
		_, _ = delta.AddNode(e, e)
	}
	for _, v := range n {
		closed := g.sys.Closure(f.Union(closuresys.NewSet(v)))
		for _, u := range n {
			if u == v || !closed.Contains(u) {
				continue
			}
			depgraph.AddWitness(g.dep, v, u, newVal)
			_, _ = delta.AddEdge(v, u, struct{}{})
		}
	}

	// Contract Δ into SCCs; each sink SCC K yields one immediate successor
	// F ∪ {elements of K}.
	deltaSCC := dfs.StronglyConnectedComponents(delta)
	deltaCondensation := dfs.CondensationDAG(delta, deltaSCC)

	hasOutgoing := make(map[string]bool)
	for _, e := range deltaCondensation.Edges() {
		hasOutgoing[e.From] = true
	}

	var successors []Set
	for i, members := range deltaSCC.Components {
		cid := componentID(i)
		if hasOutgoing[cid] {
			continue
		}
		successors = append(successors, f.Union(closuresys.NewSet(members...)))
	}

	return successors, nil
}
