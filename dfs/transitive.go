package dfs

import "github.com/katalvlaran/implication/core"

// TransitiveClosure returns, for every node ID in g, the set of node IDs
// reachable from it via one or more edges (the node itself is included only
// if it lies on a cycle back to itself). Used by diagram's immediate-successor
// step (minorant components of the condensed precedence graph) and by
// TransitiveReduction.
//
// Complexity: O(V·(V+E)), one traversal per node.
func TransitiveClosure[N any, E any](g *core.Graph[N, E]) map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{})
	for _, n := range g.Nodes() {
		out[n.ID] = reachableFrom(g, n.ID)
	}

	return out
}

func reachableFrom[N any, E any](g *core.Graph[N, E], start string) map[string]struct{} {
	visited := make(map[string]struct{})
	stack := []string{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.Successors(id) {
			if _, ok := visited[e.To]; !ok {
				visited[e.To] = struct{}{}
				stack = append(stack, e.To)
			}
		}
	}

	return visited
}

// TransitiveReduction returns the edge set {(u,v)} of the minimal graph with
// the same reachability relation as g: an edge u→v survives only if no other
// path of length ≥ 2 from u to v exists. g must be acyclic (a DAG); a cyclic
// g makes "the" transitive reduction undefined, and this function returns
// ErrCycleDetected in that case (mirroring spec §7's idealLattice-on-cycle
// null-sentinel policy, but as an explicit error since this is a pure graph
// utility with no natural "empty lattice" to return).
//
// Complexity: O(V·E) using the precomputed transitive closure.
func TransitiveReduction[N any, E any](g *core.Graph[N, E]) ([][2]string, error) {
	if _, err := TopologicalSort(g); err != nil {
		return nil, err
	}

	closure := TransitiveClosure(g)
	var kept [][2]string
	for _, e := range g.Edges() {
		redundant := false
		for _, mid := range g.Successors(e.From) {
			if mid.To == e.To {
				continue
			}
			if _, ok := closure[mid.To][e.To]; ok {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, [2]string{e.From, e.To})
		}
	}

	return kept, nil
}
