package dfs

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/implication/core"
)

// SCCResult is the outcome of StronglyConnectedComponents: a partition of
// every node in the graph into strongly connected components, plus the
// inverse lookup from node ID to component index.
//
// Components are numbered in the order Tarjan's algorithm pops them off its
// stack, which is reverse topological order of the condensation DAG: if
// component i has an edge to component j in the condensation, then j < i.
// diagram.immediateSuccessors does not depend on this ordering: it finds
// minorant components through dfs.TransitiveClosure of the condensation.
type SCCResult struct {
	Components  [][]string     // component index -> member node IDs, sorted
	ComponentOf map[string]int // node ID -> component index
}

type tarjanState[N any, E any] struct {
	graph   *core.Graph[N, E]
	index   map[string]int
	lowlink map[string]int
	onStack map[string]bool
	stack   []string
	counter int
	result  SCCResult
}

// StronglyConnectedComponents computes the SCC partition of g using Tarjan's
// algorithm. This is the core of diagram.Generate's precedence-graph
// contraction (spec §4.7): correctness there requires SCCs, not a
// topological sort, because a non-reduced closure system's precedence
// relation can contain cycles.
//
// Complexity: O(V + E).
func StronglyConnectedComponents[N any, E any](g *core.Graph[N, E]) SCCResult {
	st := &tarjanState[N, E]{
		graph:   g,
		index:   make(map[string]int),
		lowlink: make(map[string]int),
		onStack: make(map[string]bool),
		result:  SCCResult{ComponentOf: make(map[string]int)},
	}
	for _, n := range g.Nodes() {
		if _, visited := st.index[n.ID]; !visited {
			st.strongconnect(n.ID)
		}
	}

	return st.result
}

func (st *tarjanState[N, E]) strongconnect(v string) {
	st.index[v] = st.counter
	st.lowlink[v] = st.counter
	st.counter++
	st.stack = append(st.stack, v)
	st.onStack[v] = true

	for _, e := range st.graph.Successors(v) {
		w := e.To
		if _, visited := st.index[w]; !visited {
			st.strongconnect(w)
			if st.lowlink[w] < st.lowlink[v] {
				st.lowlink[v] = st.lowlink[w]
			}
		} else if st.onStack[w] {
			if st.index[w] < st.lowlink[v] {
				st.lowlink[v] = st.index[w]
			}
		}
	}

	if st.lowlink[v] == st.index[v] {
		var members []string
		for {
			n := len(st.stack) - 1
			w := st.stack[n]
			st.stack = st.stack[:n]
			st.onStack[w] = false
			members = append(members, w)
			if w == v {
				break
			}
		}
		sort.Strings(members)
		idx := len(st.result.Components)
		st.result.Components = append(st.result.Components, members)
		for _, m := range members {
			st.result.ComponentOf[m] = idx
		}
	}
}

// CondensationDAG builds the condensation (SCC-DAG) Ĝ of g: one node per
// component (ID = "scc<index>", payload = sorted member IDs) and one edge
// per distinct pair of components joined by at least one edge of g.
func CondensationDAG[N any, E any](g *core.Graph[N, E], scc SCCResult) *core.Graph[[]string, struct{}] {
	out := core.NewGraph[[]string, struct{}]()
	for i, members := range scc.Components {
		_, _ = out.AddNode(componentNodeID(i), members)
	}

	seen := make(map[[2]int]struct{})
	for _, e := range g.Edges() {
		ci, cj := scc.ComponentOf[e.From], scc.ComponentOf[e.To]
		if ci == cj {
			continue
		}
		key := [2]int{ci, cj}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		_, _ = out.AddEdge(componentNodeID(ci), componentNodeID(cj), struct{}{})
	}

	return out
}

func componentNodeID(i int) string {
	return "scc" + strconv.Itoa(i)
}
