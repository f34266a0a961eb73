// File: methods_subgraph.go
// Role: induced-subgraph extraction (restricting a graph to a node subset).
// diagram.immediateSuccessors builds its Δ graph over N = S∖F directly and
// does not call it.
package core

// InducedSubgraph returns a new Graph containing exactly the given node IDs
// and every edge of g whose both endpoints are in that set. Node payloads are
// copied by value; edge payloads are shared by reference if E is a pointer
// or slice/map type (callers that need isolation should clone payloads
// themselves).
func (g *Graph[N, E]) InducedSubgraph(keep []string) *Graph[N, E] {
	keepSet := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		keepSet[id] = struct{}{}
	}

	out := NewGraph[N, E]()
	if g.allowLoops {
		out.allowLoops = true
	}
	if g.allowMulti {
		out.allowMulti = true
	}

	for _, n := range g.Nodes() {
		if _, ok := keepSet[n.ID]; ok {
			_, _ = out.AddNode(n.ID, n.Payload)
		}
	}
	for _, e := range g.Edges() {
		_, fromOK := keepSet[e.From]
		_, toOK := keepSet[e.To]
		if fromOK && toOK {
			_, _ = out.AddEdge(e.From, e.To, e.Payload)
		}
	}

	return out
}
