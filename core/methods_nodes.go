// File: methods_nodes.go
// Role: node lifecycle & queries (AddNode/HasNode/GetNode/Nodes/NodeCount).
//
// Determinism: Nodes() returns nodes in arena order (insertion order), which
// is the "small integer indices" addressing spec design notes ask for; it is
// stable across runs for a fixed sequence of AddNode calls.
package core

// AddNode inserts a node if missing (idempotent) and returns its arena
// index. If the node already exists its payload is left untouched and the
// existing index is returned.
func (g *Graph[N, E]) AddNode(id string, payload N) (int, error) {
	if id == "" {
		return -1, ErrEmptyNodeID
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	if idx, exists := g.nodeIndex[id]; exists {
		return idx, nil
	}

	idx := len(g.nodes)
	g.nodes = append(g.nodes, &Node[N]{ID: id, Index: idx, Payload: payload})
	g.nodeIndex[id] = idx

	g.muEdge.Lock()
	ensureAdjacencyBucket(g, id)
	g.muEdge.Unlock()

	return idx, nil
}

// HasNode reports whether id is present in the arena.
func (g *Graph[N, E]) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodeIndex[id]

	return ok
}

// GetNode returns the node record for id, or ErrNodeNotFound.
func (g *Graph[N, E]) GetNode(id string) (*Node[N], error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	idx, ok := g.nodeIndex[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return g.nodes[idx], nil
}

// SetPayload overwrites the payload of an existing node.
func (g *Graph[N, E]) SetPayload(id string, payload N) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	idx, ok := g.nodeIndex[id]
	if !ok {
		return ErrNodeNotFound
	}
	g.nodes[idx].Payload = payload

	return nil
}

// Nodes returns every node in arena (insertion) order. The returned slice is
// a fresh copy of the pointer slots; callers must not append to it.
func (g *Graph[N, E]) Nodes() []*Node[N] {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make([]*Node[N], len(g.nodes))
	copy(out, g.nodes)

	return out
}

// NodeCount returns the number of nodes currently in the arena.
func (g *Graph[N, E]) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}
