package dfs

import (
	"github.com/katalvlaran/implication/core"
)

// topoSorter holds state for one TopologicalSort run.
type topoSorter[N any, E any] struct {
	graph *core.Graph[N, E]
	state map[string]int
	order []string
}

// TopologicalSort computes a linear ordering of every node in g such that
// for every edge u→v, u precedes v. Returns ErrCycleDetected if g contains a
// cycle. Used by lattice.MakeInclusionReduction's reverse/forward
// topological walks and by TransitiveReduction's acyclicity check.
//
// Complexity: O(V + E).
func TopologicalSort[N any, E any](g *core.Graph[N, E]) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	nodes := g.Nodes()
	s := &topoSorter[N, E]{
		graph: g,
		state: make(map[string]int, len(nodes)),
		order: make([]string, 0, len(nodes)),
	}
	for _, n := range nodes {
		if s.state[n.ID] == White {
			if err := s.visit(n.ID); err != nil {
				return nil, err
			}
		}
	}

	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

func (s *topoSorter[N, E]) visit(id string) error {
	if s.state[id] == Gray {
		return ErrCycleDetected
	}
	if s.state[id] == Black {
		return nil
	}
	s.state[id] = Gray

	for _, e := range s.graph.Successors(id) {
		if err := s.visit(e.To); err != nil {
			return err
		}
	}

	s.state[id] = Black
	s.order = append(s.order, id)

	return nil
}
