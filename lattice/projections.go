package lattice

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/implication/core"
)

// Clone returns an independent deep copy of l: same node IDs and Concept
// payloads, same covering edges.
func (l *ConceptLattice) Clone() *ConceptLattice {
	out := New()
	out.next = l.next
	for k, v := range l.byIntent {
		out.byIntent[k] = v
	}
	for _, n := range l.Nodes() {
		c := n.Payload
		_, _ = out.g.AddNode(n.ID, Concept{Intent: c.Intent.Clone(), Extent: c.Extent.Clone()})
	}
	for _, e := range l.g.Edges() {
		_, _ = out.g.AddEdge(e.From, e.To, struct{}{})
	}

	return out
}

// projectBy builds a generic core.Graph[string, struct{}] with the same
// node IDs and edges as l, where each node's payload is the first element
// of pick(concept) if non-empty, or a fresh anonymous value otherwise (spec
// §4.8's "first element ... or a fresh anonymous value").
func (l *ConceptLattice) projectBy(pick func(Concept) Set) *core.Graph[string, struct{}] {
	out := core.NewGraph[string, struct{}]()
	for _, n := range l.Nodes() {
		label := pick(n.Payload)
		value := uuid.New().String()
		if label.Len() > 0 {
			value = label[0]
		}
		_, _ = out.AddNode(n.ID, value)
	}
	for _, e := range l.g.Edges() {
		_, _ = out.AddEdge(e.From, e.To, struct{}{})
	}

	return out
}

// GetJoinReduction applies MakeInclusionReduction to a clone and projects
// each node onto the first element of its reduced intent (or a fresh
// anonymous value when the reduced intent is empty).
func (l *ConceptLattice) GetJoinReduction() (*core.Graph[string, struct{}], error) {
	clone := l.Clone()
	if err := clone.MakeInclusionReduction(); err != nil {
		return nil, err
	}

	return clone.projectBy(func(c Concept) Set { return c.Intent }), nil
}

// GetMeetReduction applies MakeInclusionReduction to a clone and projects
// each node onto the first element of its reduced extent (or a fresh
// anonymous value when the reduced extent is empty).
func (l *ConceptLattice) GetMeetReduction() (*core.Graph[string, struct{}], error) {
	clone := l.Clone()
	if err := clone.MakeInclusionReduction(); err != nil {
		return nil, err
	}

	return clone.projectBy(func(c Concept) Set { return c.Extent }), nil
}

// GetIrreduciblesReduction applies MakeIrreduciblesReduction to a clone and
// projects each node onto the first element of whichever of its reduced
// intent/extent survived irreducibility clearing (or a fresh anonymous
// value when neither did).
func (l *ConceptLattice) GetIrreduciblesReduction() (*core.Graph[string, struct{}], error) {
	clone := l.Clone()
	if err := clone.MakeIrreduciblesReduction(); err != nil {
		return nil, err
	}

	return clone.projectBy(func(c Concept) Set {
		if c.Intent.Len() > 0 {
			return c.Intent
		}

		return c.Extent
	}), nil
}
