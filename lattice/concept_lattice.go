package lattice

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/implication/core"
)

// ErrConceptNotFound indicates an operation referenced an intent with no
// matching node.
var ErrConceptNotFound = errors.New("lattice: concept not found")

// ConceptLattice is the Hasse diagram of a ClosureSystem's closed sets
// (spec §4.7/§4.8): nodes carry a Concept (intent/extent), edges are the
// covering relation (a strict, immediate-successor "is covered by" edge,
// payload-free — the simultaneous witness bookkeeping lives on the
// depgraph.Graph built alongside it during diagram.Generate, not here).
type ConceptLattice struct {
	g        *core.Graph[Concept, struct{}]
	byIntent map[string]string // intentKey -> node ID
	next     int
}

// New creates an empty ConceptLattice.
func New() *ConceptLattice {
	return &ConceptLattice{
		g:        core.NewGraph[Concept, struct{}](),
		byIntent: make(map[string]string),
	}
}

func intentKey(s Set) string {
	k := ""
	for _, e := range s {
		k += e + "\x00"
	}

	return k
}

// AddConcept inserts c as a new node if no node with this intent already
// exists. Returns the node's ID and whether it was newly created.
func (l *ConceptLattice) AddConcept(c Concept) (string, bool) {
	key := intentKey(c.Intent)
	if id, ok := l.byIntent[key]; ok {
		return id, false
	}

	id := "n" + strconv.Itoa(l.next)
	l.next++
	l.byIntent[key] = id
	_, _ = l.g.AddNode(id, c)

	return id, true
}

// FindByIntent returns the node ID whose Concept.Intent equals intent.
func (l *ConceptLattice) FindByIntent(intent Set) (string, bool) {
	id, ok := l.byIntent[intentKey(intent)]

	return id, ok
}

// AddCover records that to is an immediate successor ("covers") from in the
// order ⊆ on intents.
func (l *ConceptLattice) AddCover(from, to string) error {
	_, err := l.g.AddEdge(from, to, struct{}{})

	return err
}

// Concept returns the payload of the node with the given ID.
func (l *ConceptLattice) Concept(id string) (Concept, error) {
	n, err := l.g.GetNode(id)
	if err != nil {
		var zero Concept

		return zero, ErrConceptNotFound
	}

	return n.Payload, nil
}

// Graph exposes the underlying core.Graph for generic traversal (dfs.*) and
// for reductions/projections in this package.
func (l *ConceptLattice) Graph() *core.Graph[Concept, struct{}] {
	return l.g
}

// NodeCount returns the number of concepts currently in the lattice.
func (l *ConceptLattice) NodeCount() int { return l.g.NodeCount() }

// Nodes returns every concept node, in arena (insertion) order.
func (l *ConceptLattice) Nodes() []*core.Node[Concept] {
	return l.g.Nodes()
}
