package lattice

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/implication/closuresys"
)

// conceptFixture is the on-disk shape of one lattice node. spec §6 leaves
// ConceptLattice serialisation "delegated to the graph library's
// serialisation, not specified here"; this is that delegation, YAML-encoded
// via gopkg.in/yaml.v3.
type conceptFixture struct {
	Intent []string `yaml:"intent"`
	Extent []string `yaml:"extent"`
}

// coverFixture is one covering edge, referencing concepts by their position
// in the fixture's Concepts list rather than by internal node ID, which is
// an allocation detail the fixture format must not depend on.
type coverFixture struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

type latticeFixture struct {
	Concepts []conceptFixture `yaml:"concepts"`
	Covers   []coverFixture   `yaml:"covers"`
}

// WriteYAML serializes l: one entry per concept in arena order, plus the
// covering edges between them referenced by position.
func (l *ConceptLattice) WriteYAML(w io.Writer) error {
	nodes := l.g.Nodes()

	position := make(map[string]int, len(nodes))
	fixture := latticeFixture{Concepts: make([]conceptFixture, len(nodes))}
	for i, n := range nodes {
		position[n.ID] = i
		fixture.Concepts[i] = conceptFixture{Intent: n.Payload.Intent, Extent: n.Payload.Extent}
	}
	for _, e := range l.g.Edges() {
		fixture.Covers = append(fixture.Covers, coverFixture{From: position[e.From], To: position[e.To]})
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(fixture)
}

// LoadYAML rebuilds a ConceptLattice from the fixture format WriteYAML
// produces, re-deriving node IDs through AddConcept/AddCover rather than
// trusting any ID recorded in the fixture.
func LoadYAML(r io.Reader) (*ConceptLattice, error) {
	var fixture latticeFixture
	if err := yaml.NewDecoder(r).Decode(&fixture); err != nil {
		return nil, fmt.Errorf("lattice: decode yaml fixture: %w", err)
	}

	l := New()
	ids := make([]string, len(fixture.Concepts))
	for i, c := range fixture.Concepts {
		id, _ := l.AddConcept(Concept{
			Intent: closuresys.NewSet(c.Intent...),
			Extent: closuresys.NewSet(c.Extent...),
		})
		ids[i] = id
	}
	for _, cov := range fixture.Covers {
		if cov.From < 0 || cov.From >= len(ids) || cov.To < 0 || cov.To >= len(ids) {
			return nil, fmt.Errorf("lattice: cover references out-of-range concept index")
		}
		if err := l.AddCover(ids[cov.From], ids[cov.To]); err != nil {
			return nil, fmt.Errorf("lattice: add cover: %w", err)
		}
	}

	return l, nil
}
