package is

import (
	"github.com/katalvlaran/implication/closuresys"
	"github.com/katalvlaran/implication/core"
)

// PrecedenceGraph returns a graph over S with an edge a → b iff
// b ∈ closure({a}) ∖ {a} (spec §4.5). Diagram construction contracts this
// into its SCC-DAG rather than relying on it being acyclic: a non-reduced
// IS has cycles here.
func (sys *ImplicationalSystem) PrecedenceGraph() *core.Graph[string, struct{}] {
	return closuresys.PrecedenceGraph(sys.groundSet, sys.Closure)
}

// AllClosures enumerates every closed subset of S exactly once, in lectic
// order, via Ganter's Next-Closure algorithm (spec §4.5). Extent is set
// equal to Intent: an ImplicationalSystem has no separate object dimension.
func (sys *ImplicationalSystem) AllClosures() []closuresys.Concept {
	intents := closuresys.EnumerateClosures(sys.groundSet, sys.Closure)
	out := make([]closuresys.Concept, len(intents))
	for i, intent := range intents {
		out[i] = closuresys.Concept{Intent: intent, Extent: intent.Clone()}
	}

	return out
}

// The blank assignment documents, at compile time, that *ImplicationalSystem
// satisfies the shared ClosureSystem contract (spec §4.5) alongside
// *closuresys.FormalContext — nothing in this package needs the interface
// value itself, since diagram.Generate takes the interface directly.
var _ closuresys.ClosureSystem = (*ImplicationalSystem)(nil)
