package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/implication/closuresys"
	"github.com/katalvlaran/implication/lattice"
)

// chain builds the 4-node S2 chain lattice: ∅ ⊂ {c} ⊂ {b,c} ⊂ {a,b,c},
// with extent set equal to intent (as is.ImplicationalSystem.AllClosures
// produces — no separate object dimension), wired into a ConceptLattice
// with one cover edge per consecutive pair.
func chain(t *testing.T) (*lattice.ConceptLattice, [4]string) {
	t.Helper()
	l := lattice.New()
	intents := []closuresys.Set{
		closuresys.NewSet(),
		closuresys.NewSet("c"),
		closuresys.NewSet("b", "c"),
		closuresys.NewSet("a", "b", "c"),
	}

	var ids [4]string
	for i, intent := range intents {
		id, created := l.AddConcept(closuresys.Concept{Intent: intent, Extent: intent.Clone()})
		require.True(t, created)
		ids[i] = id
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, l.AddCover(ids[i], ids[i+1]))
	}

	return l, ids
}

func TestMakeInclusionReduction(t *testing.T) {
	l, ids := chain(t)
	require.NoError(t, l.MakeInclusionReduction())

	c0, _ := l.Concept(ids[0])
	c1, _ := l.Concept(ids[1])
	c2, _ := l.Concept(ids[2])
	c3, _ := l.Concept(ids[3])

	assert.True(t, c0.Intent.Equal(closuresys.NewSet()))
	assert.True(t, c1.Intent.Equal(closuresys.NewSet("c")))
	assert.True(t, c2.Intent.Equal(closuresys.NewSet("b")))
	assert.True(t, c3.Intent.Equal(closuresys.NewSet("a")))

	assert.True(t, c0.Extent.Equal(closuresys.NewSet()))
	assert.True(t, c1.Extent.Equal(closuresys.NewSet()))
	assert.True(t, c2.Extent.Equal(closuresys.NewSet()))
	assert.True(t, c3.Extent.Equal(closuresys.NewSet("a", "b", "c")))
}

func TestMakeIrreduciblesReduction(t *testing.T) {
	l, ids := chain(t)
	require.NoError(t, l.MakeIrreduciblesReduction())

	c0, _ := l.Concept(ids[0])
	c3, _ := l.Concept(ids[3])

	assert.Equal(t, 0, c0.Intent.Len()) // bottom is not join-irreducible
	assert.Equal(t, 0, c3.Extent.Len()) // top is not meet-irreducible

	c1, _ := l.Concept(ids[1])
	assert.True(t, c1.Intent.Equal(closuresys.NewSet("c")))
}

// chainWithObjectExtents builds the same 4-node intent chain but with
// genuine antitone extents (objects), as a FormalContext would produce,
// rather than extent == intent: bottom carries every object, each step up
// loses one.
func chainWithObjectExtents(t *testing.T) (*lattice.ConceptLattice, [4]string) {
	t.Helper()
	l := lattice.New()
	intents := []closuresys.Set{
		closuresys.NewSet(),
		closuresys.NewSet("c"),
		closuresys.NewSet("b", "c"),
		closuresys.NewSet("a", "b", "c"),
	}
	extents := []closuresys.Set{
		closuresys.NewSet("o1", "o2", "o3", "o4"),
		closuresys.NewSet("o1", "o2", "o3"),
		closuresys.NewSet("o1", "o2"),
		closuresys.NewSet("o1"),
	}

	var ids [4]string
	for i := range intents {
		id, created := l.AddConcept(closuresys.Concept{Intent: intents[i], Extent: extents[i]})
		require.True(t, created)
		ids[i] = id
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, l.AddCover(ids[i], ids[i+1]))
	}

	return l, ids
}

func TestIceberg_KeepsHighSupportAndSentinelTop(t *testing.T) {
	l, _ := chainWithObjectExtents(t)

	// Only the bottom (4/4=1.0) and n1 (3/4=0.75) clear a 0.6 threshold;
	// the true top ({a,b,c}, 1/4=0.25) does not survive and must be
	// re-added as a sentinel, wired from the newly exposed sink n1.
	iceberg, err := l.Iceberg(0.6)
	require.NoError(t, err)

	assert.Equal(t, 3, iceberg.NodeCount()) // bottom, n1, sentinel top
	_, ok := iceberg.FindByIntent(closuresys.NewSet())
	assert.True(t, ok)
	_, ok = iceberg.FindByIntent(closuresys.NewSet("c"))
	assert.True(t, ok)
	topID, ok := iceberg.FindByIntent(closuresys.NewSet("a", "b", "c"))
	assert.True(t, ok) // original top re-added as sentinel

	n1ID, _ := iceberg.FindByIntent(closuresys.NewSet("c"))
	assert.True(t, iceberg.Graph().HasEdge(n1ID, topID))
}
