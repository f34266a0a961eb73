package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/implication/closuresys"
)

func TestGetJoinReduction_LabelsByReducedIntent(t *testing.T) {
	l, ids := chain(t)

	proj, err := l.GetJoinReduction()
	require.NoError(t, err)
	assert.Equal(t, 4, proj.NodeCount())

	n1, err := proj.GetNode(ids[1])
	require.NoError(t, err)
	assert.Equal(t, "c", n1.Payload)

	n0, err := proj.GetNode(ids[0])
	require.NoError(t, err)
	assert.NotEmpty(t, n0.Payload) // anonymous placeholder: reduced intent is empty

	// Original lattice is untouched by the projection.
	c0, _ := l.Concept(ids[0])
	assert.True(t, c0.Intent.Equal(closuresys.NewSet()))
}

func TestGetMeetReduction_LabelsByReducedExtent(t *testing.T) {
	l, ids := chain(t)

	proj, err := l.GetMeetReduction()
	require.NoError(t, err)

	n3, err := proj.GetNode(ids[3])
	require.NoError(t, err)
	assert.Equal(t, "a", n3.Payload) // top's reduced extent is {a,b,c}

	n0, err := proj.GetNode(ids[0])
	require.NoError(t, err)
	assert.NotEmpty(t, n0.Payload) // reduced extent is empty -> anonymous
}

func TestGetIrreduciblesReduction_PreservesEdges(t *testing.T) {
	l, ids := chain(t)

	proj, err := l.GetIrreduciblesReduction()
	require.NoError(t, err)
	assert.Equal(t, 4, proj.NodeCount())
	assert.True(t, proj.HasEdge(ids[0], ids[1]))
	assert.True(t, proj.HasEdge(ids[1], ids[2]))
	assert.True(t, proj.HasEdge(ids[2], ids[3]))
}
