package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/implication/core"
)

func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph[string, int]()
	eid, err := g.AddEdge("a", "b", 42)
	assert.NoError(t, err)
	assert.NotEmpty(t, eid)
	assert.True(t, g.HasNode("a"))
	assert.True(t, g.HasNode("b"))

	e, err := g.GetEdge("a", "b")
	assert.NoError(t, err)
	assert.Equal(t, 42, e.Payload)
}

func TestAddEdge_LoopRejectedByDefault(t *testing.T) {
	g := core.NewGraph[string, int]()
	_, err := g.AddEdge("a", "a", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestAddEdge_LoopAllowedWithOption(t *testing.T) {
	g := core.NewGraph[string, int](core.WithLoops[string, int]())
	_, err := g.AddEdge("a", "a", 0)
	assert.NoError(t, err)
}

func TestAddEdge_MultiEdgeRejectedByDefault(t *testing.T) {
	g := core.NewGraph[string, int]()
	_, err := g.AddEdge("a", "b", 1)
	assert.NoError(t, err)
	_, err = g.AddEdge("a", "b", 2)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestEdges_SortedByID(t *testing.T) {
	g := core.NewGraph[string, int](core.WithMultiEdges[string, int]())
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("a", "b", 2)
	_, _ = g.AddEdge("b", "c", 3)

	edges := g.Edges()
	assert.Len(t, edges, 3)
	for i := 1; i < len(edges); i++ {
		assert.Less(t, edges[i-1].ID, edges[i].ID)
	}
}

func TestInducedSubgraph(t *testing.T) {
	g := core.NewGraph[string, int]()
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "c", 2)
	_, _ = g.AddEdge("a", "c", 3)

	sub := g.InducedSubgraph([]string{"a", "b"})
	assert.Equal(t, 2, sub.NodeCount())
	assert.Equal(t, 1, sub.EdgeCount())
	assert.True(t, sub.HasEdge("a", "b"))
	assert.False(t, sub.HasEdge("a", "c"))
}
