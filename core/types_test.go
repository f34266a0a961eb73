package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/implication/core"
)

func TestNewGraph_Empty(t *testing.T) {
	g := core.NewGraph[string, struct{}]()
	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestAddNode_Idempotent(t *testing.T) {
	g := core.NewGraph[string, struct{}]()

	idx1, err := g.AddNode("a", "payload-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, idx1)

	idx2, err := g.AddNode("a", "payload-2")
	assert.NoError(t, err)
	assert.Equal(t, idx1, idx2)

	n, err := g.GetNode("a")
	assert.NoError(t, err)
	assert.Equal(t, "payload-1", n.Payload, "second AddNode must not overwrite an existing payload")
}

func TestAddNode_EmptyID(t *testing.T) {
	g := core.NewGraph[string, struct{}]()
	_, err := g.AddNode("", "x")
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
}

func TestArenaIndicesAreInsertionOrder(t *testing.T) {
	g := core.NewGraph[string, struct{}]()
	for _, id := range []string{"c", "a", "b"} {
		_, _ = g.AddNode(id, "")
	}

	nodes := g.Nodes()
	assert.Equal(t, []string{"c", "a", "b"}, []string{nodes[0].ID, nodes[1].ID, nodes[2].ID})
	for i, n := range nodes {
		assert.Equal(t, i, n.Index)
	}
}
