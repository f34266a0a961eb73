package diagram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/implication/diagram"
	"github.com/katalvlaran/implication/is"
)

func TestGenerate_S2_FourClosedSets(t *testing.T) {
	// S2: S = {a,b,c}, Σ = {a → b, b → c}.
	sys := is.New("a", "b", "c")
	sys.AddRule(is.NewRule([]string{"a"}, []string{"b"}))
	sys.AddRule(is.NewRule([]string{"b"}, []string{"c"}))

	lat, dep, err := diagram.Generate(sys)
	require.NoError(t, err)
	require.NotNil(t, dep)

	assert.Equal(t, 4, lat.NodeCount())

	want := []is.Set{
		is.NewSet(),
		is.NewSet("c"),
		is.NewSet("b", "c"),
		is.NewSet("a", "b", "c"),
	}
	for _, w := range want {
		_, ok := lat.FindByIntent(w)
		assert.True(t, ok, "expected closed set %v as a lattice node", w)
	}
}

func TestGenerate_S4_PowerSetLattice(t *testing.T) {
	// S4: empty Σ over S = {a,b,c}. Lattice is the power-set lattice: 8 nodes.
	sys := is.New("a", "b", "c")

	lat, _, err := diagram.Generate(sys)
	require.NoError(t, err)
	assert.Equal(t, 8, lat.NodeCount())

	_, hasBottom := lat.FindByIntent(is.NewSet())
	assert.True(t, hasBottom)
	_, hasTop := lat.FindByIntent(is.NewSet("a", "b", "c"))
	assert.True(t, hasTop)
}

func TestGenerate_NodesMatchAllClosures(t *testing.T) {
	sys := is.New("a", "b", "c", "d", "e")
	sys.AddRule(is.NewRule([]string{"a", "b"}, []string{"c", "d"}))
	sys.AddRule(is.NewRule([]string{"c", "d"}, []string{"e"}))

	lat, _, err := diagram.Generate(sys)
	require.NoError(t, err)

	closures := sys.AllClosures()
	assert.Equal(t, len(closures), lat.NodeCount())
	for _, c := range closures {
		_, ok := lat.FindByIntent(c.Intent)
		assert.True(t, ok, "AllClosures intent %v missing from diagram", c.Intent)
	}
}
