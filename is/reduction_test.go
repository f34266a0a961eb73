package is_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/implication/is"
)

func s6() *is.ImplicationalSystem {
	sys := is.New("a", "b", "c")
	sys.AddRule(is.NewRule([]string{"a"}, []string{"b"}))
	sys.AddRule(is.NewRule([]string{"b"}, []string{"a"}))
	sys.AddRule(is.NewRule([]string{"a"}, []string{"c"}))

	return sys
}

func TestReducibleElements_S6(t *testing.T) {
	sys := s6()
	classes := sys.ReducibleElements()

	assert.ElementsMatch(t, []string{"b"}, classes["a"])
	assert.ElementsMatch(t, []string{"a"}, classes["b"])
	_, hasC := classes["c"]
	assert.False(t, hasC)
}

func TestReduce_S6(t *testing.T) {
	sys := s6()
	before := sys.ClosureOf("a")

	result := sys.Reduce()
	assert.Equal(t, map[string]is.Set{"a": is.NewSet("b")}, result)
	assert.False(t, sys.GroundSet().Contains("b"))
	assert.True(t, sys.GroundSet().Equal(is.NewSet("a", "c")))

	// Post-reduction closure agrees on the surviving ground set.
	after := sys.ClosureOf("a")
	assert.True(t, before.Diff(is.NewSet("b")).Equal(after))
}
