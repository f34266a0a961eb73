package is_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/implication/is"
)

func TestAddRule_RejectsElementsOutsideGroundSet(t *testing.T) {
	sys := is.New("a", "b")
	ok := sys.AddRule(is.NewRule([]string{"a"}, []string{"z"}))

	assert.False(t, ok)
	assert.Equal(t, 0, sys.RuleCount())
}

func TestAddRule_RejectsDuplicate(t *testing.T) {
	sys := is.New("a", "b")
	r := is.NewRule([]string{"a"}, []string{"b"})

	assert.True(t, sys.AddRule(r))
	assert.False(t, sys.AddRule(r))
	assert.Equal(t, 1, sys.RuleCount())
}

func TestDeleteElement_DropsVacuousRules(t *testing.T) {
	sys := is.New("a", "b", "c")
	sys.AddRule(is.NewRule([]string{"a"}, []string{"b"}))
	sys.AddRule(is.NewRule([]string{"a"}, []string{"c"}))

	sys.DeleteElement("b")
	assert.False(t, sys.GroundSet().Contains("b"))

	rules := sys.Rules()
	assert.Len(t, rules, 1)
	assert.True(t, rules[0].Conclusion.Equal(is.NewSet("c")))
}

func TestReplaceRule_AtomicOnMissingOld(t *testing.T) {
	sys := is.New("a", "b", "c")
	old := is.NewRule([]string{"a"}, []string{"b"})
	replacement := is.NewRule([]string{"a"}, []string{"c"})

	ok := sys.ReplaceRule(old, replacement)
	assert.False(t, ok)
	assert.Equal(t, 0, sys.RuleCount())
}

func TestClone_IsIndependent(t *testing.T) {
	sys := s1()
	clone := sys.Clone()
	clone.MakeUnary()

	assert.NotEqual(t, sys.RuleCount(), clone.RuleCount())
	assert.Equal(t, 2, sys.RuleCount())
}
