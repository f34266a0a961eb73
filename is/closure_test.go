package is_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/implication/is"
)

func s1() *is.ImplicationalSystem {
	sys := is.New("a", "b", "c", "d", "e")
	sys.AddRule(is.NewRule([]string{"a", "b"}, []string{"c", "d"}))
	sys.AddRule(is.NewRule([]string{"c", "d"}, []string{"e"}))

	return sys
}

func TestClosure_S1(t *testing.T) {
	sys := s1()
	assert.ElementsMatch(t, []string{"a", "b", "c", "d", "e"}, sys.Closure(is.NewSet("a", "b")))
	assert.ElementsMatch(t, []string{"c"}, sys.Closure(is.NewSet("c")))
	assert.ElementsMatch(t, []string{"c", "d", "e"}, sys.Closure(is.NewSet("c", "d")))
}

func TestClosure_EmptyPremiseFiresUnconditionally(t *testing.T) {
	// S5: S = {a,b}, Σ = {∅ → a}.
	sys := is.New("a", "b")
	sys.AddRule(is.NewRule(nil, []string{"a"}))

	assert.ElementsMatch(t, []string{"a"}, sys.Closure(is.NewSet()))
}

func TestClosure_Laws(t *testing.T) {
	sys := s1()
	x := is.NewSet("a")
	y := is.NewSet("a", "b")

	// Extensive.
	assert.True(t, x.Subset(sys.Closure(x)))
	// Monotone.
	assert.True(t, sys.Closure(x).Subset(sys.Closure(y)))
	// Idempotent.
	assert.True(t, sys.Closure(sys.Closure(x)).Equal(sys.Closure(x)))
}

func TestClosure_InvariantUnderRuleInsertionOrder(t *testing.T) {
	ascending := is.New("a", "b", "c", "d", "e")
	ascending.AddRule(is.NewRule([]string{"a", "b"}, []string{"c", "d"}))
	ascending.AddRule(is.NewRule([]string{"c", "d"}, []string{"e"}))

	descending := is.New("a", "b", "c", "d", "e")
	descending.AddRule(is.NewRule([]string{"c", "d"}, []string{"e"}))
	descending.AddRule(is.NewRule([]string{"a", "b"}, []string{"c", "d"}))

	want := ascending.Closure(is.NewSet("a", "b"))
	got := descending.Closure(is.NewSet("a", "b"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("closure differs by rule insertion order (-want +got):\n%s", diff)
	}
}
