package is_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/implication/is"
)

func TestIsProper_S3(t *testing.T) {
	sys := is.New("a", "b")
	sys.AddRule(is.NewRule([]string{"a"}, []string{"a", "b"}))

	assert.False(t, sys.IsProper())
	sys.MakeProper()
	assert.True(t, sys.IsProper())
}

func TestIsDirect_S2(t *testing.T) {
	sys := is.New("a", "b", "c")
	sys.AddRule(is.NewRule([]string{"a"}, []string{"b"}))
	sys.AddRule(is.NewRule([]string{"b"}, []string{"c"}))

	assert.False(t, sys.IsDirect())
	sys.MakeDirect()
	assert.True(t, sys.IsDirect())
}

func TestIsUnaryIsCompact(t *testing.T) {
	sys := s1()
	assert.False(t, sys.IsUnary())

	sys.MakeUnary()
	assert.True(t, sys.IsUnary())
	assert.False(t, sys.IsCompact()) // ab->c and ab->d share a premise

	sys.MakeCompact()
	assert.True(t, sys.IsCompact())
}

func TestIsCanonicalDirectBasis(t *testing.T) {
	sys := s1()
	assert.False(t, sys.IsCanonicalDirectBasis())

	sys.MakeCanonicalDirectBasis()
	assert.True(t, sys.IsCanonicalDirectBasis())
}

func TestIsReduced(t *testing.T) {
	sys := s1()
	assert.False(t, sys.IsReduced())

	sys.MakeCanonicalDirectBasis()
	assert.True(t, sys.IsReduced())
}

func TestIsIncludedIn(t *testing.T) {
	a := is.New("a", "b", "c", "d", "e")
	a.AddRule(is.NewRule([]string{"a", "b"}, []string{"c"}))

	b := s1() // ab -> cd, cd -> e; unary form includes ab->c
	assert.True(t, a.IsIncludedIn(b))
	assert.False(t, b.IsIncludedIn(a))
}

func TestIsMinimum(t *testing.T) {
	sys := is.New("a", "b", "c")
	sys.AddRule(is.NewRule([]string{"a"}, []string{"b"}))
	sys.AddRule(is.NewRule([]string{"b"}, []string{"c"}))
	sys.AddRule(is.NewRule([]string{"a", "b"}, []string{"c"})) // redundant: closure({a,b}) already has c via a->b->c

	sys.MakeRightMaximal()
	assert.False(t, sys.IsMinimum())

	sys.MakeMinimum()
	assert.True(t, sys.IsMinimum())
}
