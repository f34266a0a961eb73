package is_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/implication/is"
)

func TestMakeCompactAssociation_MergesOnlyMatchingMetrics(t *testing.T) {
	rules := []is.AssociationRule{
		is.NewAssociationRule([]string{"a"}, []string{"b"}, 0.5, 0.9),
		is.NewAssociationRule([]string{"a"}, []string{"c"}, 0.5, 0.9), // same premise+metrics: merges
		is.NewAssociationRule([]string{"a"}, []string{"d"}, 0.5, 0.8), // same premise, different confidence: stays separate
	}

	out := is.MakeCompactAssociation(rules)
	assert.Len(t, out, 2)

	var merged, distinct is.AssociationRule
	for _, r := range out {
		if r.Conclusion.Len() == 2 {
			merged = r
		} else {
			distinct = r
		}
	}
	assert.True(t, merged.Conclusion.Equal(is.NewSet("b", "c")))
	assert.Equal(t, 0.9, merged.Confidence)
	assert.True(t, distinct.Conclusion.Equal(is.NewSet("d")))
	assert.Equal(t, 0.8, distinct.Confidence)
}
