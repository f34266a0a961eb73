package is

// Rule is an implication premise → conclusion over subsets of the ground
// set. Equality is structural on (Premise, Conclusion); the zero value is
// the degenerate rule ∅ → ∅.
type Rule struct {
	Premise    Set
	Conclusion Set
}

// NewRule builds a Rule from raw element lists, normalizing both halves.
func NewRule(premise, conclusion []string) Rule {
	return Rule{Premise: NewSet(premise...), Conclusion: NewSet(conclusion...)}
}

// Equal reports structural equality of two rules.
func (r Rule) Equal(other Rule) bool {
	return r.Premise.Equal(other.Premise) && r.Conclusion.Equal(other.Conclusion)
}

// Less provides the total order spec §3 requires on Σ: lexicographic by
// premise, then by conclusion.
func (r Rule) Less(other Rule) bool {
	if !r.Premise.Equal(other.Premise) {
		return r.Premise.Less(other.Premise)
	}

	return r.Conclusion.Less(other.Conclusion)
}

// elements returns Premise ∪ Conclusion, used by containment checks.
func (r Rule) elements() Set {
	return r.Premise.Union(r.Conclusion)
}

// AssociationRule is a Rule annotated with the support and confidence
// metrics spec §3 requires for makeCompactAssociation: two association
// rules are mergeable by makeCompactAssociation only when, in addition to
// sharing a premise, their Support and Confidence also match.
type AssociationRule struct {
	Rule
	Support    float64
	Confidence float64
}

// NewAssociationRule builds an AssociationRule from raw element lists.
func NewAssociationRule(premise, conclusion []string, support, confidence float64) AssociationRule {
	return AssociationRule{
		Rule:       NewRule(premise, conclusion),
		Support:    support,
		Confidence: confidence,
	}
}
