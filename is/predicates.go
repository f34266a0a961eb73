package is

// The property predicates of spec §4.4 each test the fixed-point condition
// of the matching rewrite: apart from IsDirect, each one is true iff applying
// the matching rewrite to sys would be a no-op. IsDirect checks one-pass
// closure on Σ's premises and does not require the compact form MakeDirect
// ends with.

// IsProper reports whether every rule's conclusion is disjoint from its
// premise.
func (sys *ImplicationalSystem) IsProper() bool {
	for _, r := range sys.rules {
		if r.Conclusion.Intersect(r.Premise).Len() > 0 {
			return false
		}
	}

	return true
}

// IsUnary reports whether every rule has a single-element conclusion.
func (sys *ImplicationalSystem) IsUnary() bool {
	for _, r := range sys.rules {
		if r.Conclusion.Len() != 1 {
			return false
		}
	}

	return true
}

// IsCompact reports whether no two distinct rules share a premise.
func (sys *ImplicationalSystem) IsCompact() bool {
	seen := make(map[string]bool)
	for _, r := range sys.rules {
		k := premiseKey(r.Premise)
		if seen[k] {
			return false
		}
		seen[k] = true
	}

	return true
}

func premiseKey(p Set) string {
	s := ""
	for _, e := range p {
		s += e + "\x00"
	}

	return s
}

// IsRightMaximal reports whether sys is compact and every rule's conclusion
// already equals the full closure of its premise.
func (sys *ImplicationalSystem) IsRightMaximal() bool {
	if !sys.IsCompact() {
		return false
	}
	for _, r := range sys.rules {
		if !r.Conclusion.Equal(sys.Closure(r.Premise)) {
			return false
		}
	}

	return true
}

// IsLeftMinimal reports whether sys is compact and, in its unary form, no
// rule's premise is a (strict) superset of another rule's premise while both
// share the same conclusion.
func (sys *ImplicationalSystem) IsLeftMinimal() bool {
	if !sys.IsCompact() {
		return false
	}
	unary := sys.Clone()
	unary.MakeUnary()
	for i, ri := range unary.rules {
		for j, rj := range unary.rules {
			if i == j || !ri.Conclusion.Equal(rj.Conclusion) {
				continue
			}
			if rj.Premise.Subset(ri.Premise) && !ri.Premise.Subset(rj.Premise) {
				return false
			}
		}
	}

	return true
}

// IsDirect reports whether, for every rule in Σ, a single synchronous pass
// of rule-firing from that rule's premise already yields its full closure —
// the practical, checkable form of "closure(X) is obtained in one pass"
// (spec §4.1/glossary), since checking this for literally every X ⊆ S is
// exponential and the premises already in Σ are the only sets whose
// one-pass behavior the canonical-direct-basis construction cares about.
func (sys *ImplicationalSystem) IsDirect() bool {
	for _, r := range sys.rules {
		if !sys.onePass(r.Premise).Equal(sys.Closure(r.Premise)) {
			return false
		}
	}

	return true
}

// onePass applies every rule whose premise ⊆ x exactly once, against the
// original x (not the growing result), and returns x unioned with every
// fired conclusion.
func (sys *ImplicationalSystem) onePass(x Set) Set {
	out := x.Clone()
	for _, r := range sys.rules {
		if r.Premise.Subset(x) {
			out = out.Union(r.Conclusion)
		}
	}

	return out
}

// IsMinimum reports whether sys is right-maximal and no rule is redundant
// (its removal would change the closure of its own premise).
func (sys *ImplicationalSystem) IsMinimum() bool {
	if !sys.IsRightMaximal() {
		return false
	}
	for i, r := range sys.rules {
		without := sys.Clone()
		without.rules = append(append([]Rule(nil), sys.rules[:i]...), sys.rules[i+1:]...)
		if without.Closure(r.Premise).Equal(sys.Closure(r.Premise)) {
			return false // r is redundant
		}
	}

	return true
}

// IsCanonicalDirectBasis reports whether sys already equals (structurally,
// up to rule ordering) the result of MakeCanonicalDirectBasis applied to a
// clone.
func (sys *ImplicationalSystem) IsCanonicalDirectBasis() bool {
	clone := sys.Clone()
	clone.MakeCanonicalDirectBasis()

	return sys.structurallyEqual(clone)
}

// IsCanonicalBasis reports whether sys already equals (structurally, up to
// rule ordering) the result of MakeCanonicalBasis applied to a clone.
func (sys *ImplicationalSystem) IsCanonicalBasis() bool {
	clone := sys.Clone()
	clone.MakeCanonicalBasis()

	return sys.structurallyEqual(clone)
}

// IsReduced reports whether sys already equals (structurally) its own
// canonical-direct-basis normal form (spec §4.4: "compares self to a
// normalised clone for structural equality").
func (sys *ImplicationalSystem) IsReduced() bool {
	return sys.IsCanonicalDirectBasis()
}

// structurallyEqual reports whether sys and other have the same rule set,
// independent of storage order (both are kept sorted, so this is a direct
// slice comparison after Rules()).
func (sys *ImplicationalSystem) structurallyEqual(other *ImplicationalSystem) bool {
	a, b := sys.Rules(), other.Rules()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

// IsIncludedIn reports whether sys's proper-unary form is a subset (by rule
// structural equality) of other's proper-unary form.
func (sys *ImplicationalSystem) IsIncludedIn(other *ImplicationalSystem) bool {
	a := sys.Clone()
	a.MakeProper()
	a.MakeUnary()
	b := other.Clone()
	b.MakeProper()
	b.MakeUnary()

	for _, ra := range a.Rules() {
		if !b.containsRule(ra) {
			return false
		}
	}

	return true
}
