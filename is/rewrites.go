package is

// Each rewrite follows spec §4.2's mutation contract: build the replacement
// Σ on a private slice first (snapshot-before-mutate), never mutate
// sys.rules while iterating either sys.rules or a derived snapshot of it,
// and install the result via replaceAll exactly once. Every rewrite returns
// before − after (spec §4.3).

// MakeProper deletes, from every rule's conclusion, any element already in
// its premise, then drops rules whose conclusion becomes empty.
func (sys *ImplicationalSystem) MakeProper() int {
	before := len(sys.rules)
	out := make([]Rule, 0, before)
	for _, r := range sys.rules {
		r.Conclusion = r.Conclusion.Diff(r.Premise)
		if r.Conclusion.Len() > 0 {
			out = append(out, r)
		}
	}
	sys.replaceAll(out)

	return before - len(sys.rules)
}

// MakeUnary replaces every rule (P, C) with |C| > 1 by |C| rules (P, {c}).
func (sys *ImplicationalSystem) MakeUnary() int {
	before := len(sys.rules)
	out := make([]Rule, 0, before)
	for _, r := range sys.rules {
		if r.Conclusion.Len() <= 1 {
			out = append(out, r)
			continue
		}
		for _, c := range r.Conclusion {
			out = append(out, Rule{Premise: r.Premise.Clone(), Conclusion: NewSet(c)})
		}
	}
	sys.replaceAll(out)

	return before - len(sys.rules)
}

// MakeCompact merges rules sharing a premise into one rule whose conclusion
// is the union of theirs. Rebuilds Σ into a fresh set rather than mutating
// in place while iterating (spec §9's "prefer the newer semantics" open
// question resolution).
func (sys *ImplicationalSystem) MakeCompact() int {
	before := len(sys.rules)

	type bucket struct {
		premise    Set
		conclusion Set
	}
	var buckets []bucket
	index := make(map[string]int) // stringified premise -> bucket index

	key := func(p Set) string {
		s := ""
		for _, e := range p {
			s += e + "\x00"
		}

		return s
	}

	for _, r := range sys.rules {
		k := key(r.Premise)
		if idx, ok := index[k]; ok {
			buckets[idx].conclusion = buckets[idx].conclusion.Union(r.Conclusion)
			continue
		}
		index[k] = len(buckets)
		buckets = append(buckets, bucket{premise: r.Premise.Clone(), conclusion: r.Conclusion.Clone()})
	}

	out := make([]Rule, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, Rule{Premise: b.premise, Conclusion: b.conclusion})
	}
	sys.replaceAll(out)

	return before - len(sys.rules)
}

// MakeRightMaximal compacts Σ, then replaces every conclusion by the full
// closure of its premise.
func (sys *ImplicationalSystem) MakeRightMaximal() int {
	before := len(sys.rules)
	sys.MakeCompact()

	out := make([]Rule, 0, len(sys.rules))
	for _, r := range sys.rules {
		out = append(out, Rule{Premise: r.Premise.Clone(), Conclusion: sys.Closure(r.Premise)})
	}
	sys.replaceAll(out)

	return before - len(sys.rules)
}

// MakeLeftMinimal unaries Σ, drops any rule whose premise is a strict
// superset of another rule's premise when both share the same conclusion,
// then compacts.
func (sys *ImplicationalSystem) MakeLeftMinimal() int {
	before := len(sys.rules)
	sys.MakeUnary()

	snapshot := sys.Rules()
	drop := make([]bool, len(snapshot))
	for i, ri := range snapshot {
		if drop[i] {
			continue
		}
		for j, rj := range snapshot {
			if i == j || drop[j] {
				continue
			}
			if !ri.Conclusion.Equal(rj.Conclusion) {
				continue
			}
			if rj.Premise.Subset(ri.Premise) && !ri.Premise.Subset(rj.Premise) {
				drop[i] = true
				break
			}
		}
	}

	out := make([]Rule, 0, len(snapshot))
	for i, r := range snapshot {
		if !drop[i] {
			out = append(out, r)
		}
	}
	sys.replaceAll(out)
	sys.MakeCompact()

	return before - len(sys.rules)
}

// MakeDirect computes a direct basis equivalent to Σ (spec §4.3): unary +
// proper, then repeatedly, for every ordered pair of rules (r1, r2) with
// P1 ⊄ C2, forms Q = (P2 ∖ C1) ∪ P1 and adds (Q, C2) whenever Q ⊉ P2, until
// a full pass adds nothing new; finally compacts.
//
// Worst-case exponential in |Σ|/|S| (spec §9's open question: the outer
// "until no new rule added" loop IS the specification — terminates because
// the set of possible (Q, C2) rules is bounded by 2^|S| × |Σ|, so growth is
// monotone on a finite set, but no better bound than that is claimed).
func (sys *ImplicationalSystem) MakeDirect() int {
	before := len(sys.rules)
	sys.MakeUnary()
	sys.MakeProper()

	for {
		snapshot := sys.Rules()
		added := false
		for _, r1 := range snapshot {
			for _, r2 := range snapshot {
				if r1.Premise.Subset(r2.Conclusion) {
					continue // condition is P1 ⊄ C2; skip when P1 ⊆ C2
				}
				q := r2.Premise.Diff(r1.Conclusion).Union(r1.Premise)
				if r2.Premise.Subset(q) {
					continue // condition is Q ⊉ P2; skip when Q ⊇ P2
				}
				candidate := Rule{Premise: q, Conclusion: r2.Conclusion.Clone()}
				if sys.AddRule(candidate) {
					added = true
				}
			}
		}
		if !added {
			break
		}
	}
	sys.MakeCompact()

	return before - len(sys.rules)
}

// MakeMinimum right-maximalizes Σ, then drops every rule whose removal
// would not change the closure of its own premise (i.e. every genuinely
// redundant rule).
func (sys *ImplicationalSystem) MakeMinimum() int {
	before := len(sys.rules)
	sys.MakeRightMaximal()

	snapshot := sys.Rules()
	var out []Rule
	for i, r := range snapshot {
		without := sys.Clone()
		without.rules = append(append([]Rule(nil), snapshot[:i]...), snapshot[i+1:]...)
		if without.Closure(r.Premise).Equal(sys.Closure(r.Premise)) {
			continue // redundant: dropping r does not change closure(P_r)
		}
		out = append(out, r)
	}
	sys.replaceAll(out)

	return before - len(sys.rules)
}

// MakeCanonicalDirectBasis computes the canonical (minimum-cardinality
// among direct bases) direct basis: proper, left-minimal, direct,
// left-minimal, compact.
func (sys *ImplicationalSystem) MakeCanonicalDirectBasis() int {
	before := len(sys.rules)
	sys.MakeProper()
	sys.MakeLeftMinimal()
	sys.MakeDirect()
	sys.MakeLeftMinimal()
	sys.MakeCompact()

	return before - len(sys.rules)
}

// MakeCanonicalBasis computes the Duquenne–Guigues canonical basis: minimum,
// then each rule's premise is replaced by closure_{Σ∖{r}}(P_r) (its pseudo-
// closure), then proper.
func (sys *ImplicationalSystem) MakeCanonicalBasis() int {
	before := len(sys.rules)
	sys.MakeMinimum()

	snapshot := sys.Rules()
	out := make([]Rule, 0, len(snapshot))
	for i, r := range snapshot {
		without := sys.Clone()
		without.rules = append(append([]Rule(nil), snapshot[:i]...), snapshot[i+1:]...)
		out = append(out, Rule{Premise: without.Closure(r.Premise), Conclusion: r.Conclusion.Clone()})
	}
	sys.replaceAll(out)
	sys.MakeProper()

	return before - len(sys.rules)
}
