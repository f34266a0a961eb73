package is

import "sort"

// ImplicationalSystem is the pair (S, Σ) of spec.md §3: a totally ordered
// ground set S and a totally ordered, duplicate-free rule set Σ. The zero
// value is the empty system; use New for a pre-populated one.
type ImplicationalSystem struct {
	groundSet Set
	rules     []Rule
}

// New creates an ImplicationalSystem whose ground set is the given elements.
func New(elements ...string) *ImplicationalSystem {
	return &ImplicationalSystem{groundSet: NewSet(elements...)}
}

// GroundSet returns S in ascending order.
func (sys *ImplicationalSystem) GroundSet() Set {
	return sys.groundSet.Clone()
}

// Rules returns Σ in its total order (lexicographic by premise, then
// conclusion — spec §3).
func (sys *ImplicationalSystem) Rules() []Rule {
	out := make([]Rule, len(sys.rules))
	copy(out, sys.rules)

	return out
}

// RuleCount returns |Σ|.
func (sys *ImplicationalSystem) RuleCount() int { return len(sys.rules) }

// AddElement inserts e into S. Reports whether e was new (spec §7: this is
// a query, "already present" is not an error).
func (sys *ImplicationalSystem) AddElement(e string) bool {
	if sys.groundSet.Contains(e) {
		return false
	}
	sys.groundSet = sys.groundSet.Add(e)

	return true
}

// AddAllElements inserts every element of xs into S. Reports whether every
// element was new (false if at least one was already present).
func (sys *ImplicationalSystem) AddAllElements(xs ...string) bool {
	allNew := true
	for _, e := range xs {
		if !sys.AddElement(e) {
			allNew = false
		}
	}

	return allNew
}

// DeleteElement removes e from S and, per spec §3 invariant (iii), removes
// it from every rule's premise and conclusion, dropping any rule whose
// conclusion becomes empty.
func (sys *ImplicationalSystem) DeleteElement(e string) {
	if !sys.groundSet.Contains(e) {
		return
	}
	sys.groundSet = sys.groundSet.Diff(NewSet(e))

	kept := sys.rules[:0]
	for _, r := range sys.rules {
		r.Premise = r.Premise.Diff(NewSet(e))
		r.Conclusion = r.Conclusion.Diff(NewSet(e))
		if r.Conclusion.Len() > 0 {
			kept = append(kept, r)
		}
	}
	sys.rules = kept
	sys.sortRules()
}

// containsRule reports whether an equal rule is already present.
func (sys *ImplicationalSystem) containsRule(r Rule) bool {
	for _, existing := range sys.rules {
		if existing.Equal(r) {
			return true
		}
	}

	return false
}

// AddRule inserts r if it is not already present and every element it
// mentions is in S. Reports whether it was inserted (spec §7: a query, not
// an error — "add_rule with elements outside S returns false").
func (sys *ImplicationalSystem) AddRule(r Rule) bool {
	if !r.elements().Subset(sys.groundSet) {
		return false
	}
	if sys.containsRule(r) {
		return false
	}
	sys.rules = append(sys.rules, r)
	sys.sortRules()

	return true
}

// RemoveRule deletes r (by structural equality) from Σ. Reports whether a
// matching rule was found and removed.
func (sys *ImplicationalSystem) RemoveRule(r Rule) bool {
	for i, existing := range sys.rules {
		if existing.Equal(r) {
			sys.rules = append(sys.rules[:i], sys.rules[i+1:]...)

			return true
		}
	}

	return false
}

// ReplaceRule atomically removes old and inserts replacement. If old is not
// present, or replacement mentions an element outside S, nothing changes
// (the pair is atomic).
func (sys *ImplicationalSystem) ReplaceRule(old, replacement Rule) bool {
	if !replacement.elements().Subset(sys.groundSet) {
		return false
	}
	if !sys.RemoveRule(old) {
		return false
	}
	sys.AddRule(replacement)

	return true
}

func (sys *ImplicationalSystem) sortRules() {
	sort.Slice(sys.rules, func(i, j int) bool { return sys.rules[i].Less(sys.rules[j]) })
}

// replaceAll atomically discards Σ and installs a fresh, deduplicated,
// sorted rule set. Every normalisation rewrite in rewrites.go builds its
// replacement Σ on a private slice first (never mutating sys.rules while
// iterating it — spec §4.2's snapshot-before-mutate discipline) and then
// calls replaceAll exactly once.
func (sys *ImplicationalSystem) replaceAll(rules []Rule) {
	deduped := make([]Rule, 0, len(rules))
	for _, r := range rules {
		dup := false
		for _, existing := range deduped {
			if existing.Equal(r) {
				dup = true
				break
			}
		}
		if !dup {
			deduped = append(deduped, r)
		}
	}
	sys.rules = deduped
	sys.sortRules()
}

// Clone returns an independent deep copy of sys.
func (sys *ImplicationalSystem) Clone() *ImplicationalSystem {
	out := &ImplicationalSystem{groundSet: sys.groundSet.Clone()}
	out.rules = make([]Rule, len(sys.rules))
	for i, r := range sys.rules {
		out.rules[i] = Rule{Premise: r.Premise.Clone(), Conclusion: r.Conclusion.Clone()}
	}

	return out
}
