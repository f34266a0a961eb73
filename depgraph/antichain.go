package depgraph

import "github.com/katalvlaran/implication/elements"

// Antichain is an inclusion-minimal collection of Sets: no member is a
// (strict or non-strict) superset of another. It is the payload carried by
// every DependencyGraph edge (spec §3/§4.6).
type Antichain []elements.Set

// Insert adds w to the antichain, maintaining the inclusion-minimal
// invariant: any existing member that is a strict superset of w is dropped,
// and w itself is refused if some existing member is a subset of w.
// Reports whether the antichain actually changed.
func (a *Antichain) Insert(w elements.Set) bool {
	for _, existing := range *a {
		if existing.Subset(w) {
			return false // w is redundant: a subsuming (smaller-or-equal) witness already present
		}
	}

	kept := (*a)[:0]
	for _, existing := range *a {
		if !w.Subset(existing) || w.Equal(existing) {
			kept = append(kept, existing)
		}
	}
	*a = append(kept, w)

	return true
}

// Contains reports whether w is already a member (by set equality).
func (a Antichain) Contains(w elements.Set) bool {
	for _, existing := range a {
		if existing.Equal(w) {
			return true
		}
	}

	return false
}
