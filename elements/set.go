// Package elements defines Set, the finite-subset-of-S primitive shared by
// package is (rule premises/conclusions), package depgraph (dependency-edge
// antichains), package closuresys (Concept intents/extents), and package
// lattice — kept separate from all of them purely to avoid an import cycle
// between is and depgraph (both need Set; depgraph's DependencyGraph type
// is in turn consumed by is.RepresentativeGraph).
package elements

import (
	"sort"

	"golang.org/x/exp/slices"
)

// Set is a finite subset of the ground set S: always sorted ascending and
// free of duplicates. The zero value is the empty set.
type Set []string

// NewSet builds a Set from items, sorting and deduplicating them.
func NewSet(items ...string) Set {
	s := append(Set(nil), items...)
	s.normalize()

	return s
}

func (s *Set) normalize() {
	sort.Strings(*s)
	*s = slices.Compact(*s)
}

// Contains reports whether e ∈ s.
func (s Set) Contains(e string) bool {
	i := sort.SearchStrings(s, e)

	return i < len(s) && s[i] == e
}

// Subset reports whether s ⊆ other.
func (s Set) Subset(other Set) bool {
	for _, e := range s {
		if !other.Contains(e) {
			return false
		}
	}

	return true
}

// Equal reports structural equality (same elements, since both are sorted).
func (s Set) Equal(other Set) bool {
	return slices.Equal(s, other)
}

// Union returns s ∪ other as a fresh, normalized Set.
func (s Set) Union(other Set) Set {
	merged := append(append(Set(nil), s...), other...)
	merged.normalize()

	return merged
}

// Intersect returns s ∩ other as a fresh, normalized Set.
func (s Set) Intersect(other Set) Set {
	var out Set
	for _, e := range s {
		if other.Contains(e) {
			out = append(out, e)
		}
	}

	return out
}

// Diff returns s ∖ other as a fresh, normalized Set.
func (s Set) Diff(other Set) Set {
	var out Set
	for _, e := range s {
		if !other.Contains(e) {
			out = append(out, e)
		}
	}

	return out
}

// Add returns s ∪ {e} as a fresh, normalized Set.
func (s Set) Add(e string) Set {
	return s.Union(NewSet(e))
}

// Len returns |s|.
func (s Set) Len() int { return len(s) }

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	return append(Set(nil), s...)
}

// Less provides a total order on sets: shorter-is-smaller is NOT used;
// instead sets are compared lexicographically element-by-element (spec §3's
// "lexicographic by premise, then by conclusion" requires this, not a
// length-first order, so that e.g. {a} < {a,b} < {b} holds the same way a
// dictionary orders "a" < "ab" < "b").
func (s Set) Less(other Set) bool {
	for i := 0; i < len(s) && i < len(other); i++ {
		if s[i] != other[i] {
			return s[i] < other[i]
		}
	}

	return len(s) < len(other)
}
