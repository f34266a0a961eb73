package closuresys

// EnumerateClosures runs Ganter's Next-Closure algorithm (spec §4.5
// all_closures): starting from closure(∅), repeatedly computes the
// lectically-next closed set until none remains, producing every closed
// subset of groundSet exactly once, in ascending lectic order. Shared by
// is.ImplicationalSystem.AllClosures and FormalContext.AllClosures so the
// algorithm is written once against the closure function alone.
func EnumerateClosures(groundSet Set, closure func(Set) Set) []Set {
	order := append([]string(nil), groundSet...) // groundSet is already ascending (elements.Set invariant)

	var out []Set
	current := closure(NewSet())
	out = append(out, current)

	for {
		next, ok := nextClosure(current, order, closure)
		if !ok {
			return out
		}
		out = append(out, next)
		current = next
	}
}

// nextClosure computes the lectically-next closed set after a, per
// Ganter's algorithm: scan positions from the last element down to the
// first; at each position i where e_i ∉ a, form B = closure((a ∩ prefix_i)
// ∪ {e_i}); if B agrees with a on the prefix before i, B is the answer.
func nextClosure(a Set, order []string, closure func(Set) Set) (Set, bool) {
	for i := len(order) - 1; i >= 0; i-- {
		ei := order[i]
		if a.Contains(ei) {
			continue
		}

		prefix := NewSet(order[:i]...)
		seed := a.Intersect(prefix).Add(ei)
		b := closure(seed)

		if b.Intersect(prefix).Equal(a.Intersect(prefix)) {
			return b, true
		}
	}

	return nil, false
}
