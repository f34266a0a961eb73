package is

// ReducibleElements implements the ClosureSystem capability of spec §4.5:
// for every element e, the set of other elements equivalent to e under
// closure (x ~ y iff y ∈ closure({x}) and x ∈ closure({y})). Elements with
// no equivalent partner are omitted from the result.
func (sys *ImplicationalSystem) ReducibleElements() map[string]Set {
	out := make(map[string]Set)
	for _, x := range sys.groundSet {
		cx := sys.ClosureOf(x)
		var class []string
		for _, y := range sys.groundSet {
			if x == y {
				continue
			}
			if cx.Contains(y) && sys.ClosureOf(y).Contains(x) {
				class = append(class, y)
			}
		}
		if len(class) > 0 {
			out[x] = NewSet(class...)
		}
	}

	return out
}

// Reduce collapses every closure-equivalence class of size > 1 down to its
// lexicographically-first member (spec §8 scenario S6): the surviving
// element is kept in S, every other member of its class is deleted from S
// and from every rule's premise/conclusion (occurrences replaced by the
// survivor; replaceElement's dedup via replaceAll keeps Σ well-formed).
// Returns survivor → {deleted members}, mirroring S6's `{a ↦ {b}}`.
func (sys *ImplicationalSystem) Reduce() map[string]Set {
	classes := sys.ReducibleElements()
	assigned := make(map[string]bool) // elements already placed in a reported group
	result := make(map[string]Set)

	for _, e := range sys.groundSet { // ascending order: first-seen member of a class is the survivor
		if assigned[e] {
			continue
		}
		partners, ok := classes[e]
		if !ok {
			continue
		}

		survivor := e
		var removed []string
		for _, p := range partners {
			if assigned[p] || p == survivor {
				continue
			}
			assigned[p] = true
			removed = append(removed, p)
		}
		assigned[survivor] = true
		if len(removed) == 0 {
			continue
		}

		for _, p := range removed {
			sys.replaceElement(p, survivor)
			sys.DeleteElement(p)
		}
		result[survivor] = NewSet(removed...)
	}

	return result
}

// replaceElement substitutes every occurrence of from in every rule's
// premise/conclusion with to, ahead of DeleteElement's own removal pass, so
// that a rule like (from → c) becomes (to → c) instead of being dropped as
// vacuous.
func (sys *ImplicationalSystem) replaceElement(from, to string) {
	out := make([]Rule, 0, len(sys.rules))
	for _, r := range sys.rules {
		out = append(out, Rule{
			Premise:    substitute(r.Premise, from, to),
			Conclusion: substitute(r.Conclusion, from, to),
		})
	}
	sys.replaceAll(out)
}

func substitute(s Set, from, to string) Set {
	if !s.Contains(from) {
		return s.Clone()
	}

	return s.Diff(NewSet(from)).Add(to)
}
