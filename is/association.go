package is

import "strconv"

// MakeCompactAssociation mirrors MakeCompact (is/rewrites.go) for
// AssociationRule slices (spec §3/§4.3): rules are merged when they share a
// premise AND have matching support and confidence, unlike plain
// make_compact which merges on premise alone. It operates on a bare slice
// rather than an ImplicationalSystem because AssociationRule carries
// metrics the (S, Σ) pair has no field for.
func MakeCompactAssociation(rules []AssociationRule) []AssociationRule {
	type bucket struct {
		premise    Set
		conclusion Set
		support    float64
		confidence float64
	}
	var buckets []bucket
	index := make(map[string]int)

	for _, r := range rules {
		k := premiseKey(r.Premise) + associationKey(r.Support, r.Confidence)
		if idx, ok := index[k]; ok {
			buckets[idx].conclusion = buckets[idx].conclusion.Union(r.Conclusion)
			continue
		}
		index[k] = len(buckets)
		buckets = append(buckets, bucket{
			premise:    r.Premise.Clone(),
			conclusion: r.Conclusion.Clone(),
			support:    r.Support,
			confidence: r.Confidence,
		})
	}

	out := make([]AssociationRule, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, AssociationRule{
			Rule:       Rule{Premise: b.premise, Conclusion: b.conclusion},
			Support:    b.support,
			Confidence: b.confidence,
		})
	}

	return out
}

func associationKey(support, confidence float64) string {
	return strconv.FormatFloat(support, 'g', -1, 64) + "\x00" + strconv.FormatFloat(confidence, 'g', -1, 64)
}
