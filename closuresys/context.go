package closuresys

import "github.com/katalvlaran/implication/core"

// FormalContext is the second ClosureSystem implementation of spec §4.5: a
// binary relation between objects and attributes. Its closure operator is
// the standard Galois-connection double derivation: closure(X) = X'' (the
// attributes shared by every object that has all of X).
//
// Grounded on the minimal bipartite-relation representation shown by
// other_examples' formal-concept-analysis reference code: a map from object
// to its attribute set is enough to derive both halves of the connection
// without a dense incidence matrix.
type FormalContext struct {
	objects    Set
	attributes Set
	incidence  map[string]Set // object -> attributes it has
}

// NewFormalContext builds a context over the given objects and attributes.
// incidence maps each object to the attributes it possesses; objects or
// attributes absent from incidence are treated as empty.
func NewFormalContext(objects, attributes []string, incidence map[string][]string) *FormalContext {
	fc := &FormalContext{
		objects:    NewSet(objects...),
		attributes: NewSet(attributes...),
		incidence:  make(map[string]Set, len(incidence)),
	}
	for obj, attrs := range incidence {
		fc.incidence[obj] = NewSet(attrs...).Intersect(fc.attributes)
	}

	return fc
}

// GroundSet returns the attribute set (spec §4.5: ground_set() is the
// domain closure() operates over).
func (fc *FormalContext) GroundSet() Set {
	return fc.attributes.Clone()
}

// objectsHaving returns every object possessing every attribute in attrs
// (the attribute-side derivation, X').
func (fc *FormalContext) objectsHaving(attrs Set) Set {
	var objs []string
	for _, o := range fc.objects {
		if attrs.Subset(fc.incidence[o]) {
			objs = append(objs, o)
		}
	}

	return NewSet(objs...)
}

// attributesSharedBy returns every attribute common to every object in
// objs (the object-side derivation, Y').
func (fc *FormalContext) attributesSharedBy(objs Set) Set {
	if objs.Len() == 0 {
		return fc.attributes.Clone()
	}

	shared := fc.attributes.Clone()
	for _, o := range objs {
		shared = shared.Intersect(fc.incidence[o])
	}

	return shared
}

// Closure computes X'' (spec §4.5): the attributes shared by every object
// that has all of X.
func (fc *FormalContext) Closure(x Set) Set {
	return fc.attributesSharedBy(fc.objectsHaving(x))
}

// ExtentOf implements ExtentDeriver: the objects possessing every attribute
// in intent (X', the other half of the Galois connection Closure already
// computes one derivation of).
func (fc *FormalContext) ExtentOf(intent Set) Set {
	return fc.objectsHaving(intent)
}

// PrecedenceGraph returns a graph over the attribute set with a → b iff
// b ∈ closure({a}) ∖ {a}.
func (fc *FormalContext) PrecedenceGraph() *core.Graph[string, struct{}] {
	return PrecedenceGraph(fc.attributes, fc.Closure)
}

// AllClosures enumerates every closed attribute set, paired with its
// extent, via Ganter's Next-Closure algorithm.
func (fc *FormalContext) AllClosures() []Concept {
	intents := EnumerateClosures(fc.attributes, fc.Closure)
	out := make([]Concept, len(intents))
	for i, intent := range intents {
		out[i] = Concept{Intent: intent, Extent: fc.objectsHaving(intent)}
	}

	return out
}

// ReducibleElements maps each attribute to the other attributes that are
// closure-equivalent to it. Only single attributes are compared: an
// attribute equivalent to a set of several others, but to no single one, is
// not listed.
func (fc *FormalContext) ReducibleElements() map[string]Set {
	out := make(map[string]Set)
	for _, x := range fc.attributes {
		cx := fc.Closure(NewSet(x))
		var class []string
		for _, y := range fc.attributes {
			if x == y {
				continue
			}
			if cx.Contains(y) && fc.Closure(NewSet(y)).Contains(x) {
				class = append(class, y)
			}
		}
		if len(class) > 0 {
			out[x] = NewSet(class...)
		}
	}

	return out
}
