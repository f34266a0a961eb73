package closuresys

// Concept pairs a closed set's intent with its extent (spec §4.5
// all_closures / §4.8 lattice nodes). For an ImplicationalSystem, which has
// no separate object dimension, Extent is set equal to Intent; for a
// FormalContext, Extent is the object set whose common attributes are
// exactly Intent.
type Concept struct {
	Intent Set
	Extent Set
}

// Less orders concepts lectically by Intent, the order Next-Closure
// enumerates in (spec §4.5's "produces every closed set exactly once in
// lectic order").
func (c Concept) Less(other Concept) bool {
	return c.Intent.Less(other.Intent)
}

// Equal reports whether two concepts have the same intent (extents agree
// whenever both sides come from the same ClosureSystem, since intent
// determines extent there).
func (c Concept) Equal(other Concept) bool {
	return c.Intent.Equal(other.Intent)
}
