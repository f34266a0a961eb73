package lattice

// findBottom returns the node with no incoming covering edge: the unique
// minimum of the lattice order.
func (l *ConceptLattice) findBottom() (string, error) {
	hasIncoming := make(map[string]bool)
	for _, e := range l.g.Edges() {
		hasIncoming[e.To] = true
	}
	for _, n := range l.Nodes() {
		if !hasIncoming[n.ID] {
			return n.ID, nil
		}
	}

	return "", ErrConceptNotFound
}

// findTop returns the node with no outgoing covering edge: the unique
// maximum of the lattice order.
func (l *ConceptLattice) findTop() (string, error) {
	hasOutgoing := make(map[string]bool)
	for _, e := range l.g.Edges() {
		hasOutgoing[e.From] = true
	}
	for _, n := range l.Nodes() {
		if !hasOutgoing[n.ID] {
			return n.ID, nil
		}
	}

	return "", ErrConceptNotFound
}

// Iceberg keeps every concept whose extent is at least threshold of the
// bottom concept's extent (spec §4.8), preserves induced edges, and — if
// the original top did not survive the cut — re-adds it as a sentinel,
// wiring every sink newly exposed by the cut up to it.
func (l *ConceptLattice) Iceberg(threshold float64) (*ConceptLattice, error) {
	bottomID, err := l.findBottom()
	if err != nil {
		return nil, err
	}
	bottomConcept, err := l.Concept(bottomID)
	if err != nil {
		return nil, err
	}
	bottomSize := bottomConcept.Extent.Len()

	topID, err := l.findTop()
	if err != nil {
		return nil, err
	}
	topConcept, err := l.Concept(topID)
	if err != nil {
		return nil, err
	}

	out := New()
	idMap := make(map[string]string, l.NodeCount())
	for _, n := range l.Nodes() {
		if fraction(n.Payload.Extent.Len(), bottomSize) < threshold {
			continue
		}
		newID, _ := out.AddConcept(n.Payload)
		idMap[n.ID] = newID
	}

	for _, e := range l.g.Edges() {
		newFrom, okFrom := idMap[e.From]
		newTo, okTo := idMap[e.To]
		if okFrom && okTo {
			_ = out.AddCover(newFrom, newTo)
		}
	}

	topNewID, topPresent := idMap[topID]
	if !topPresent {
		topNewID, _ = out.AddConcept(topConcept)
	}

	hasOutgoing := make(map[string]bool)
	for _, e := range out.g.Edges() {
		hasOutgoing[e.From] = true
	}
	for _, n := range out.Nodes() {
		if n.ID == topNewID || hasOutgoing[n.ID] {
			continue
		}
		_ = out.AddCover(n.ID, topNewID)
	}

	return out, nil
}

func fraction(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}

	return float64(numerator) / float64(denominator)
}
