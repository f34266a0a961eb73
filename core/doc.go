// Package core defines the generic arena-backed directed graph that backs
// both the dependency graph and the concept lattice: Node, Edge, Graph, and
// the sentinel errors shared by every graph-shaped structure in this module.
//
// Nodes and edges live in a flat arena addressed by small integer indices
// (Node.Index), not by pointer, so that higher layers (lattice.ConceptLattice,
// depgraph.Graph) can iterate deterministically and never form
// reference cycles. A Graph is generic over a node payload N and an edge
// payload E: the dependency graph of spec §4.6 instantiates E as an
// antichain of element subsets, the Hasse diagram of spec §4.7 instantiates N
// as a Concept and leaves E as struct{}.
//
// Every mutation is guarded by a pair of sync.RWMutex (muNode for the node
// arena, muEdge for edges and adjacency), mirroring the teacher library's
// split-lock discipline: vertex bootstrap happens under muNode, adjacency
// bookkeeping under muEdge, and lock order is always muNode before muEdge.
package core
