// Package dfs provides the traversal-based operations of the directed-graph
// utility (spec.md §6/C4): topological sort, strongly connected components,
// transitive closure, and transitive reduction, all generic over
// core.Graph[N, E].
//
// TopologicalSort uses a three-color (White/Gray/Black) DFS state machine;
// StronglyConnectedComponents is Tarjan's DFS over discovery indices,
// low-links and an on-stack set. This pairing matters for diagram.Generate (spec §4.7):
// the precedence graph of a non-reduced closure system can contain cycles, so
// immediate-successor computation must contract to an SCC-DAG rather than
// rely on a topological sort, which TopologicalSort correctly refuses
// (ErrCycleDetected) in that case.
package dfs
