// Package dfs implements depth‑first search traversal and biconnectivity
// testing on a core.Graph, supporting both directed and undirected graphs
// where appropriate.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports:
//   - Pre‑order and post‑order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - IsBiconnected: Tarjan low-link articulation-point sweep over an
//     undirected graph, used by the edge-contraction driver to reject a
//     contraction candidate that would disconnect the graph.
//
// Why:
//   - Build and analyze dependency graphs (build systems, package managers, task schedulers)
//   - Reject edge-contraction candidates that would break biconnectivity
//   - Provide a foundation for connectivity and pathfinding
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation-state constants
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, hooks, MaxDepth, FilterNeighbor
//   - DFSResult: collects post‑order, Depth, Parent, Visited maps
//
// Complexity:
//
//   - DFS:            Time O(V+E), Memory O(V)
//   - IsBiconnected:  Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit or OnExit
//
// Functions:
//
//   - DFS(g \*core.Graph, startID string, opts ...Option) (\*DFSResult, error)
//     perform depth‑first traversal from startID
//   - IsBiconnected(g \*core.Graph) bool
//     report whether g is connected with no articulation vertex
//   - DefaultOptions(), WithContext(), WithOnVisit(), WithOnExit(),
//     WithMaxDepth(), WithFilterNeighbor()
package dfs
