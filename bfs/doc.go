// Package bfs provides breadth-first traversal and connected components
// over the roadmap graph (core.Graph).
//
// What
//
//   - BFS returns the vertices reachable from a start vertex in visit order.
//     Edge weights are ignored.
//   - WithVertexFilter restricts the traversal to a vertex subset; excluded
//     vertices are neither visited nor crossed.
//   - Components partitions the admitted vertices into connected components;
//     Isolated lists the singleton ones.
//
// Determinism
//
//	core.NeighborIDs returns neighbors in ascending index order and BFS
//	enqueues them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist or is filtered out.
//   - ErrNeighbors            if core.NeighborIDs fails for any vertex.
//   - The context error when the traversal is cancelled.
package bfs
