// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// roadmap graph (core.Graph) with non-negative float64 edge weights.
//
// Overview:
//
//   - Dijkstra computes minimum-cost distances from one source vertex to every
//     reachable vertex using a min-heap with lazy decrease-key.
//   - ShortestPath is the point-to-point form used by path queries: it stops
//     as soon as the target is finalized and returns the vertex sequence.
//
// Determinism:
//
//	Heap entries with equal distance pop in the order they were pushed. Every
//	entry carries a push sequence number, so two runs over the same graph
//	always return the same path even when several shortest paths exist.
//
// Cancellation:
//
//	The context (WithContext) is checked on every heap pop; a cancelled run
//	returns ctx.Err() wrapped with the vertex being expanded.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold one entry per relaxation.
//
// Errors (sentinel):
//
//   - ErrNoSource:       Source was not given.
//   - ErrNilGraph:       graph pointer is nil.
//   - ErrVertexNotFound: source or target is not in the graph.
//   - ErrNegativeWeight: an edge with negative weight was found.
//   - ErrBadMaxDistance: WithMaxDistance got a negative value (panic).
//   - ErrNoPath:         ShortestPath target is unreachable.
//
// Example usage:
//
//	path, cost, err := dijkstra.ShortestPath(ctx, g, start, end)
//	if errors.Is(err, dijkstra.ErrNoPath) {
//	    // start and end are in different components
//	}
package dijkstra
