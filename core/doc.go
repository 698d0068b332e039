// Package core defines the roadmap graph: an undirected, float-weighted graph
// whose vertices are planar waypoints identified by dense integer indices.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are appended with AddVertex and receive indices 0,1,2,… that
//     never change. Vertices are never removed.
//   - Edges are undirected; AddEdge(u,v) is visible from both u and v.
//   - No self-loops (ErrLoopNotAllowed) and no parallel edges
//     (ErrMultiEdgeNotAllowed).
//   - Weights are finite and non-negative (ErrBadWeight).
//   - Edge IDs come from an atomic counter and never repeat.
//
// Concurrency:
//
//	Two sync.RWMutex guard the graph: muVert for the vertex store and
//	muEdgeAdj for the edge catalog and adjacency. Concurrent AddEdge calls
//	are serialized, so two writers can never insert the same undirected pair.
//
// Determinism:
//
//	Vertices() is ordered by index, Edges() and Neighbors() by edge ID,
//	NeighborIDs() by vertex index.
//
// Core Methods:
//
//	AddVertex(p geometry.Point) int                    // O(1) amortized
//	AddEdge(from, to int, w float64) (uint64, error)   // O(1)
//	HasVertex(id int) bool                             // O(1)
//	HasEdge(u, v int) bool                             // O(1)
//	Edge(u, v int) (*Edge, error)                      // O(1)
//	Neighbors(id int) ([]*Edge, error)                 // O(d·log d)
//	NeighborIDs(id int) ([]int, error)                 // O(d·log d)
//	Degree(id int) (int, error)                        // O(1)
//	Vertices() []Vertex, Edges() []*Edge               // O(V), O(E·log E)
//	Clone() *Graph                                     // O(V+E)
//	Stats() Stats                                      // O(V+E)
//
// Errors:
//
//	ErrVertexNotFound      - index does not name a vertex.
//	ErrEdgeNotFound        - no edge between the two vertices.
//	ErrBadWeight           - negative, NaN or infinite weight.
//	ErrLoopNotAllowed      - from == to.
//	ErrMultiEdgeNotAllowed - the pair is already connected.
package core
