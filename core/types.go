package core

import (
	"errors"
	"sync"

	"github.com/katalvlaran/roadmap/geometry"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be finite and non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same vertices.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex is a roadmap waypoint.
type Vertex struct {
	// ID is the dense index assigned by AddVertex.
	ID int

	// Pos is the waypoint coordinate. Immutable once added.
	Pos geometry.Point
}

// Edge is an undirected connection between two vertices.
//
// From is the endpoint passed first to AddEdge; the edge is equally usable
// in both directions.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID uint64

	// From and To are the endpoint vertex indices.
	From, To int

	// Weight is the edge cost, the Euclidean length for roadmap edges.
	Weight float64
}

// Other returns the endpoint opposite to u. u must be one of the endpoints.
func (e *Edge) Other(u int) int {
	if e.From == u {
		return e.To
	}

	return e.From
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex store and adjacency for n vertices.
// Negative n is treated as zero.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Stats summarizes a graph.
type Stats struct {
	Vertices    int
	Edges       int
	TotalWeight float64
	MinDegree   int
	MaxDegree   int
	// Isolated is the number of vertices with no incident edge.
	Isolated int
}

// Graph is the in-memory roadmap graph.
//
// muVert protects vertices; muEdgeAdj protects edges and adjacency.
// Lock order, when both are needed: muVert before muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	capacity int

	nextEdgeID uint64           // atomic edge ID generator
	vertices   []Vertex         // index → Vertex
	edges      map[uint64]*Edge // edge ID → Edge

	// adjacency[u][v] = edge ID; mirrored for both endpoints.
	adjacency map[int]map[int]uint64
}

// NewGraph creates an empty Graph.
// Complexity: O(capacity).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make([]Vertex, 0, g.capacity)
	g.edges = make(map[uint64]*Edge, g.capacity)
	g.adjacency = make(map[int]map[int]uint64, g.capacity)

	return g
}
