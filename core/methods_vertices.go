package core

import "github.com/katalvlaran/roadmap/geometry"

// AddVertex appends a vertex at p and returns its index.
// Indices start at 0 and increase by one per call.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(p geometry.Point) int {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	id := len(g.vertices)
	g.vertices = append(g.vertices, Vertex{ID: id, Pos: p})

	return id
}

// HasVertex reports whether id names a vertex.
func (g *Graph) HasVertex(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.hasVertexLocked(id)
}

func (g *Graph) hasVertexLocked(id int) bool {
	return id >= 0 && id < len(g.vertices)
}

// Vertex returns the vertex with index id, or ErrVertexNotFound.
func (g *Graph) Vertex(id int) (Vertex, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if !g.hasVertexLocked(id) {
		return Vertex{}, ErrVertexNotFound
	}

	return g.vertices[id], nil
}

// Vertices returns a copy of all vertices ordered by index.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return append([]Vertex(nil), g.vertices...)
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
