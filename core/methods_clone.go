package core

import "sync/atomic"

// Clone returns a deep copy of the graph. Edge IDs and the edge ID counter
// are preserved, so edges added to the clone never collide with the source.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	c := &Graph{
		capacity:   g.capacity,
		nextEdgeID: atomic.LoadUint64(&g.nextEdgeID),
		vertices:   append(make([]Vertex, 0, cap(g.vertices)), g.vertices...),
		edges:      make(map[uint64]*Edge, len(g.edges)),
		adjacency:  make(map[int]map[int]uint64, len(g.adjacency)),
	}
	for eid, e := range g.edges {
		cp := *e
		c.edges[eid] = &cp
	}
	for u, inner := range g.adjacency {
		m := make(map[int]uint64, len(inner))
		for v, eid := range inner {
			m[v] = eid
		}
		c.adjacency[u] = m
	}

	return c
}

// Stats returns vertex/edge counts, total weight and degree extremes.
// An empty graph reports zero for every field.
// Complexity: O(V+E).
func (g *Graph) Stats() Stats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s := Stats{Vertices: len(g.vertices), Edges: len(g.edges)}
	for _, e := range g.edges {
		s.TotalWeight += e.Weight
	}
	for id := range g.vertices {
		d := len(g.adjacency[id])
		if id == 0 || d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
		if d == 0 {
			s.Isolated++
		}
	}

	return s
}
