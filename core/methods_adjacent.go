package core

import "sort"

// Neighbors returns the edges incident to id sorted by Edge.ID.
// Returns ErrVertexNotFound for an unknown id.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(id int) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	inner := g.adjacency[id]
	out := make([]*Edge, 0, len(inner))
	for _, eid := range inner {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the indices adjacent to id in ascending order.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	inner := g.adjacency[id]
	out := make([]int, 0, len(inner))
	for v := range inner {
		out = append(out, v)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}
