package core

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"
)

// AddEdge connects from and to with an undirected edge of the given weight
// and returns the new edge ID.
//
// Steps:
//  1. Validate weight (ErrBadWeight) and loop (ErrLoopNotAllowed).
//  2. Check both endpoints exist (ErrVertexNotFound).
//  3. Lock muEdgeAdj, reject an existing pair (ErrMultiEdgeNotAllowed).
//  4. Generate the ID atomically, store, mirror adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight float64) (uint64, error) {
	// 1) Input validation
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return 0, fmt.Errorf("edge %d-%d weight %v: %w", from, to, weight, ErrBadWeight)
	}
	if from == to {
		return 0, fmt.Errorf("edge %d-%d: %w", from, to, ErrLoopNotAllowed)
	}

	// 2) Endpoints
	g.muVert.RLock()
	ok := g.hasVertexLocked(from) && g.hasVertexLocked(to)
	g.muVert.RUnlock()
	if !ok {
		return 0, fmt.Errorf("edge %d-%d: %w", from, to, ErrVertexNotFound)
	}

	// 3) Insert under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjacency[from][to]; dup {
		return 0, fmt.Errorf("edge %d-%d: %w", from, to, ErrMultiEdgeNotAllowed)
	}

	// 4) Store and link both directions
	eid := atomic.AddUint64(&g.nextEdgeID, 1)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.link(from, to, eid)
	g.link(to, from, eid)

	return eid, nil
}

func (g *Graph) link(u, v int, eid uint64) {
	inner, ok := g.adjacency[u]
	if !ok {
		inner = make(map[int]uint64)
		g.adjacency[u] = inner
	}
	inner[v] = eid
}

// HasEdge reports whether u and v are connected, in either argument order.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// Edge returns the edge between u and v, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) Edge(u, v int) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.adjacency[u][v]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// Edges returns all edges sorted by Edge.ID ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
