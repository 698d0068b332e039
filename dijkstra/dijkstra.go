package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/roadmap/core"
)

// Dijkstra computes shortest distances from Options.Source to every
// vertex of g.
//
// Returns:
//
//   - dist: vertex index → minimum distance (+Inf if unreachable or beyond MaxDistance).
//   - prev: predecessor map when WithReturnPath is set, nil otherwise.
//     prev[v] == NoPredecessor for the source and unreachable vertices.
//   - err:  a sentinel error on invalid input, or the context error.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source and Target, if set, must exist (ErrVertexNotFound).
//  4. No edge may have a negative weight (ErrNegativeWeight).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (map[int]float64, map[int]int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if !cfg.hasSource {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("source %d: %w", cfg.Source, ErrVertexNotFound)
	}
	if cfg.hasTarget && !g.HasVertex(cfg.Target) {
		return nil, nil, fmt.Errorf("target %d: %w", cfg.Target, ErrVertexNotFound)
	}

	// 3) Pre-scan for negative weights
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d-%d weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Prepare state
	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]float64, n),
		visited: make(map[int]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make(map[int]int, n)
	}

	// 5) Run
	r.init(n)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the vertex sequence from → to of least total weight
// and its cost. It stops as soon as to is finalized.
// Returns ErrNoPath when to is unreachable.
func ShortestPath(ctx context.Context, g *core.Graph, from, to int) ([]int, float64, error) {
	dist, prev, err := Dijkstra(g,
		Source(from),
		WithTarget(to),
		WithReturnPath(),
		WithContext(ctx),
	)
	if err != nil {
		return nil, 0, err
	}

	cost := dist[to]
	if math.IsInf(cost, 1) {
		return nil, 0, fmt.Errorf("%d → %d: %w", from, to, ErrNoPath)
	}

	// Walk predecessors back to the source, then reverse.
	path := []int{to}
	for v := to; v != from; {
		v = prev[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, cost, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[int]float64
	prev    map[int]int
	visited map[int]bool
	pq      nodePQ
	seq     uint64 // push counter for tie-breaking
}

// init sets dist[v] = +Inf for every vertex and pushes the source at 0.
func (r *runner) init(n int) {
	for v := 0; v < n; v++ {
		r.dist[v] = math.Inf(1)
		if r.prev != nil {
			r.prev[v] = NoPredecessor
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	r.push(r.options.Source, 0)
}

func (r *runner) push(id int, d float64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
	r.seq++
}

// process pops vertices in distance order until the heap is empty, the
// target is finalized, or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	cfg := r.options
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// 1) Cancellation is checked on every pop.
		if err := cfg.Ctx.Err(); err != nil {
			return fmt.Errorf("dijkstra: expanding %d: %w", u, err)
		}

		// 2) Skip stale entries.
		if r.visited[u] {
			continue
		}

		// 3) Everything left is farther than the cap.
		if d > cfg.MaxDistance {
			break
		}

		// 4) Finalize u.
		r.visited[u] = true
		if cfg.hasTarget && u == cfg.Target {
			break
		}

		// 5) Relax.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the distance of every unvisited neighbor reachable through u.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, e := range neighbors {
		v := e.Other(u)
		if r.visited[v] {
			continue
		}

		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only, so equal-cost alternatives keep the first
		// predecessor found.
		if cur, ok := r.dist[v]; ok && newDist >= cur {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		r.push(v, newDist)
	}

	return nil
}

// nodeItem is a heap entry: a vertex, its tentative distance and push order.
type nodeItem struct {
	id   int
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then seq.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
