package bfs

import (
	"fmt"

	"github.com/katalvlaran/roadmap/core"
)

// walker holds the mutable state of one traversal.
type walker struct {
	graph   *core.Graph
	opts    options
	queue   []int
	visited map[int]bool
	order   []int
}

// BFS returns the admitted vertices reachable from start, in visit order.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors or the context error.
func BFS(g *core.Graph, start int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return walk(g, start, newOptions(opts...), nil)
}

// walk runs one traversal. seen, when non-nil, is shared across calls so
// Components can skip vertices already assigned.
func walk(g *core.Graph, start int, o options, seen map[int]bool) ([]int, error) {
	if !g.HasVertex(start) || !o.keep(start) {
		return nil, fmt.Errorf("start %d: %w", start, ErrStartVertexNotFound)
	}
	if seen == nil {
		seen = make(map[int]bool)
	}

	w := &walker{graph: g, opts: o, visited: seen}
	w.enqueue(start)

	return w.order, w.loop()
}

func (w *walker) enqueue(id int) {
	w.visited[id] = true
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.ctx.Err(); err != nil {
			return err
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		w.order = append(w.order, id)

		neighbors, err := w.graph.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("%w: neighbors of %d: %v", ErrNeighbors, id, err)
		}
		for _, nbr := range neighbors {
			if w.visited[nbr] || !w.opts.keep(nbr) {
				continue
			}
			w.enqueue(nbr)
		}
	}

	return nil
}
