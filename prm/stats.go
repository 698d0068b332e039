package prm

import (
	"fmt"

	"github.com/katalvlaran/roadmap/bfs"
)

// Stats summarizes the roadmap graph.
//
// Nodes, Edges and TotalLength cover the whole graph, query nodes included.
// Components, LargestComponent and Isolated cover sampled nodes only, so a
// query node never bridges two components of the roadmap itself.
type Stats struct {
	Nodes            int
	Sampled          int
	Edges            int
	Components       int
	LargestComponent int
	Isolated         int
	TotalLength      float64
}

// Stats returns a summary of the current roadmap.
// Complexity: O(V + E).
func (p *Planner) Stats() (Stats, error) {
	gs := p.graph.Stats()
	s := Stats{
		Nodes:       gs.Vertices,
		Sampled:     len(p.points),
		Edges:       gs.Edges,
		TotalLength: gs.TotalWeight,
	}

	comps, err := bfs.Components(p.graph, bfs.WithVertexFilter(p.isSampled))
	if err != nil {
		return s, fmt.Errorf("prm: roadmap components: %w", err)
	}
	s.Components = len(comps)
	for _, c := range comps {
		if len(c) > s.LargestComponent {
			s.LargestComponent = len(c)
		}
		if len(c) == 1 {
			s.Isolated++
		}
	}

	return s, nil
}
