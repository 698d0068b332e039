package bfs

import (
	"sort"

	"github.com/katalvlaran/roadmap/core"
)

// Components partitions the admitted vertices of g into connected components
// by running BFS from every admitted vertex not yet assigned.
// Components are ordered by their smallest vertex and members ascend.
// A nil graph has no components.
// Complexity: O(V + E).
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, nil
	}

	o := newOptions(opts...)
	seen := make(map[int]bool)
	var out [][]int
	for s := 0; s < g.VertexCount(); s++ {
		if seen[s] || !o.keep(s) {
			continue
		}
		members, err := walk(g, s, o, seen)
		if err != nil {
			return out, err
		}
		sort.Ints(members)
		out = append(out, members)
	}

	return out, nil
}

// Isolated returns, in ascending order, the admitted vertices with no edge
// to another admitted vertex.
func Isolated(g *core.Graph, opts ...Option) ([]int, error) {
	comps, err := Components(g, opts...)
	if err != nil {
		return nil, err
	}

	var out []int
	for _, c := range comps {
		if len(c) == 1 {
			out = append(out, c[0])
		}
	}

	return out, nil
}
