package prm

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"

	"github.com/katalvlaran/roadmap/bfs"
	"github.com/katalvlaran/roadmap/geometry"
	"github.com/katalvlaran/roadmap/neighbor"
)

// ConnectReport summarizes one connection pass.
type ConnectReport struct {
	Nodes         int   // sampled nodes visited
	EdgesAdded    int   // edges created by this pass
	EdgesRejected int   // candidate segments that hit an obstacle
	Isolated      []int // sampled nodes with no edge to another sampled node, ascending
}

// Connect links every sampled node to its nearest valid neighbors.
//
// For node n of batch b the candidates are the indexed nodes within
// min(r_b, clearance(n)), nearest first with ties broken by lower index.
// Candidates already adjacent to n are skipped; the rest are collision
// checked and the first MaxDegree valid ones become edges weighted by
// Euclidean length. Isolated nodes are logged and reported, never fatal.
//
// Returns ErrEmptyNeighborIndex before Sample, or ctx.Err() between nodes.
// Complexity: O(N·(log N + k·|obstacles|)) for k candidates per node.
func (p *Planner) Connect(ctx context.Context) (ConnectReport, error) {
	var rep ConnectReport
	if p.indexEmpty() {
		return rep, ErrEmptyNeighborIndex
	}
	if ctx == nil {
		ctx = context.Background()
	}

	for id, pt := range p.points {
		if err := ctx.Err(); err != nil {
			return rep, fmt.Errorf("prm: connecting node %d: %w", id, err)
		}
		r := math.Min(p.radiusOf(id), p.ws.Clearance(pt))
		added, rejected, err := p.connectNode(id, pt, r, nil)
		if err != nil {
			return rep, err
		}
		rep.Nodes++
		rep.EdgesAdded += added
		rep.EdgesRejected += rejected
	}
	p.metrics.instrumentEdges(rep.EdgesAdded, rep.EdgesRejected)

	isolated, err := bfs.Isolated(p.graph, bfs.WithContext(ctx), bfs.WithVertexFilter(p.isSampled))
	if err != nil {
		return rep, fmt.Errorf("prm: isolated nodes: %w", err)
	}
	rep.Isolated = isolated
	p.metrics.instrumentIsolated(len(rep.Isolated))

	logs.WithTag("nodes", rep.Nodes).
		WithTag("edges_added", rep.EdgesAdded).
		WithTag("edges_rejected", rep.EdgesRejected).
		Info("roadmap connected")
	if len(rep.Isolated) > 0 {
		logs.Warn(errors.New("roadmap has isolated nodes").
			WithTag("count", len(rep.Isolated)).
			WithTag("first", rep.Isolated[0]))
	}

	return rep, nil
}

// connectNode adds up to MaxDegree validated edges from id to indexed nodes
// within r. extra holds candidates outside the index (the start node of a
// query); they are ranked together with the indexed ones.
func (p *Planner) connectNode(id int, pt geometry.Point, r float64, extra []neighbor.Neighbor) (int, int, error) {
	cands, err := p.index.Radius(pt, r)
	if err != nil {
		return 0, 0, fmt.Errorf("prm: neighbors of %d: %w", id, err)
	}
	if len(extra) > 0 {
		cands = append(cands, extra...)
		sort.SliceStable(cands, func(i, j int) bool {
			if cands[i].Dist != cands[j].Dist {
				return cands[i].Dist < cands[j].Dist
			}
			return cands[i].Index < cands[j].Index
		})
	}

	added, rejected := 0, 0
	for _, c := range cands {
		if added == p.cfg.MaxDegree {
			break
		}
		if c.Index == id || p.graph.HasEdge(id, c.Index) {
			continue
		}
		other, err := p.graph.Vertex(c.Index)
		if err != nil {
			return added, rejected, fmt.Errorf("prm: candidate of %d: %w", id, err)
		}
		if !p.ws.SegmentValid(geometry.Seg(pt, other.Pos)) {
			rejected++
			continue
		}
		if _, err := p.graph.AddEdge(id, c.Index, c.Dist); err != nil {
			return added, rejected, fmt.Errorf("prm: linking %d: %w", id, err)
		}
		added++
	}

	return added, rejected, nil
}
