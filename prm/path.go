package prm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/aukilabs/go-tooling/pkg/logs"

	"github.com/katalvlaran/roadmap/dijkstra"
	"github.com/katalvlaran/roadmap/geometry"
	"github.com/katalvlaran/roadmap/neighbor"
)

// Path returns the waypoints of a shortest roadmap path from start to end,
// both endpoints included.
//
// Steps:
//  1. Require a sampled roadmap (ErrEmptyNeighborIndex).
//  2. Validate both endpoints against the workspace (ErrInvalidQueryPoint).
//  3. Insert start, then end, as new nodes connected like sampled ones with
//     radius min(QueryRadius, clearance); a zero QueryRadius means the final
//     batch radius. end may also connect straight to start.
//  4. Run Dijkstra from start to end (ErrNoPathFound when unreachable).
//
// Query nodes stay in the graph after the call but are not indexed, so later
// queries never connect to them directly.
// Complexity: O(log N + k·|obstacles|) to insert plus O((V+E) log V) to search.
func (p *Planner) Path(ctx context.Context, start, end geometry.Point) (path []geometry.Point, err error) {
	began := time.Now()
	defer func() {
		p.metrics.instrumentQuery(queryResult(err), began)
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	if p.indexEmpty() {
		return nil, ErrEmptyNeighborIndex
	}
	if !p.ws.PointValid(start) {
		return nil, fmt.Errorf("prm: start %v: %w", start, ErrInvalidQueryPoint)
	}
	if !p.ws.PointValid(end) {
		return nil, fmt.Errorf("prm: end %v: %w", end, ErrInvalidQueryPoint)
	}

	r := p.queryRadius()

	sID := p.graph.AddVertex(start)
	if _, _, err := p.connectNode(sID, start, math.Min(r, p.ws.Clearance(start)), nil); err != nil {
		return nil, err
	}

	eID := p.graph.AddVertex(end)
	rEnd := math.Min(r, p.ws.Clearance(end))
	var extra []neighbor.Neighbor
	if d := end.Dist(start); d <= rEnd {
		extra = append(extra, neighbor.Neighbor{Index: sID, Dist: d})
	}
	if _, _, err := p.connectNode(eID, end, rEnd, extra); err != nil {
		return nil, err
	}

	ids, cost, err := dijkstra.ShortestPath(ctx, p.graph, sID, eID)
	if err != nil {
		if errors.Is(err, dijkstra.ErrNoPath) {
			return nil, fmt.Errorf("prm: %v to %v: %w", start, end, ErrNoPathFound)
		}
		return nil, fmt.Errorf("prm: searching roadmap: %w", err)
	}

	path = make([]geometry.Point, len(ids))
	for i, id := range ids {
		v, err := p.graph.Vertex(id)
		if err != nil {
			return nil, fmt.Errorf("prm: path vertex: %w", err)
		}
		path[i] = v.Pos
	}
	p.lastPath = path

	logs.WithTag("start", start).
		WithTag("end", end).
		WithTag("waypoints", len(path)).
		WithTag("length", cost).
		Debug("roadmap path found")

	return append([]geometry.Point(nil), path...), nil
}

// PathLength returns the total Euclidean length of the polyline through points.
func PathLength(points []geometry.Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i-1].Dist(points[i])
	}

	return total
}

func (p *Planner) queryRadius() float64 {
	if p.cfg.QueryRadius > 0 {
		return p.cfg.QueryRadius
	}

	return p.radii[len(p.radii)-1]
}

func queryResult(err error) string {
	switch {
	case err == nil:
		return resultFound
	case errors.Is(err, ErrNoPathFound):
		return resultNoPath
	case errors.Is(err, ErrInvalidQueryPoint):
		return resultInvalid
	default:
		return resultError
	}
}
