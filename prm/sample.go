package prm

import (
	"context"
	"fmt"
	"math"

	"github.com/aukilabs/go-tooling/pkg/logs"

	"github.com/katalvlaran/roadmap/geometry"
	"github.com/katalvlaran/roadmap/neighbor"
)

// ConnectionRadius returns r0·(1 − log2(i/batches + 1)), the connection
// radius of batch i. It decreases strictly from r0 at i = 0 and stays
// positive for every i < batches.
func ConnectionRadius(r0 float64, i, batches int) float64 {
	return r0 * (1 - math.Log2(float64(i)/float64(batches)+1))
}

// Sample draws Batches·BatchSize valid points with rejection sampling and
// builds the neighbor index once, after the final batch.
//
// Returns ErrAlreadySampled on a second call, a wrapped ErrWorldSaturated
// when a sample exhausts MaxSampleAttempts, or ctx.Err() between samples.
// On failure the nodes sampled so far stay in the graph but no index is built.
// Complexity: O(B·S·(attempts·(depth + |obstacles|))) plus O(N log N) for the index.
func (p *Planner) Sample(ctx context.Context) error {
	if len(p.points) > 0 {
		return ErrAlreadySampled
	}
	if ctx == nil {
		ctx = context.Background()
	}

	for b := 0; b < p.cfg.Batches; b++ {
		r := ConnectionRadius(p.cfg.Radius, b, p.cfg.Batches)
		p.radii = append(p.radii, r)

		rejected := 0
		for s := 0; s < p.cfg.BatchSize; s++ {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("prm: sampling batch %d: %w", b, err)
			}
			pt, attempts, err := p.ws.Sample(p.rng, p.cfg.MaxSampleAttempts)
			if err != nil {
				return fmt.Errorf("prm: sampling batch %d node %d: %w", b, len(p.points), err)
			}
			p.addNode(pt)
			p.metrics.instrumentSample(attempts)
			rejected += attempts - 1
		}

		logs.WithTag("batch", b).
			WithTag("radius", r).
			WithTag("nodes", len(p.points)).
			WithTag("rejected", rejected).
			Debug("roadmap batch sampled")
	}

	p.index = neighbor.Build(p.points)

	return nil
}

func (p *Planner) addNode(pt geometry.Point) int {
	p.points = append(p.points, pt)

	return p.graph.AddVertex(pt)
}

// radiusOf returns the connection radius of the batch that sampled node id.
func (p *Planner) radiusOf(id int) float64 {
	return p.radii[id/p.cfg.BatchSize]
}
