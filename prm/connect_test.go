package prm

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmap/geometry"
	"github.com/katalvlaran/roadmap/neighbor"
	"github.com/katalvlaran/roadmap/workspace"
)

// seeded returns a planner over an empty world whose nodes are pts instead
// of random samples, all in one batch.
func seeded(t *testing.T, degree int, pts ...geometry.Point) *Planner {
	t.Helper()
	ws, err := workspace.New(10, nil)
	require.NoError(t, err)
	p, err := New(ws, rand.New(rand.NewSource(1)),
		WithBatches(1),
		WithBatchSize(len(pts)),
		WithRadius(5),
		WithMaxDegree(degree),
	)
	require.NoError(t, err)

	p.radii = append(p.radii, ConnectionRadius(p.cfg.Radius, 0, 1))
	for _, pt := range pts {
		p.addNode(pt)
	}
	p.index = neighbor.Build(p.points)

	return p
}

func edgesFrom(p *Planner, id int) []int {
	var out []int
	for _, e := range p.graph.Edges() {
		if e.From == id {
			out = append(out, e.To)
		}
	}

	return out
}

func TestConnect_DistanceTieBreaksByIndex(t *testing.T) {
	p := seeded(t, 3,
		geometry.Pt(0, 0),  // 0
		geometry.Pt(0, -2), // 1, tied at 2
		geometry.Pt(-2, 0), // 2, tied at 2
		geometry.Pt(2, 0),  // 3, tied at 2
		geometry.Pt(0, 2),  // 4, tied at 2
		geometry.Pt(1, 0),  // 5, nearest
		geometry.Pt(6, 6),  // 6, beyond the radius
	)
	_, err := p.Connect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{5, 1, 2}, edgesFrom(p, 0))
}

func TestConnect_SkipsExistingNeighbors(t *testing.T) {
	p := seeded(t, 1,
		geometry.Pt(0, 0), // 0
		geometry.Pt(1, 0), // 1
		geometry.Pt(3, 0), // 2
	)
	rep, err := p.Connect(context.Background())
	require.NoError(t, err)

	// 0 takes 1; 1 already has 0 and takes 2 instead; 2 already has 1 and
	// takes 0, its next nearest.
	assert.Equal(t, []int{1}, edgesFrom(p, 0))
	assert.Equal(t, []int{2}, edgesFrom(p, 1))
	assert.Equal(t, []int{0}, edgesFrom(p, 2))
	assert.Equal(t, 3, rep.EdgesAdded)
	assert.Empty(t, rep.Isolated)
}
