package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmap/core"
	"github.com/katalvlaran/roadmap/geometry"
)

// square builds the 4-cycle 0-1-2-3-0 on the unit square.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithCapacity(4))
	for _, p := range []geometry.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}} {
		g.AddVertex(p)
	}
	for i := 0; i < 4; i++ {
		_, err := g.AddEdge(i, (i+1)%4, 1)
		require.NoError(t, err)
	}
	return g
}

func TestAddVertex_Indices(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, g.AddVertex(geometry.Pt(float64(i), 0)))
	}
	assert.Equal(t, 5, g.VertexCount())
	assert.True(t, g.HasVertex(4))
	assert.False(t, g.HasVertex(5))
	assert.False(t, g.HasVertex(-1))

	v, err := g.Vertex(3)
	require.NoError(t, err)
	assert.Equal(t, core.Vertex{ID: 3, Pos: geometry.Pt(3, 0)}, v)

	_, err = g.Vertex(9)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	vs := g.Vertices()
	require.Len(t, vs, 5)
	for i, v := range vs {
		assert.Equal(t, i, v.ID)
	}
}

func TestAddEdge_Errors(t *testing.T) {
	g := square(t)

	cases := []struct {
		name     string
		from, to int
		w        float64
		want     error
	}{
		{"Loop", 1, 1, 1, core.ErrLoopNotAllowed},
		{"Duplicate", 0, 1, 1, core.ErrMultiEdgeNotAllowed},
		{"DuplicateReversed", 1, 0, 1, core.ErrMultiEdgeNotAllowed},
		{"MissingVertex", 0, 7, 1, core.ErrVertexNotFound},
		{"NegativeWeight", 0, 2, -1, core.ErrBadWeight},
		{"NaNWeight", 0, 2, math.NaN(), core.ErrBadWeight},
		{"InfWeight", 0, 2, math.Inf(1), core.ErrBadWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.AddEdge(tc.from, tc.to, tc.w)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Equal(t, 4, g.EdgeCount(), "failed inserts leave the graph unchanged")
}

func TestEdges_UndirectedAndOrdered(t *testing.T) {
	g := square(t)

	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0))
	assert.False(t, g.HasEdge(0, 2))

	e, err := g.Edge(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, e.From)
	assert.Equal(t, 0, e.To)
	assert.Equal(t, 3, e.Other(0))
	assert.Equal(t, 0, e.Other(3))

	_, err = g.Edge(0, 2)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	edges := g.Edges()
	require.Len(t, edges, 4)
	for i := 1; i < len(edges); i++ {
		assert.Less(t, edges[i-1].ID, edges[i].ID)
	}
}

func TestNeighborsAndDegree(t *testing.T) {
	g := square(t)
	g.AddVertex(geometry.Pt(5, 5))

	ids, err := g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids)

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, 2)
	assert.Less(t, nbs[0].ID, nbs[1].ID)

	d, err := g.Degree(4)
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = g.Neighbors(10)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs(-1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(10)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestClone_Independent(t *testing.T) {
	g := square(t)
	c := g.Clone()

	_, err := c.AddEdge(0, 2, math.Sqrt2)
	require.NoError(t, err)
	assert.False(t, g.HasEdge(0, 2))
	assert.True(t, c.HasEdge(2, 0))

	// IDs continue from the source counter.
	e, err := c.Edge(0, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), e.ID)

	id := c.AddVertex(geometry.Pt(2, 2))
	assert.Equal(t, 4, id)
	assert.Equal(t, 4, g.VertexCount())
}

func TestStats(t *testing.T) {
	assert.Equal(t, core.Stats{}, core.NewGraph().Stats())

	g := square(t)
	g.AddVertex(geometry.Pt(9, 9))
	_, err := g.AddEdge(0, 2, 0.5)
	require.NoError(t, err)

	s := g.Stats()
	assert.Equal(t, 5, s.Vertices)
	assert.Equal(t, 5, s.Edges)
	assert.InDelta(t, 4.5, s.TotalWeight, 1e-12)
	assert.Equal(t, 0, s.MinDegree)
	assert.Equal(t, 3, s.MaxDegree)
	assert.Equal(t, 1, s.Isolated)
}
