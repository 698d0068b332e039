package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmap/bfs"
	"github.com/katalvlaran/roadmap/core"
	"github.com/katalvlaran/roadmap/geometry"
)

// build returns a graph with n vertices and unit-weight edges.
func build(t *testing.T, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddVertex(geometry.Pt(float64(i), 0))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}
	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := build(t, 2)
	_, err = bfs.BFS(g, 3)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, 1, bfs.WithVertexFilter(func(id int) bool { return id == 0 }))
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound, "filtered start")
}

func TestBFS_CycleOrder(t *testing.T) {
	// 0-1-2-3-0
	g := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	order, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, order)
}

func TestBFS_VertexFilter(t *testing.T) {
	// chain 0-1-2-3-4
	g := build(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4})

	order, err := bfs.BFS(g, 0, bfs.WithVertexFilter(func(id int) bool { return id != 3 }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)
}

func TestBFS_Cancelled(t *testing.T) {
	g := build(t, 2, [2]int{0, 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = bfs.Components(g, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = bfs.Isolated(g, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	comps, err := bfs.Components(nil)
	require.NoError(t, err)
	assert.Nil(t, comps)
	comps, err = bfs.Components(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, comps)

	// {0,2,4} {1,5} {3}
	g := build(t, 6, [2]int{4, 0}, [2]int{2, 4}, [2]int{5, 1})
	comps, err = bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 2, 4}, {1, 5}, {3}}, comps)

	iso, err := bfs.Isolated(g)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, iso)
}

// TestComponents_FilterSplitsBridge checks that a filtered-out vertex does
// not join the components on either side of it.
func TestComponents_FilterSplitsBridge(t *testing.T) {
	// 0-1-4-2-3 where 4 is the bridge
	g := build(t, 5, [2]int{0, 1}, [2]int{1, 4}, [2]int{4, 2}, [2]int{2, 3})
	below4 := bfs.WithVertexFilter(func(id int) bool { return id < 4 })

	comps, err := bfs.Components(g, below4)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, comps)

	// 5 is linked only to the excluded bridge.
	g.AddVertex(geometry.Pt(5, 0))
	_, err = g.AddEdge(5, 4, 1)
	require.NoError(t, err)
	iso, err := bfs.Isolated(g, bfs.WithVertexFilter(func(id int) bool { return id != 4 }))
	require.NoError(t, err)
	assert.Equal(t, []int{5}, iso)
}
