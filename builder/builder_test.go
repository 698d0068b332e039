package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmap/builder"
	"github.com/katalvlaran/roadmap/geometry"
)

// overlaps reports whether the bounding boxes of a and b touch.
func overlaps(a, b geometry.Obstacle) bool {
	alo, ahi := a.Bounds()
	blo, bhi := b.Bounds()
	return alo.X <= bhi.X && blo.X <= ahi.X && alo.Y <= bhi.Y && blo.Y <= ahi.Y
}

func requireDisjoint(t *testing.T, obs []geometry.Obstacle) {
	t.Helper()
	for i := range obs {
		for j := i + 1; j < len(obs); j++ {
			require.False(t, overlaps(obs[i], obs[j]), "obstacles %d and %d overlap", i, j)
		}
	}
}

func TestRandomRects(t *testing.T) {
	const half = 10.0
	obs, err := builder.Generate(half, []builder.BuilderOption{builder.WithSeed(1)},
		builder.RandomRects(8, 3, 0.25))
	require.NoError(t, err)
	require.Len(t, obs, 8)
	requireDisjoint(t, obs)

	for _, ob := range obs {
		r, ok := ob.(*geometry.Rect)
		require.True(t, ok)
		assert.Equal(t, 0.25, r.Pad)
		assert.GreaterOrEqual(t, r.Corner.X, -half)
		assert.Less(t, r.Corner.X, half-3)
		assert.LessOrEqual(t, r.Width, 3.0)
		assert.LessOrEqual(t, r.Corner.X+r.Width, half)
		assert.LessOrEqual(t, r.Corner.Y+r.Height, half)
	}
}

func TestRandomDisks(t *testing.T) {
	const half = 10.0
	obs, err := builder.Generate(half, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(5)))},
		builder.RandomDisks(6, 0.5, 1.5))
	require.NoError(t, err)
	require.Len(t, obs, 6)
	requireDisjoint(t, obs)

	for _, ob := range obs {
		c, ok := ob.(*geometry.Circle)
		require.True(t, ok)
		assert.GreaterOrEqual(t, c.Radius, 0.5)
		assert.LessOrEqual(t, c.Radius, 1.5)
		lo, hi := c.Bounds()
		assert.GreaterOrEqual(t, lo.X, -half)
		assert.LessOrEqual(t, hi.Y, half)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	gen := func() []geometry.Obstacle {
		obs, err := builder.Generate(10, []builder.BuilderOption{builder.WithSeed(42)},
			builder.HorizontalWall(0, 1), builder.RandomRects(4, 2, 0.1), builder.RandomDisks(3, 0.3, 0.8))
		require.NoError(t, err)
		return obs
	}
	assert.Equal(t, gen(), gen())
}

func TestHorizontalWall(t *testing.T) {
	obs, err := builder.Generate(10, nil, builder.HorizontalWall(2, 1))
	require.NoError(t, err)
	require.Len(t, obs, 1)

	lo, hi := obs[0].Bounds()
	assert.Equal(t, geometry.Pt(-10, 1.5), lo)
	assert.Equal(t, geometry.Pt(10, 2.5), hi)

	_, err = builder.Generate(10, nil, builder.HorizontalWall(0, 1), builder.HorizontalWall(0.5, 1))
	assert.ErrorIs(t, err, builder.ErrConstructFailed, "second wall overlaps the first")
}

func TestGenerate_Errors(t *testing.T) {
	seed := []builder.BuilderOption{builder.WithSeed(1)}
	cases := []struct {
		name string
		half float64
		opts []builder.BuilderOption
		cons builder.Constructor
		want error
	}{
		{"BadHalf", 0, seed, builder.HorizontalWall(0, 1), builder.ErrBadSize},
		{"NilConstructor", 10, seed, nil, builder.ErrConstructFailed},
		{"RectsZeroCount", 10, seed, builder.RandomRects(0, 2, 0), builder.ErrTooFewObstacles},
		{"RectsTooLarge", 10, seed, builder.RandomRects(1, 20, 0), builder.ErrBadSize},
		{"RectsNegativePad", 10, seed, builder.RandomRects(1, 2, -1), builder.ErrBadSize},
		{"RectsNoRand", 10, nil, builder.RandomRects(1, 2, 0), builder.ErrNeedRandSource},
		{"DisksZeroCount", 10, seed, builder.RandomDisks(0, 1, 2), builder.ErrTooFewObstacles},
		{"DisksInverted", 10, seed, builder.RandomDisks(1, 2, 1), builder.ErrBadSize},
		{"DisksNoRand", 10, nil, builder.RandomDisks(1, 1, 2), builder.ErrNeedRandSource},
		{"WallOutside", 10, nil, builder.HorizontalWall(11, 1), builder.ErrBadSize},
		{"WallThin", 10, nil, builder.HorizontalWall(0, 0), builder.ErrBadSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Generate(tc.half, tc.opts, tc.cons)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGenerate_AttemptBudget(t *testing.T) {
	// A full-height wall leaves no room for a disk of radius >= 4 in a 5-world.
	_, err := builder.Generate(5,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithMaxAttempts(20)},
		builder.HorizontalWall(0, 10), builder.RandomDisks(1, 4, 4.5))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithMaxAttempts(0) })
}

func TestBuildWorkspace(t *testing.T) {
	ws, err := builder.BuildWorkspace(10, []builder.BuilderOption{builder.WithSeed(9)}, builder.RandomRects(5, 3, 0.2))
	require.NoError(t, err)
	assert.Len(t, ws.Obstacles(), 5)
	assert.Equal(t, 10.0, ws.HalfExtent())
}
