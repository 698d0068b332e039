package quadtree_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmap/geometry"
	"github.com/katalvlaran/roadmap/quadtree"
)

func TestNew_BadExtent(t *testing.T) {
	for _, h := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := quadtree.New(h)
		assert.ErrorIs(t, err, quadtree.ErrBadExtent, "half=%v", h)
	}
}

func TestSplit_ChildrenGeometry(t *testing.T) {
	tr, err := quadtree.New(8)
	require.NoError(t, err)

	kids, err := tr.Split(quadtree.RootID)
	require.NoError(t, err)
	assert.Equal(t, 4, tr.LeafCount())

	wantIDs := []int64{1, 2, 3, 4}
	wantCenters := []geometry.Point{{X: -4, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: -4}, {X: -4, Y: -4}}
	var sum geometry.Point
	for i, k := range kids {
		assert.Equal(t, wantIDs[i], k.ID)
		assert.Equal(t, wantCenters[i], k.Center)
		assert.Equal(t, 4.0, k.Half)
		assert.Equal(t, 1, k.Depth)
		assert.True(t, k.IsLeaf())
		sum = sum.Add(k.Center)
	}
	// Symmetric about the parent's center.
	assert.Equal(t, geometry.Point{}, sum)
	assert.False(t, tr.Root().IsLeaf())

	// Second level: splitting 3 (bottom-right) yields 31..34 around (4,-4).
	grand, err := tr.Split(3)
	require.NoError(t, err)
	assert.Equal(t, int64(31), grand[0].ID)
	assert.Equal(t, int64(34), grand[3].ID)
	assert.Equal(t, geometry.Pt(2, -2), grand[0].Center)
	assert.Equal(t, geometry.Pt(6, -6), grand[2].Center)
	for _, g := range grand {
		assert.Equal(t, 2.0, g.Half)
	}
}

func TestSplit_Errors(t *testing.T) {
	tr, err := quadtree.New(1)
	require.NoError(t, err)

	_, err = tr.Split(7)
	assert.ErrorIs(t, err, quadtree.ErrMalformedIdentifier)

	_, err = tr.Split(quadtree.RootID)
	require.NoError(t, err)
	_, err = tr.Split(quadtree.RootID)
	assert.ErrorIs(t, err, quadtree.ErrNotLeaf)

	_, err = tr.Split(12)
	assert.ErrorIs(t, err, quadtree.ErrMalformedIdentifier, "1 is a leaf, 12 does not exist yet")
}

func TestSplit_MaxDepth(t *testing.T) {
	tr, err := quadtree.New(1)
	require.NoError(t, err)

	id := quadtree.RootID
	for d := 0; d < quadtree.MaxDepth; d++ {
		kids, err := tr.Split(id)
		require.NoError(t, err, "depth %d", d)
		id = kids[quadtree.BottomLeft-1].ID
	}
	_, err = tr.Split(id)
	assert.ErrorIs(t, err, quadtree.ErrMaxDepth)

	digits, err := quadtree.Digits(id)
	require.NoError(t, err)
	assert.Len(t, digits, quadtree.MaxDepth)
}

func TestCornersAndCenter(t *testing.T) {
	tr, err := quadtree.New(2)
	require.NoError(t, err)

	corners, err := tr.Corners(quadtree.RootID)
	require.NoError(t, err)
	assert.Equal(t, [4]geometry.Point{{X: -2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: -2}, {X: -2, Y: -2}}, corners)

	_, err = tr.Split(quadtree.RootID)
	require.NoError(t, err)
	_, err = tr.Split(1)
	require.NoError(t, err)

	c, err := tr.Center(14)
	require.NoError(t, err)
	assert.Equal(t, geometry.Pt(-1.5, 0.5), c)

	corners, err = tr.Corners(2)
	require.NoError(t, err)
	assert.Equal(t, geometry.Pt(0, 2), corners[0])
	assert.Equal(t, geometry.Pt(2, 0), corners[2])

	cases := []struct {
		name string
		id   int64
	}{
		{"InternalRoot", 0},
		{"InternalChild", 1},
		{"DigitZero", 10},
		{"DigitFive", 5},
		{"Negative", -3},
		{"PastLeaf", 21},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tr.Center(tc.id)
			assert.ErrorIs(t, err, quadtree.ErrMalformedIdentifier)
			_, err = tr.Corners(tc.id)
			assert.ErrorIs(t, err, quadtree.ErrMalformedIdentifier)
		})
	}
}

func TestSearch_RootAndOutside(t *testing.T) {
	tr, err := quadtree.New(5)
	require.NoError(t, err)

	assert.Equal(t, quadtree.RootID, tr.Search(geometry.Pt(0, 0)))
	assert.Equal(t, quadtree.RootID, tr.Search(geometry.Pt(5, -5)), "outer boundary is closed")
	assert.Equal(t, quadtree.Outside, tr.Search(geometry.Pt(100, 100)))
	assert.Equal(t, quadtree.Outside, tr.Search(geometry.Pt(0, 5.0001)))
	assert.Equal(t, quadtree.Outside, tr.Search(geometry.Pt(math.NaN(), 0)))
}

func TestSearch_TieBreakToPositiveSide(t *testing.T) {
	tr, err := quadtree.New(4)
	require.NoError(t, err)
	_, err = tr.Split(quadtree.RootID)
	require.NoError(t, err)

	assert.Equal(t, int64(quadtree.TopRight), tr.Search(geometry.Pt(0, 0)))
	assert.Equal(t, int64(quadtree.TopRight), tr.Search(geometry.Pt(0, 1)))
	assert.Equal(t, int64(quadtree.TopLeft), tr.Search(geometry.Pt(-0.1, 0)))
	assert.Equal(t, int64(quadtree.BottomRight), tr.Search(geometry.Pt(0, -0.1)))
	assert.Equal(t, int64(quadtree.BottomLeft), tr.Search(geometry.Pt(-1, -1)))
}

// TestSearch_CenterContainsPoint checks that for random points and random
// refinements, the leaf returned by Search always contains the point.
func TestSearch_CenterContainsPoint(t *testing.T) {
	const half = 10.0
	rng := rand.New(rand.NewSource(7))

	tr, err := quadtree.New(half)
	require.NoError(t, err)

	for depth := 0; depth < 6; depth++ {
		for i := 0; i < 200; i++ {
			p := geometry.Pt((rng.Float64()*2-1)*half, (rng.Float64()*2-1)*half)
			id := tr.Search(p)
			require.NotEqual(t, quadtree.Outside, id)

			c, err := tr.Center(id)
			require.NoError(t, err)
			leaf, err := tr.Leaf(id)
			require.NoError(t, err)
			assert.True(t, math.Abs(p.X-c.X) <= leaf.Half && math.Abs(p.Y-c.Y) <= leaf.Half,
				"leaf %d at %v (half %v) must contain %v", id, c, leaf.Half, p)
		}

		// Split a random subset of leaves before the next round.
		for _, id := range tr.Leaves() {
			if rng.Intn(2) == 0 {
				_, err := tr.Split(id)
				require.NoError(t, err)
			}
		}
	}
}

func TestLeaves_OrderAndCount(t *testing.T) {
	tr, err := quadtree.New(1)
	require.NoError(t, err)
	_, err = tr.Split(quadtree.RootID)
	require.NoError(t, err)
	_, err = tr.Split(2)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 21, 22, 23, 24, 3, 4}, tr.Leaves())
	assert.Equal(t, 7, tr.LeafCount())
}

func TestDigits(t *testing.T) {
	d, err := quadtree.Digits(quadtree.RootID)
	require.NoError(t, err)
	assert.Empty(t, d)

	d, err = quadtree.Digits(4132)
	require.NoError(t, err)
	assert.Equal(t, []quadtree.Quadrant{quadtree.BottomLeft, quadtree.TopLeft, quadtree.BottomRight, quadtree.TopRight}, d)

	depth, err := quadtree.Depth(4132)
	require.NoError(t, err)
	assert.Equal(t, 4, depth)

	assert.Equal(t, int64(41323), quadtree.ChildID(4132, quadtree.BottomRight))
	assert.Equal(t, "top-left", quadtree.TopLeft.String())
}
