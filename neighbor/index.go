package neighbor

import (
	"errors"
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/roadmap/geometry"
)

const (
	dims       = 2
	minFanout  = 25
	maxFanout  = 50
	pointWidth = 1e-9
)

var (
	// ErrEmptyIndex is returned when querying an index built from no points.
	ErrEmptyIndex = errors.New("neighbor: index is empty")

	// ErrBadRadius is returned for a negative or NaN query radius.
	ErrBadRadius = errors.New("neighbor: radius must be >= 0")
)

// Neighbor is one query result: the index of a point in the build slice and
// its distance to the query point.
type Neighbor struct {
	Index int
	Dist  float64
}

// entry adapts an indexed point to rtreego.Spatial.
type entry struct {
	idx int
	p   geometry.Point
}

func (e *entry) Bounds() rtreego.Rect {
	return rtreego.Point{e.p.X, e.p.Y}.ToRect(pointWidth)
}

// Index is an immutable radius index. Safe for concurrent queries.
type Index struct {
	pts  []geometry.Point
	tree *rtreego.Rtree
}

// Build indexes a copy of points. Point i keeps index i in query results.
// An empty input yields a valid index whose queries fail with ErrEmptyIndex.
func Build(points []geometry.Point) *Index {
	ix := &Index{pts: append([]geometry.Point(nil), points...)}
	if len(ix.pts) == 0 {
		return ix
	}

	objs := make([]rtreego.Spatial, len(ix.pts))
	for i, p := range ix.pts {
		objs[i] = &entry{idx: i, p: p}
	}
	ix.tree = rtreego.NewTree(dims, minFanout, maxFanout, objs...)

	return ix
}

// Len returns the number of indexed points.
func (ix *Index) Len() int { return len(ix.pts) }

// Point returns the i-th indexed point.
func (ix *Index) Point(i int) geometry.Point { return ix.pts[i] }

// Radius returns every indexed point whose Euclidean distance to q is <= r,
// sorted by distance then index. r may be +Inf.
//
// Steps:
//  1. Validate (ErrEmptyIndex, ErrBadRadius).
//  2. Collect candidates from the R-tree using the query box [q−r, q+r]²,
//     or every point when r is infinite.
//  3. Filter by exact distance and sort.
func (ix *Index) Radius(q geometry.Point, r float64) ([]Neighbor, error) {
	if len(ix.pts) == 0 {
		return nil, ErrEmptyIndex
	}
	if math.IsNaN(r) || r < 0 {
		return nil, ErrBadRadius
	}

	var out []Neighbor
	collect := func(i int) {
		if d := q.Dist(ix.pts[i]); d <= r {
			out = append(out, Neighbor{Index: i, Dist: d})
		}
	}

	if math.IsInf(r, 1) {
		for i := range ix.pts {
			collect(i)
		}
	} else {
		side := 2 * r
		if side < pointWidth {
			side = pointWidth
		}
		corner := rtreego.Point{q.X - side/2, q.Y - side/2}
		bb, err := rtreego.NewRect(corner, []float64{side, side})
		if err != nil {
			return nil, err
		}
		for _, s := range ix.tree.SearchIntersect(bb) {
			collect(s.(*entry).idx)
		}
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].Dist != out[b].Dist {
			return out[a].Dist < out[b].Dist
		}
		return out[a].Index < out[b].Index
	})

	return out, nil
}
