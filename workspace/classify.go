package workspace

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadmap/geometry"
	"github.com/katalvlaran/roadmap/quadtree"
)

// Classify returns the class of the square cell centered at center with the
// given half-extent.
//
// The test compares each obstacle's signed distance at the center against
// the cell's circumscribing radius r = half·√2:
//
//   - distance < −r for some obstacle: the whole cell is inside it → Obstructed.
//   - distance <= r for some obstacle: its boundary may cross or touch the cell → Undetermined.
//   - otherwise → Free.
//
// The test is conservative: it never reports Free for a cell that touches an
// obstacle, but may report Undetermined for a cell that Refine would later
// prove free.
// Complexity: O(|obstacles|).
func (w *Workspace) Classify(center geometry.Point, half float64) Class {
	r := half * math.Sqrt2

	ret := Free
	for _, ob := range w.obstacles {
		d := ob.Distance(center)
		if d < -r {
			return Obstructed
		}
		if d <= r {
			ret = Undetermined
		}
	}

	return ret
}

// Refine splits the undetermined cell id and files each of its four children
// under its own classification. It returns the children's identifiers in
// quadrant order.
//
// Returns ErrNotUndetermined if id is not in the undetermined set, or the
// quadtree error if the split itself fails (e.g. quadtree.ErrMaxDepth).
// Complexity: O(depth + |obstacles|).
func (w *Workspace) Refine(id int64) ([4]int64, error) {
	var ids [4]int64
	if !has(w.undetermined, id) {
		return ids, fmt.Errorf("refine %d: %w", id, ErrNotUndetermined)
	}

	kids, err := w.tree.Split(id)
	if err != nil {
		return ids, fmt.Errorf("refine %d: %w", id, err)
	}
	delete(w.undetermined, id)

	for i, k := range kids {
		w.setFor(w.Classify(k.Center, k.Half))[k.ID] = struct{}{}
		ids[i] = k.ID
	}

	return ids, nil
}

// RefineDepth repeatedly refines undetermined cells shallower than depth,
// breadth first, until none remain. depth is clamped to quadtree.MaxDepth.
// Returns the number of cells refined.
// Complexity: O(4^depth · |obstacles|) worst case; in practice proportional
// to the length of the obstacle boundaries.
func (w *Workspace) RefineDepth(depth int) (int, error) {
	if depth > quadtree.MaxDepth {
		depth = quadtree.MaxDepth
	}

	refined := 0
	queue := w.Undetermined()
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		n, err := w.tree.Leaf(id)
		if err != nil {
			return refined, err
		}
		if n.Depth >= depth {
			continue
		}

		kids, err := w.Refine(id)
		if err != nil {
			return refined, err
		}
		refined++

		for _, k := range kids {
			if has(w.undetermined, k) {
				queue = append(queue, k)
			}
		}
	}

	return refined, nil
}

// Locate returns the leaf containing p together with its class.
// Returns ErrOutside for points outside the workspace.
// Complexity: O(depth).
func (w *Workspace) Locate(p geometry.Point) (int64, Class, error) {
	id := w.tree.Search(p)
	if id == quadtree.Outside {
		return quadtree.Outside, Undetermined, ErrOutside
	}
	c, err := w.ClassOf(id)

	return id, c, err
}

// PointValid reports whether p is inside the workspace and outside every obstacle.
//
// The decomposition is consulted first: a point in a Free leaf is valid and
// a point in an Obstructed leaf is not, without touching the obstacles. Only
// Undetermined leaves fall back to the exact test.
// Complexity: O(depth) for classified leaves, O(depth + |obstacles|) otherwise.
func (w *Workspace) PointValid(p geometry.Point) bool {
	_, c, err := w.Locate(p)
	if err != nil {
		return false
	}
	switch c {
	case Free:
		return true
	case Obstructed:
		return false
	}
	for _, ob := range w.obstacles {
		if ob.Contains(p) {
			return false
		}
	}

	return true
}

// SegmentValid reports whether the closed segment s stays inside the
// workspace and misses every obstacle.
// Complexity: O(|obstacles|).
func (w *Workspace) SegmentValid(s geometry.Segment) bool {
	// The workspace is convex, so both endpoints inside means the segment is.
	if !w.InBounds(s.A) || !w.InBounds(s.B) {
		return false
	}
	for _, ob := range w.obstacles {
		if ob.Intersects(s) {
			return false
		}
	}

	return true
}

// Clearance returns the distance from p to the nearest obstacle boundary,
// or +Inf when the workspace has no obstacles.
// Complexity: O(|obstacles|).
func (w *Workspace) Clearance(p geometry.Point) float64 {
	best := math.Inf(1)
	for _, ob := range w.obstacles {
		if d := ob.Distance(p); d < best {
			best = d
		}
	}

	return best
}
