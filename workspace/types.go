package workspace

import (
	"errors"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/roadmap/geometry"
	"github.com/katalvlaran/roadmap/quadtree"
)

// Sentinel errors for workspace operations.
var (
	// ErrBadExtent indicates a workspace half-extent that is not finite and positive.
	ErrBadExtent = errors.New("workspace: half-extent must be finite and positive")

	// ErrNilObstacle indicates a nil entry in the obstacle list.
	ErrNilObstacle = errors.New("workspace: obstacle is nil")

	// ErrNotUndetermined indicates Refine was asked to split a cell that is
	// not in the undetermined set.
	ErrNotUndetermined = errors.New("workspace: cell is not undetermined")

	// ErrOutside indicates a point outside the workspace bounds.
	ErrOutside = errors.New("workspace: point outside workspace")

	// ErrNilRand indicates a nil random source was passed to Sample.
	ErrNilRand = errors.New("workspace: random source is nil")

	// ErrWorldSaturated indicates rejection sampling exhausted its attempt cap
	// without finding a free point.
	ErrWorldSaturated = errors.New("workspace: no free point found within attempt cap")
)

// Class is the classification of a decomposition cell.
type Class int

const (
	// Free cells contain no obstructed point.
	Free Class = iota
	// Obstructed cells lie entirely inside one obstacle.
	Obstructed
	// Undetermined cells may be crossed by an obstacle boundary.
	Undetermined
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Free:
		return "free"
	case Obstructed:
		return "obstructed"
	case Undetermined:
		return "undetermined"
	default:
		return "unknown"
	}
}

// Option configures a Workspace before creation.
type Option func(w *Workspace)

// WithClassifyOnCreate classifies the root cell immediately instead of
// leaving it undetermined until the first Refine.
func WithClassifyOnCreate() Option {
	return func(w *Workspace) { w.classifyRoot = true }
}

// Workspace is the square [−half, half]² populated with static obstacles.
//
// Invariant: every decomposition leaf belongs to exactly one of the free,
// obstructed and undetermined sets. The obstacle list is immutable.
//
// A Workspace is safe for concurrent reads (Classify, PointValid, SegmentValid,
// Clearance); Refine must not run concurrently with anything else.
type Workspace struct {
	half      float64
	obstacles []geometry.Obstacle
	tree      *quadtree.Tree

	free         map[int64]struct{}
	obstructed   map[int64]struct{}
	undetermined map[int64]struct{}

	classifyRoot bool
}

// New creates a Workspace of the given half-extent owning a copy of obstacles.
// The decomposition starts as a single root cell in the undetermined set.
// Returns ErrBadExtent or ErrNilObstacle on invalid input.
// Complexity: O(len(obstacles)).
func New(half float64, obstacles []geometry.Obstacle, opts ...Option) (*Workspace, error) {
	if math.IsNaN(half) || math.IsInf(half, 0) || half <= 0 {
		return nil, ErrBadExtent
	}
	for _, ob := range obstacles {
		if ob == nil {
			return nil, ErrNilObstacle
		}
	}
	tree, err := quadtree.New(half)
	if err != nil {
		return nil, err
	}

	w := &Workspace{
		half:         half,
		obstacles:    append([]geometry.Obstacle(nil), obstacles...),
		tree:         tree,
		free:         make(map[int64]struct{}),
		obstructed:   make(map[int64]struct{}),
		undetermined: map[int64]struct{}{quadtree.RootID: {}},
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.classifyRoot {
		delete(w.undetermined, quadtree.RootID)
		w.setFor(w.Classify(geometry.Point{}, half))[quadtree.RootID] = struct{}{}
	}

	return w, nil
}

// HalfExtent returns the workspace half-extent.
func (w *Workspace) HalfExtent() float64 { return w.half }

// Obstacles returns a copy of the obstacle list.
func (w *Workspace) Obstacles() []geometry.Obstacle {
	return append([]geometry.Obstacle(nil), w.obstacles...)
}

// Tree returns the decomposition. Callers must treat it as read-only and
// refine only through Refine so the cell sets stay consistent.
func (w *Workspace) Tree() *quadtree.Tree { return w.tree }

// Free returns the free cell identifiers in ascending order.
func (w *Workspace) Free() []int64 { return sortedIDs(w.free) }

// Obstructed returns the obstructed cell identifiers in ascending order.
func (w *Workspace) Obstructed() []int64 { return sortedIDs(w.obstructed) }

// Undetermined returns the undetermined cell identifiers in ascending order.
func (w *Workspace) Undetermined() []int64 { return sortedIDs(w.undetermined) }

// ClassOf returns the class of the leaf cell id.
// Returns quadtree.ErrMalformedIdentifier if id is not a current leaf.
func (w *Workspace) ClassOf(id int64) (Class, error) {
	if _, err := w.tree.Leaf(id); err != nil {
		return Undetermined, err
	}
	switch {
	case has(w.free, id):
		return Free, nil
	case has(w.obstructed, id):
		return Obstructed, nil
	default:
		return Undetermined, nil
	}
}

// InBounds reports whether p lies in the closed workspace square.
func (w *Workspace) InBounds(p geometry.Point) bool {
	return math.Abs(p.X) <= w.half && math.Abs(p.Y) <= w.half
}

// Sample draws points uniformly from the workspace until one is valid.
// It returns the point and the number of draws used (>= 1).
// Fails with ErrWorldSaturated after maxAttempts rejected draws.
// Complexity: O(maxAttempts·|obstacles|) worst case.
func (w *Workspace) Sample(rng *rand.Rand, maxAttempts int) (geometry.Point, int, error) {
	if rng == nil {
		return geometry.Point{}, 0, ErrNilRand
	}
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		p := geometry.Point{
			X: (rng.Float64()*2 - 1) * w.half,
			Y: (rng.Float64()*2 - 1) * w.half,
		}
		if w.PointValid(p) {
			return p, attempt, nil
		}
	}

	return geometry.Point{}, maxAttempts, ErrWorldSaturated
}

func (w *Workspace) setFor(c Class) map[int64]struct{} {
	switch c {
	case Free:
		return w.free
	case Obstructed:
		return w.obstructed
	default:
		return w.undetermined
	}
}

func has(set map[int64]struct{}, id int64) bool {
	_, ok := set[id]
	return ok
}

func sortedIDs(set map[int64]struct{}) []int64 {
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
