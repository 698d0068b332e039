package quadtree

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadmap/geometry"
)

// Tree is a lazily refined quadtree over [−half, half]².
//
// Tree is not safe for concurrent mutation; concurrent Search/Lookup calls
// without a concurrent Split are fine.
type Tree struct {
	root   *Node
	leaves int
}

// New returns a tree whose single leaf is the root square of the given half-extent.
// Returns ErrBadExtent unless half is finite and > 0.
// Complexity: O(1).
func New(half float64) (*Tree, error) {
	if math.IsNaN(half) || math.IsInf(half, 0) || half <= 0 {
		return nil, ErrBadExtent
	}

	return &Tree{
		root:   &Node{ID: RootID, Half: half},
		leaves: 1,
	}, nil
}

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root }

// HalfExtent returns the root half-extent.
func (t *Tree) HalfExtent() float64 { return t.root.Half }

// LeafCount returns the number of leaves.
func (t *Tree) LeafCount() int { return t.leaves }

// Split subdivides the leaf with the given identifier and returns its four new
// children in quadrant order (1 top-left, 2 top-right, 3 bottom-right, 4 bottom-left).
//
// Steps:
//  1. Lookup id (ErrMalformedIdentifier if absent).
//  2. Reject internal nodes (ErrNotLeaf) and nodes at MaxDepth (ErrMaxDepth).
//  3. Create children at (x±h/2, y±h/2) with half h/2 and id·10+digit.
//
// Complexity: O(depth).
func (t *Tree) Split(id int64) ([4]*Node, error) {
	var out [4]*Node
	n, err := t.Lookup(id)
	if err != nil {
		return out, err
	}
	if !n.IsLeaf() {
		return out, fmt.Errorf("split %d: %w", id, ErrNotLeaf)
	}
	if n.Depth >= MaxDepth {
		return out, fmt.Errorf("split %d: %w", id, ErrMaxDepth)
	}

	h := n.Half / 2
	var children [4]*Node
	for q := TopLeft; q <= BottomLeft; q++ {
		dx, dy := q.offset()
		children[q-1] = &Node{
			ID:     n.ID*idBase + int64(q),
			Center: geometry.Point{X: n.Center.X + dx*h, Y: n.Center.Y + dy*h},
			Half:   h,
			Depth:  n.Depth + 1,
		}
	}
	n.children = &children
	t.leaves += 3

	return children, nil
}

// Lookup returns the node (leaf or internal) named by id.
//
// The identifier is consumed most-significant digit first; each digit selects
// a child of the current node. Fails with ErrMalformedIdentifier when the
// identifier is negative, contains a digit outside 1..4, or descends past a leaf.
// Complexity: O(depth).
func (t *Tree) Lookup(id int64) (*Node, error) {
	digits, err := Digits(id)
	if err != nil {
		return nil, err
	}

	n := t.root
	for _, q := range digits {
		if n.IsLeaf() {
			return nil, fmt.Errorf("id %d descends past leaf %d: %w", id, n.ID, ErrMalformedIdentifier)
		}
		n = n.children[q-1]
	}

	return n, nil
}

// Leaf returns the leaf named by id.
// Fails with ErrMalformedIdentifier if id is unknown or names an internal node.
func (t *Tree) Leaf(id int64) (*Node, error) {
	n, err := t.Lookup(id)
	if err != nil {
		return nil, err
	}
	if !n.IsLeaf() {
		return nil, fmt.Errorf("id %d is an internal node: %w", id, ErrMalformedIdentifier)
	}

	return n, nil
}

// Corners returns the corners of the leaf named by id in order top-left,
// top-right, bottom-right, bottom-left.
func (t *Tree) Corners(id int64) ([4]geometry.Point, error) {
	n, err := t.Leaf(id)
	if err != nil {
		return [4]geometry.Point{}, err
	}

	return n.Corners(), nil
}

// Center returns the center of the leaf named by id.
func (t *Tree) Center(id int64) (geometry.Point, error) {
	n, err := t.Leaf(id)
	if err != nil {
		return geometry.Point{}, err
	}

	return n.Center, nil
}

// Search returns the identifier of the leaf containing p, or Outside when
// |x| or |y| exceeds the root half-extent.
//
// At each internal node the point routes to the child on its side of the
// node's center; a coordinate equal to the center routes to the positive side.
// Complexity: O(depth).
func (t *Tree) Search(p geometry.Point) int64 {
	h := t.root.Half
	// NaN fails both comparisons, hence the negated form.
	if !(math.Abs(p.X) <= h) || !(math.Abs(p.Y) <= h) {
		return Outside
	}

	n := t.root
	for !n.IsLeaf() {
		n = n.children[n.quadrantOf(p)-1]
	}

	return n.ID
}

// Leaves returns every leaf identifier in depth-first quadrant order
// (1 before 2 before 3 before 4 at every level).
// Complexity: O(nodes).
func (t *Tree) Leaves() []int64 {
	out := make([]int64, 0, t.leaves)
	stack := []*Node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.IsLeaf() {
			out = append(out, n.ID)
			continue
		}
		// Push in reverse so quadrant 1 pops first.
		for i := 3; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}

	return out
}

// Digits decodes id into its quadrant digits, most significant first.
// The root (0) decodes to an empty slice.
// Returns ErrMalformedIdentifier for negative ids or digits outside 1..4.
func Digits(id int64) ([]Quadrant, error) {
	if id < 0 {
		return nil, fmt.Errorf("id %d: %w", id, ErrMalformedIdentifier)
	}

	var rev []Quadrant
	for v := id; v > 0; v /= idBase {
		q := Quadrant(v % idBase)
		if !q.valid() {
			return nil, fmt.Errorf("id %d: digit %d: %w", id, q, ErrMalformedIdentifier)
		}
		rev = append(rev, q)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// Depth returns the number of digits in id, which is the depth of the node it names.
func Depth(id int64) (int, error) {
	d, err := Digits(id)
	if err != nil {
		return 0, err
	}

	return len(d), nil
}

// ChildID returns the identifier of parent's child in quadrant q.
func ChildID(parent int64, q Quadrant) int64 {
	return parent*idBase + int64(q)
}
