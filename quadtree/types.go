package quadtree

import (
	"errors"

	"github.com/katalvlaran/roadmap/geometry"
)

// Sentinel errors for quadtree operations.
var (
	// ErrBadExtent indicates a root half-extent that is not finite and positive.
	ErrBadExtent = errors.New("quadtree: half-extent must be finite and positive")

	// ErrMalformedIdentifier indicates an identifier that does not name an existing node.
	ErrMalformedIdentifier = errors.New("quadtree: malformed identifier")

	// ErrNotLeaf indicates an attempt to split a node that is already split.
	ErrNotLeaf = errors.New("quadtree: node is not a leaf")

	// ErrMaxDepth indicates that a split would produce identifiers that overflow int64.
	ErrMaxDepth = errors.New("quadtree: maximum depth reached")
)

const (
	// RootID is the identifier of the root node.
	RootID int64 = 0

	// Outside is returned by Search for points outside the root square.
	Outside int64 = -1

	// MaxDepth is the deepest level a node may have. Nineteen decimal digits
	// in 1..4 still fit in an int64.
	MaxDepth = 19

	idBase = 10
)

// Quadrant is one base digit of an identifier.
type Quadrant int8

const (
	// TopLeft is the child toward negative x, positive y.
	TopLeft Quadrant = iota + 1
	// TopRight is the child toward positive x, positive y.
	TopRight
	// BottomRight is the child toward positive x, negative y.
	BottomRight
	// BottomLeft is the child toward negative x, negative y.
	BottomLeft
)

// String returns the quadrant name.
func (q Quadrant) String() string {
	switch q {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	default:
		return "invalid"
	}
}

// valid reports whether q is one of the four quadrant digits.
func (q Quadrant) valid() bool { return q >= TopLeft && q <= BottomLeft }

// offset returns the unit direction of q's child center from its parent center.
func (q Quadrant) offset() (dx, dy float64) {
	switch q {
	case TopLeft:
		return -1, 1
	case TopRight:
		return 1, 1
	case BottomRight:
		return 1, -1
	default:
		return -1, -1
	}
}

// Node is one square region of the decomposition.
//
// A node with no children is a leaf. Internal nodes always have exactly four
// children, indexed by Quadrant−1.
type Node struct {
	// ID is the hierarchical identifier (root = 0).
	ID int64

	// Center is the square's center.
	Center geometry.Point

	// Half is the half-width of the square.
	Half float64

	// Depth is the number of splits between the root and this node.
	Depth int

	children *[4]*Node
}

// IsLeaf reports whether n has not been split.
func (n *Node) IsLeaf() bool { return n.children == nil }

// Child returns the child in quadrant q, or nil for leaves or invalid q.
func (n *Node) Child(q Quadrant) *Node {
	if n.children == nil || !q.valid() {
		return nil
	}

	return n.children[q-1]
}

// Children returns the four children in quadrant order, or nil for a leaf.
func (n *Node) Children() []*Node {
	if n.children == nil {
		return nil
	}
	out := make([]*Node, 4)
	copy(out, n.children[:])

	return out
}

// Corners returns the square's corners in order top-left, top-right,
// bottom-right, bottom-left.
func (n *Node) Corners() [4]geometry.Point {
	x, y, h := n.Center.X, n.Center.Y, n.Half

	return [4]geometry.Point{
		{X: x - h, Y: y + h},
		{X: x + h, Y: y + h},
		{X: x + h, Y: y - h},
		{X: x - h, Y: y - h},
	}
}

// Contains reports whether p lies in the closed square of n.
func (n *Node) Contains(p geometry.Point) bool {
	return p.X >= n.Center.X-n.Half && p.X <= n.Center.X+n.Half &&
		p.Y >= n.Center.Y-n.Half && p.Y <= n.Center.Y+n.Half
}

// quadrantOf returns the child quadrant of n that p routes to.
// Coordinates equal to the center go to the positive side.
func (n *Node) quadrantOf(p geometry.Point) Quadrant {
	right := p.X >= n.Center.X
	up := p.Y >= n.Center.Y
	switch {
	case up && !right:
		return TopLeft
	case up && right:
		return TopRight
	case right:
		return BottomRight
	default:
		return BottomLeft
	}
}
