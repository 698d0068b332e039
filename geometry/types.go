package geometry

import (
	"errors"
	"math"
)

// Sentinel errors for obstacle construction.
var (
	// ErrBadRadius indicates a circle radius that is not finite and > 0.
	ErrBadRadius = errors.New("geometry: radius must be finite and positive")

	// ErrBadExtent indicates a negative or non-finite rectangle size or padding.
	ErrBadExtent = errors.New("geometry: extent must be finite and non-negative")
)

// Point is a location in the workspace.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p·k.
func (p Point) Scale(k float64) Point { return Point{X: p.X * k, Y: p.Y * k} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Norm returns the Euclidean length of p seen as a vector.
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Segment is the closed straight line between A and B.
type Segment struct {
	A, B Point
}

// Seg is shorthand for Segment{A: a, B: b}.
func Seg(a, b Point) Segment { return Segment{A: a, B: b} }

// Len returns the segment length.
func (s Segment) Len() float64 { return s.A.Dist(s.B) }

// At returns the point A + t·(B−A). t=0 is A, t=1 is B.
func (s Segment) At(t float64) Point {
	return s.A.Add(s.B.Sub(s.A).Scale(t))
}

// Obstacle is a closed, convex region of the workspace that the agent may not enter.
//
// Implementations must be safe for concurrent reads; the planner never mutates them.
type Obstacle interface {
	// Distance returns the signed Euclidean distance from p to the obstacle
	// boundary: negative inside, zero on the boundary, positive outside.
	Distance(p Point) float64

	// Contains reports whether p lies inside or on the boundary.
	Contains(p Point) bool

	// Intersects reports whether any point of s lies inside or on the boundary.
	Intersects(s Segment) bool

	// Bounds returns the axis-aligned bounding box of the obstacle.
	Bounds() (min, max Point)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
