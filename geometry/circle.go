package geometry

import "math"

// Circle is a closed disk obstacle.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle returns a disk obstacle centered at c.
// Returns ErrBadRadius unless r is finite and > 0.
func NewCircle(c Point, r float64) (*Circle, error) {
	if !isFinite(r) || r <= 0 {
		return nil, ErrBadRadius
	}
	if !c.IsFinite() {
		return nil, ErrBadExtent
	}

	return &Circle{Center: c, Radius: r}, nil
}

// Distance returns |p−Center| − Radius.
// Complexity: O(1).
func (c *Circle) Distance(p Point) float64 {
	return p.Dist(c.Center) - c.Radius
}

// Contains reports whether p lies in the closed disk.
func (c *Circle) Contains(p Point) bool {
	return c.Distance(p) <= 0
}

// Intersects reports whether the closed segment s meets the closed disk.
//
// The segment is parametrised as A + t·d, t ∈ [0,1], and the quadratic
// |A + t·d − C|² = r² is solved for its roots t1 <= t2. The segment hits the
// disk when [t1,t2] overlaps [0,1]; that covers crossing, tangent and fully
// inside segments alike.
// Complexity: O(1).
func (c *Circle) Intersects(s Segment) bool {
	d := s.B.Sub(s.A)
	a := d.Dot(d)
	if a == 0 {
		// Degenerate segment: a single point.
		return c.Contains(s.A)
	}

	f := s.A.Sub(c.Center)
	b := 2 * f.Dot(d)
	cc := f.Dot(f) - c.Radius*c.Radius

	disc := b*b - 4*a*cc
	if disc < 0 {
		return false
	}

	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)

	return t1 <= 1 && t2 >= 0
}

// Bounds returns the bounding square of the disk.
func (c *Circle) Bounds() (min, max Point) {
	return Point{X: c.Center.X - c.Radius, Y: c.Center.Y - c.Radius},
		Point{X: c.Center.X + c.Radius, Y: c.Center.Y + c.Radius}
}
