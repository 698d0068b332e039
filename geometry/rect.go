package geometry

import "math"

// Rect is an axis-aligned rectangle inflated by Pad on every side.
//
// The unpadded body spans [Corner.X, Corner.X+Width] × [Corner.Y, Corner.Y+Height];
// the obstructed region is the body grown by Pad, so the planner keeps at
// least Pad of clearance from the body.
type Rect struct {
	Corner Point
	Width  float64
	Height float64
	Pad    float64

	min, max Point
}

// NewRect returns a padded rectangle obstacle whose lower-left body corner is corner.
// Returns ErrBadExtent if width, height or pad is negative or not finite.
func NewRect(corner Point, width, height, pad float64) (*Rect, error) {
	if !corner.IsFinite() {
		return nil, ErrBadExtent
	}
	for _, v := range [...]float64{width, height, pad} {
		if !isFinite(v) || v < 0 {
			return nil, ErrBadExtent
		}
	}

	r := &Rect{Corner: corner, Width: width, Height: height, Pad: pad}
	r.min = Point{X: corner.X - pad, Y: corner.Y - pad}
	r.max = Point{X: corner.X + width + pad, Y: corner.Y + height + pad}

	return r, nil
}

// Min returns the lower-left corner of the padded region.
func (r *Rect) Min() Point { return r.min }

// Max returns the upper-right corner of the padded region.
func (r *Rect) Max() Point { return r.max }

// Distance returns the exact signed distance from p to the padded box.
// Inside, the value is minus the distance to the nearest side.
// Complexity: O(1).
func (r *Rect) Distance(p Point) float64 {
	dx := math.Max(r.min.X-p.X, p.X-r.max.X)
	dy := math.Max(r.min.Y-p.Y, p.Y-r.max.Y)
	if dx <= 0 && dy <= 0 {
		return math.Max(dx, dy)
	}

	return math.Hypot(math.Max(dx, 0), math.Max(dy, 0))
}

// Contains reports whether p lies in the closed padded box.
func (r *Rect) Contains(p Point) bool {
	return p.X >= r.min.X && p.X <= r.max.X && p.Y >= r.min.Y && p.Y <= r.max.Y
}

// Intersects reports whether the closed segment s meets the closed padded box.
//
// Liang-Barsky clipping: the parameter window [t0,t1] starts at [0,1] and is
// narrowed by each of the four slab constraints; an empty window means a miss.
// Complexity: O(1).
func (r *Rect) Intersects(s Segment) bool {
	d := s.B.Sub(s.A)
	t0, t1 := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			// Parallel to this slab: inside iff q >= 0.
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return false
			}
			if t < t1 {
				t1 = t
			}
		}

		return true
	}

	return clip(-d.X, s.A.X-r.min.X) &&
		clip(d.X, r.max.X-s.A.X) &&
		clip(-d.Y, s.A.Y-r.min.Y) &&
		clip(d.Y, r.max.Y-s.A.Y)
}

// Bounds returns the padded box.
func (r *Rect) Bounds() (min, max Point) {
	return r.min, r.max
}
