// Package geometry provides the 2D primitives shared by the decomposition,
// the classifier and the roadmap connector.
//
// What:
//
//   - Point and Segment value types with the handful of vector operations
//     the planner needs (difference, dot product, Euclidean distance).
//   - Obstacle, the collision contract every obstacle shape satisfies:
//     signed distance, point containment, segment intersection and bounds.
//   - Circle and Rect (an axis-aligned rectangle inflated by a padding
//     margin), the two convex primitives a workspace is built from.
//
// Conventions:
//
//   - Distance is signed: negative inside, zero on the boundary, positive outside.
//     Both shapes return the exact Euclidean distance, so |Distance| is
//     1-Lipschitz and a disk of radius Distance(p) around an outside point is
//     guaranteed obstacle-free.
//   - Shapes are closed sets. A point on the boundary is contained, and a
//     segment that merely touches the boundary intersects.
//   - Obstacles are immutable once constructed.
//
// Errors:
//
//   - ErrBadRadius: circle radius is not a finite positive number.
//   - ErrBadExtent: rectangle width, height or padding is negative or not finite.
package geometry
