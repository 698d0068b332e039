// Package neighbor provides a static fixed-radius nearest-neighbor index over
// 2D points.
//
// The index is built once from a point set (bulk-loaded R-tree) and answers
// "every point within distance r of q" queries. It is not updated
// incrementally; callers rebuild it after adding points.
//
// Results are ordered by distance ascending, then by point index ascending,
// so two queries over the same data always agree.
//
// Complexity:
//
//   - Build: O(n log n).
//   - Radius: O(log n + k) expected, k = reported candidates.
package neighbor
