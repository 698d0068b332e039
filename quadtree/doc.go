// Package quadtree implements the hierarchical square decomposition of a
// workspace centered at the origin.
//
// What:
//
//   - Tree holds a root square of half-extent H covering [−H,H]².
//   - Split turns a leaf into an internal node with exactly four children of
//     half-extent h/2 centered at (x±h/2, y±h/2). Nodes are never merged.
//   - Every node carries a hierarchical identifier: the root is 0 and a child
//     appends one decimal digit to its parent (id·10 + digit) with
//
//     1 = top-left, 2 = top-right, 3 = bottom-right, 4 = bottom-left.
//
//     Read most-significant digit first, an identifier spells the path from
//     the root to its node.
//   - Search locates the leaf containing a point; Corners and Center resolve
//     a leaf identifier back to geometry.
//
// Conventions:
//
//   - The outer boundary of the root is closed: |x| == H is inside.
//   - Inner divides are half-open: a coordinate equal to the divide value
//     belongs to the positive (right or upper) side.
//   - A node's identifier never changes once assigned.
//
// Complexity:
//
//   - Split: O(1).
//   - Search, Lookup, Corners, Center: O(depth), depth <= MaxDepth.
//   - Leaves: O(nodes).
//
// Errors:
//
//   - ErrBadExtent: root half-extent is not finite and > 0.
//   - ErrMalformedIdentifier: identifier names no node (or no leaf where a leaf is required).
//   - ErrNotLeaf: Split called on an internal node.
//   - ErrMaxDepth: Split would exceed MaxDepth levels.
package quadtree
