// Package workspace owns the bounded 2D world a planner operates in.
//
// What:
//
//   - A square [−H,H]² of static obstacles (geometry.Obstacle).
//   - A quadtree decomposition whose leaves are partitioned into three
//     disjoint sets: free, obstructed and undetermined. The root starts
//     undetermined; Refine splits an undetermined cell and files each child
//     under its own classification.
//   - Classify, the conservative cell test based on signed obstacle distance
//     at the cell center versus the circumscribing radius.
//   - Point/segment validity, clearance and rejection sampling used by the
//     roadmap builder.
//
// Localization:
//
//	Locate and PointValid descend the decomposition first. Points landing
//	in a free or obstructed leaf are answered without touching the
//	obstacles, so refining once up front pays off over thousands of samples.
//
// Errors:
//
//   - ErrBadExtent, ErrNilObstacle: invalid construction input.
//   - ErrNotUndetermined: Refine on a cell that is already classified.
//   - ErrOutside: Locate outside the workspace.
//   - ErrNilRand, ErrWorldSaturated: sampling failures.
package workspace
