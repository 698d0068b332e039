// SPDX-License-Identifier: MIT
// Package: roadmap/builder
//
// Package builder generates obstacle fields for planning workspaces.
//
// One orchestrator, Generate(half, bopts, cons...), resolves the builder
// configuration from functional options and runs obstacle constructors in
// order against a Field. Every placement is checked against the obstacles
// already placed: a candidate whose padded bounding box touches an existing
// one is rejected and, for random constructors, redrawn.
//
// Constructors:
//
//   - RandomRects(n, maxSide, pad): padded axis-aligned boxes with corner
//     x ∈ U(−half, half−maxSide) and side ∈ U(0, min(half/2, half−x, maxSide)).
//   - RandomDisks(n, minR, maxR): disks fully inside the workspace.
//   - HorizontalWall(y, thickness): a box spanning the full workspace width.
//
// Determinism:
//
//	Same options, seed and constructor order ⇒ identical obstacle lists.
//	Randomness comes only from the caller's *rand.Rand (WithRand/WithSeed).
//
// Errors:
//
//	ErrTooFewObstacles, ErrBadSize, ErrNeedRandSource, ErrConstructFailed;
//	branch with errors.Is.
package builder
