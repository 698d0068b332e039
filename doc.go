// Package roadmap is an in-memory motion planner for a point robot in a
// square 2D world with static obstacles, built on probabilistic roadmaps.
//
// What is roadmap?
//
//	A small library that brings together:
//		• Geometry: points, segments, disk and padded-box obstacles
//		• Decomposition: a lazily refined quadtree with decimal cell ids
//		• Workspace: cell classification (free / obstructed / undetermined) and
//		  exact point, segment and clearance tests
//		• Neighbor index: static R-tree radius queries
//		• Graph core: thread-safe vertices and weighted undirected edges
//		• Traversals: BFS and connected components, Dijkstra shortest paths
//		• Builders: seeded random rectangle and disk fields, walls
//		• PRM: batched sampling, shrinking connection radius, path queries
//
// Under the hood, everything is organized by concern:
//
//	geometry/  - Point, Segment, Circle, Rect and the Obstacle interface
//	quadtree/  - split, lookup, search and leaf enumeration
//	workspace/ - classification, refinement and validity tests
//	neighbor/  - rtreego-backed radius queries over sampled nodes
//	core/      - Graph, Vertex, Edge
//	bfs/       - breadth-first search, components, isolated vertices
//	dijkstra/  - single-source shortest paths with deterministic ties
//	builder/   - obstacle field generators
//	prm/       - the planner: Sample, Connect, Path, Stats, Snapshot
//
// Quick ASCII example:
//
//	S · · ● · · G
//	 ╲   ███   ╱
//	  · ─ · ─ ·
//
//	S and G are joined through sampled nodes around the obstacles.
//
//	go get github.com/katalvlaran/roadmap
package roadmap
