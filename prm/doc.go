// Package prm builds probabilistic roadmaps over a workspace and answers
// shortest-path queries on them.
//
// What
//
//   - Sample: B batches of S collision-free points drawn uniformly from the
//     workspace. Indices are global and increase across batches. The
//     neighbor index is rebuilt once, after the final batch.
//   - ConnectionRadius: r_i = r0·(1 − log2(i/B + 1)) for batch i, computed
//     once per batch. The radius shrinks as batches accumulate.
//   - Connect: every node queries the index within min(r_batch, clearance),
//     ranks candidates by distance then index, and adds edges to the first
//     MaxDegree candidates whose segment misses every obstacle. Nodes left
//     without edges are reported, not fatal.
//   - Path: start and end are validated, inserted as new nodes through the
//     same connection rule (end may connect straight to start) and joined by
//     Dijkstra over Euclidean edge lengths.
//
// Workflow
//
//	ws, _ := workspace.New(10, obstacles)
//	p, _ := prm.New(ws, rand.New(rand.NewSource(1)), prm.WithBatches(5))
//	if _, err := p.Build(ctx); err != nil { ... }
//	path, err := p.Path(ctx, geometry.Pt(-5, -5), geometry.Pt(5, 5))
//
// Observability
//
//	Progress is logged through go-tooling logs (batches and connection summaries
//	at Debug/Info, isolated nodes at Warn). WithMetrics registers Prometheus
//	collectors for samples, rejections, edges and queries.
//
// Concurrency
//
//	A Planner is not safe for concurrent use. Build once, then serialize Path calls.
//
// Errors
//
//   - ErrNilWorkspace, ErrNilRand, ErrBadConfig: construction.
//   - ErrAlreadySampled: Sample called twice.
//   - ErrEmptyNeighborIndex: Connect or Path before Sample.
//   - ErrWorldSaturated: rejection sampling ran out of attempts.
//   - ErrInvalidQueryPoint: start or end outside the workspace or obstructed.
//   - ErrNoPathFound: start and end lie in different roadmap components.
//   - ErrMalformedIdentifier: a decomposition lookup named no leaf.
package prm
