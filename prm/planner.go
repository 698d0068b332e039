package prm

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/roadmap/core"
	"github.com/katalvlaran/roadmap/geometry"
	"github.com/katalvlaran/roadmap/neighbor"
	"github.com/katalvlaran/roadmap/workspace"
)

// Planner owns a roadmap over one workspace.
//
// Graph vertices [0, N) are the sampled nodes, in sampling order, indexed by
// the neighbor index. Vertices inserted by Path come after them and are
// never added to the index.
type Planner struct {
	ws  *workspace.Workspace
	rng *rand.Rand
	cfg Config

	graph  *core.Graph
	points []geometry.Point
	radii  []float64
	index  *neighbor.Index

	lastPath []geometry.Point
	metrics  *metrics
}

// New returns a planner for ws drawing randomness from rng.
//
// Steps:
//  1. Reject nil ws (ErrNilWorkspace) and nil rng (ErrNilRand).
//  2. Apply opts over DefaultConfig; the first invalid value fails with ErrBadConfig.
//  3. Refine the workspace decomposition to DecompositionDepth.
//  4. Register the collectors with the WithMetrics registerer, reusing the
//     ones a previous planner registered there.
func New(ws *workspace.Workspace, rng *rand.Rand, opts ...Option) (*Planner, error) {
	if ws == nil {
		return nil, ErrNilWorkspace
	}
	if rng == nil {
		return nil, ErrNilRand
	}

	s := settings{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	if s.err != nil {
		return nil, s.err
	}

	if _, err := ws.RefineDepth(s.cfg.DecompositionDepth); err != nil {
		return nil, fmt.Errorf("prm: refining workspace: %w", err)
	}

	m, err := newMetrics(s.reg)
	if err != nil {
		return nil, fmt.Errorf("prm: registering metrics: %w", err)
	}

	n := s.cfg.Batches * s.cfg.BatchSize

	return &Planner{
		ws:      ws,
		rng:     rng,
		cfg:     s.cfg,
		graph:   core.NewGraph(core.WithCapacity(n + 2)),
		points:  make([]geometry.Point, 0, n),
		radii:   make([]float64, 0, s.cfg.Batches),
		metrics: m,
	}, nil
}

// Build runs Sample then Connect.
func (p *Planner) Build(ctx context.Context) (ConnectReport, error) {
	if err := p.Sample(ctx); err != nil {
		return ConnectReport{}, err
	}

	return p.Connect(ctx)
}

// Config returns the effective configuration.
func (p *Planner) Config() Config { return p.cfg }

// Workspace returns the planned workspace.
func (p *Planner) Workspace() *workspace.Workspace { return p.ws }

// Graph returns the roadmap graph. Callers must not mutate it.
func (p *Planner) Graph() *core.Graph { return p.graph }

// Index returns the neighbor index over sampled nodes, or nil before Sample.
func (p *Planner) Index() *neighbor.Index { return p.index }

// Points returns a copy of the sampled node positions in index order.
func (p *Planner) Points() []geometry.Point {
	return append([]geometry.Point(nil), p.points...)
}

// Radii returns a copy of the connection radius of each batch.
func (p *Planner) Radii() []float64 {
	return append([]float64(nil), p.radii...)
}

// LastPath returns a copy of the waypoints of the last successful query.
func (p *Planner) LastPath() []geometry.Point {
	return append([]geometry.Point(nil), p.lastPath...)
}

// isSampled reports whether graph vertex id is a sampled node rather than a query node.
func (p *Planner) isSampled(id int) bool { return id < len(p.points) }

func (p *Planner) indexEmpty() bool {
	return p.index == nil || p.index.Len() == 0
}
