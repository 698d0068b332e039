package prm

import (
	"fmt"
	"math"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/roadmap/quadtree"
)

// Config holds the planner parameters.
//
// Batches            - number of sampling batches B (>= 1).
// BatchSize          - samples per batch S (>= 1).
// Radius             - base connection scale r0 (> 0).
// MaxDegree          - new edges a node may add per connection pass (>= 1).
// MaxSampleAttempts  - draws allowed per sample before ErrWorldSaturated (>= 1).
// QueryRadius        - connection radius for query nodes; 0 uses the final batch radius.
// DecompositionDepth - quadtree refinement depth applied by New (0..quadtree.MaxDepth).
type Config struct {
	Batches            int
	BatchSize          int
	Radius             float64
	MaxDegree          int
	MaxSampleAttempts  int
	QueryRadius        float64
	DecompositionDepth int
}

// Defaults.
const (
	DefaultBatches            = 5
	DefaultBatchSize          = 100
	DefaultRadius             = 10.0
	DefaultMaxDegree          = 2
	DefaultMaxSampleAttempts  = 10000
	DefaultDecompositionDepth = 4
)

// DefaultConfig returns {5, 100, 10, 2, 10000, 0, 4}.
func DefaultConfig() Config {
	return Config{
		Batches:            DefaultBatches,
		BatchSize:          DefaultBatchSize,
		Radius:             DefaultRadius,
		MaxDegree:          DefaultMaxDegree,
		MaxSampleAttempts:  DefaultMaxSampleAttempts,
		QueryRadius:        0,
		DecompositionDepth: DefaultDecompositionDepth,
	}
}

// settings is what options mutate: the Config plus wiring that is not a
// planning parameter.
type settings struct {
	cfg Config
	reg prometheus.Registerer
	err error
}

// Option configures a Planner. An invalid value is recorded and surfaced
// as ErrBadConfig by New; the first violation wins.
type Option func(*settings)

func (s *settings) violate(format string, args ...interface{}) {
	if s.err == nil {
		s.err = fmt.Errorf("%w: "+format, append([]interface{}{ErrBadConfig}, args...)...)
	}
}

// WithConfig replaces the whole Config. It is validated like the individual options.
func WithConfig(c Config) Option {
	return func(s *settings) {
		for _, opt := range []Option{
			WithBatches(c.Batches),
			WithBatchSize(c.BatchSize),
			WithRadius(c.Radius),
			WithMaxDegree(c.MaxDegree),
			WithMaxSampleAttempts(c.MaxSampleAttempts),
			WithQueryRadius(c.QueryRadius),
			WithDecompositionDepth(c.DecompositionDepth),
		} {
			opt(s)
		}
	}
}

// WithBatches sets the number of sampling batches.
func WithBatches(n int) Option {
	return func(s *settings) {
		if n < 1 {
			s.violate("batches must be >= 1 (%d)", n)
			return
		}
		s.cfg.Batches = n
	}
}

// WithBatchSize sets the number of samples per batch.
func WithBatchSize(n int) Option {
	return func(s *settings) {
		if n < 1 {
			s.violate("batch size must be >= 1 (%d)", n)
			return
		}
		s.cfg.BatchSize = n
	}
}

// WithRadius sets the base connection scale r0.
func WithRadius(r float64) Option {
	return func(s *settings) {
		if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
			s.violate("radius must be finite and > 0 (%v)", r)
			return
		}
		s.cfg.Radius = r
	}
}

// WithMaxDegree sets how many new edges each node may add per pass.
func WithMaxDegree(k int) Option {
	return func(s *settings) {
		if k < 1 {
			s.violate("max degree must be >= 1 (%d)", k)
			return
		}
		s.cfg.MaxDegree = k
	}
}

// WithMaxSampleAttempts sets the rejection-sampling cap per sample.
func WithMaxSampleAttempts(n int) Option {
	return func(s *settings) {
		if n < 1 {
			s.violate("max sample attempts must be >= 1 (%d)", n)
			return
		}
		s.cfg.MaxSampleAttempts = n
	}
}

// WithQueryRadius sets the connection radius used for query nodes.
// 0 restores the default (final batch radius); +Inf considers every node.
func WithQueryRadius(r float64) Option {
	return func(s *settings) {
		if math.IsNaN(r) || r < 0 {
			s.violate("query radius must be >= 0 (%v)", r)
			return
		}
		s.cfg.QueryRadius = r
	}
}

// WithDecompositionDepth sets how deep New refines the workspace quadtree.
func WithDecompositionDepth(d int) Option {
	return func(s *settings) {
		if d < 0 || d > quadtree.MaxDepth {
			s.violate("decomposition depth must be in [0,%d] (%d)", quadtree.MaxDepth, d)
			return
		}
		s.cfg.DecompositionDepth = d
	}
}

// WithMetrics registers the planner's Prometheus collectors with reg.
// Planners sharing a registry share the collectors. A conflicting collector
// already in reg makes New fail. Without this option collectors still count
// but are not registered anywhere.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *settings) {
		s.reg = reg
	}
}
