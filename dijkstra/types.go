package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was configured.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNoPath indicates that the target is not reachable from the source.
	ErrNoPath = errors.New("dijkstra: no path between vertices")
)

// NoPredecessor marks the source and unreachable vertices in the prev map.
const NoPredecessor = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      - starting vertex index (required).
// Target      - optional vertex; the search stops once it is finalized.
// ReturnPath  - if true, return the predecessor map; otherwise prev is nil.
// MaxDistance - vertices farther than this are not explored. Default +Inf.
// Ctx         - checked on every heap pop. Default context.Background().
type Options struct {
	Source      int
	Target      int
	ReturnPath  bool
	MaxDistance float64
	Ctx         context.Context

	hasSource bool
	hasTarget bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
		o.hasSource = true
	}
}

// WithTarget stops the search as soon as id has its final distance.
// Distances of vertices not yet finalized at that point are upper bounds.
func WithTarget(id int) Option {
	return func(o *Options) {
		o.Target = id
		o.hasTarget = true
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration at max. Panics with ErrBadMaxDistance
// on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	if math.IsNaN(max) || max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options with no source, no cap and a background context.
func DefaultOptions() Options {
	return Options{
		MaxDistance: math.Inf(1),
		Ctx:         context.Background(),
	}
}
