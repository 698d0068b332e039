package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start index is absent or filtered out.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures a traversal.
type Option func(*options)

type options struct {
	ctx  context.Context
	keep func(id int) bool
}

func newOptions(opts ...Option) options {
	o := options{
		ctx:  context.Background(),
		keep: func(int) bool { return true },
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext sets a context checked before each dequeue.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithVertexFilter admits only vertices for which keep returns true.
func WithVertexFilter(keep func(id int) bool) Option {
	return func(o *options) {
		if keep != nil {
			o.keep = keep
		}
	}
}
