// SPDX-License-Identifier: MIT
// Package: roadmap/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.
// Option constructors may panic on meaningless input; constructors never do.

package builder

import "errors"

// ErrTooFewObstacles indicates a count parameter smaller than 1.
var ErrTooFewObstacles = errors.New("builder: obstacle count too small")

// ErrBadSize indicates a size, radius, padding or position outside its domain.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates a stochastic constructor ran without a *rand.Rand
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a placement was rejected (overlap) or the
// attempt budget was exhausted.
var ErrConstructFailed = errors.New("builder: construction failed")
