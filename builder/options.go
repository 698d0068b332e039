// SPDX-License-Identifier: MIT
// Package: roadmap/builder
//
// options.go - functional options for the builder package.
//
// Option constructors VALIDATE and PANIC on meaningless inputs.
// Constructors themselves return errors.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before generation begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for random constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxAttempts bounds the draws spent on each random obstacle.
// Panics if n < 1.
func WithMaxAttempts(n int) BuilderOption {
	if n < 1 {
		panic("builder: WithMaxAttempts(n<1)")
	}
	return func(c *builderConfig) {
		c.maxAttempts = n
	}
}
