// SPDX-License-Identifier: MIT
// Package: roadmap/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = nil   (random constructors fail with ErrNeedRandSource)
//   • maxAttempts = 1000  (draws per random obstacle)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng         *rand.Rand
	maxAttempts int
}

const defaultMaxAttempts = 1000

// newBuilderConfig applies options in order; last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{maxAttempts: defaultMaxAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
