// SPDX-License-Identifier: MIT
// Package: roadmap/builder
//
// api.go - public entry points: Field, Constructor, Generate, BuildWorkspace.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadmap/geometry"
	"github.com/katalvlaran/roadmap/workspace"
)

// Field is the obstacle list under construction for a square [−half, half]².
type Field struct {
	half      float64
	obstacles []geometry.Obstacle
}

// Half returns the workspace half-extent.
func (f *Field) Half() float64 { return f.half }

// Obstacles returns a copy of the placed obstacles in placement order.
func (f *Field) Obstacles() []geometry.Obstacle {
	return append([]geometry.Obstacle(nil), f.obstacles...)
}

// Place appends ob unless its bounds touch those of an obstacle already
// placed, in which case it returns ErrConstructFailed.
// Complexity: O(len(obstacles)).
func (f *Field) Place(ob geometry.Obstacle) error {
	if !f.fits(ob) {
		return fmt.Errorf("Place: overlaps a placed obstacle: %w", ErrConstructFailed)
	}
	f.obstacles = append(f.obstacles, ob)

	return nil
}

func (f *Field) fits(ob geometry.Obstacle) bool {
	lo, hi := ob.Bounds()
	for _, other := range f.obstacles {
		olo, ohi := other.Bounds()
		if lo.X <= ohi.X && olo.X <= hi.X && lo.Y <= ohi.Y && olo.Y <= hi.Y {
			return false
		}
	}

	return true
}

// Constructor places obstacles into a Field using the resolved config.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(f *Field, cfg builderConfig) error

// Generate resolves bopts and runs cons in order on an empty field of the
// given half-extent. Any constructor error is wrapped with "Generate: %w".
func Generate(half float64, bopts []BuilderOption, cons ...Constructor) ([]geometry.Obstacle, error) {
	if math.IsNaN(half) || math.IsInf(half, 0) || half <= 0 {
		return nil, fmt.Errorf("Generate: half=%v: %w", half, ErrBadSize)
	}
	f := &Field{half: half}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Generate: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(f, cfg); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
	}

	return f.obstacles, nil
}

// BuildWorkspace generates an obstacle field and wraps it in a workspace.
func BuildWorkspace(half float64, bopts []BuilderOption, cons ...Constructor) (*workspace.Workspace, error) {
	obs, err := Generate(half, bopts, cons...)
	if err != nil {
		return nil, err
	}

	return workspace.New(half, obs)
}
