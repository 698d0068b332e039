// SPDX-License-Identifier: MIT
// Package: roadmap/builder
//
// impl_wall.go - HorizontalWall(y, thickness).
//
// A deterministic box [−half, half] × [y − t/2, y + t/2]. It splits the
// workspace into two disconnected halves, which makes it the canonical
// unreachable-goal fixture.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadmap/geometry"
)

const methodHorizontalWall = "HorizontalWall"

// HorizontalWall returns a Constructor placing a full-width wall centered on y.
// Requires thickness > 0 and |y| ≤ half (ErrBadSize); fails with
// ErrConstructFailed if the wall touches an obstacle already placed.
func HorizontalWall(y, thickness float64) Constructor {
	return func(f *Field, _ builderConfig) error {
		if !finite(thickness) || thickness <= 0 || !finite(y) || math.Abs(y) > f.half {
			return fmt.Errorf("%s: y=%v thickness=%v: %w", methodHorizontalWall, y, thickness, ErrBadSize)
		}
		r, err := geometry.NewRect(geometry.Pt(-f.half, y-thickness/2), 2*f.half, thickness, 0)
		if err != nil {
			return fmt.Errorf("%s: %w", methodHorizontalWall, err)
		}
		if err := f.Place(r); err != nil {
			return fmt.Errorf("%s: %w", methodHorizontalWall, err)
		}

		return nil
	}
}
