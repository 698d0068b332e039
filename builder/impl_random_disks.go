// SPDX-License-Identifier: MIT
// Package: roadmap/builder
//
// impl_random_disks.go - RandomDisks(n, minR, maxR).
//
// Model: radius ∈ U(minR, maxR), center ∈ U(−half+r, half−r)², so every disk
// lies inside the workspace. Overlap is judged on bounding boxes like every
// other placement.
//
// Contract:
//   - n ≥ 1 (ErrTooFewObstacles).
//   - 0 < minR ≤ maxR < half (ErrBadSize).
//   - cfg.rng non-nil (ErrNeedRandSource).

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadmap/geometry"
)

const methodRandomDisks = "RandomDisks"

// RandomDisks returns a Constructor placing n non-overlapping disks.
func RandomDisks(n int, minR, maxR float64) Constructor {
	return func(f *Field, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodRandomDisks, n, ErrTooFewObstacles)
		}
		if !finite(minR) || !finite(maxR) || minR <= 0 || minR > maxR || maxR >= f.half {
			return fmt.Errorf("%s: radii [%v, %v] invalid for half=%v: %w",
				methodRandomDisks, minR, maxR, f.half, ErrBadSize)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomDisks, ErrNeedRandSource)
		}

		uniform := func(lo, hi float64) float64 { return lo + cfg.rng.Float64()*(hi-lo) }
		for placed := 0; placed < n; placed++ {
			ok := false
			for attempt := 0; attempt < cfg.maxAttempts && !ok; attempt++ {
				r := uniform(minR, maxR)
				lim := f.half - r
				c, err := geometry.NewCircle(geometry.Pt(uniform(-lim, lim), uniform(-lim, lim)), r)
				if err != nil {
					return fmt.Errorf("%s: %w", methodRandomDisks, err)
				}
				ok = f.fits(c)
				if ok {
					f.obstacles = append(f.obstacles, c)
				}
			}
			if !ok {
				return fmt.Errorf("%s: obstacle %d not placed after %d attempts: %w",
					methodRandomDisks, placed, cfg.maxAttempts, ErrConstructFailed)
			}
		}

		return nil
	}
}
