// SPDX-License-Identifier: MIT
// Package: roadmap/builder
//
// impl_random_rects.go - RandomRects(n, maxSide, pad).
//
// Model (per obstacle, per draw):
//   - corner x, y ∈ U(−half, half−maxSide)
//   - width  ∈ U(0, min(half/2, half−x, maxSide)), height likewise with y
//   - obstructed region is the box grown by pad on every side
//
// Contract:
//   - n ≥ 1 (ErrTooFewObstacles).
//   - 0 < maxSide < 2·half, pad ≥ 0, all finite (ErrBadSize).
//   - cfg.rng non-nil (ErrNeedRandSource).
//   - Each obstacle gets cfg.maxAttempts draws before ErrConstructFailed.
//
// Complexity: O(n · maxAttempts · placed).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadmap/geometry"
)

const methodRandomRects = "RandomRects"

// RandomRects returns a Constructor placing n non-overlapping padded boxes.
func RandomRects(n int, maxSide, pad float64) Constructor {
	return func(f *Field, cfg builderConfig) error {
		// 1) Validate
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodRandomRects, n, ErrTooFewObstacles)
		}
		if !finite(maxSide) || maxSide <= 0 || maxSide >= 2*f.half {
			return fmt.Errorf("%s: maxSide=%v not in (0, %v): %w", methodRandomRects, maxSide, 2*f.half, ErrBadSize)
		}
		if !finite(pad) || pad < 0 {
			return fmt.Errorf("%s: pad=%v < 0: %w", methodRandomRects, pad, ErrBadSize)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRects, ErrNeedRandSource)
		}

		// 2) Draw and place
		h := f.half
		uniform := func(lo, hi float64) float64 { return lo + cfg.rng.Float64()*(hi-lo) }
		for placed := 0; placed < n; placed++ {
			ok := false
			for attempt := 0; attempt < cfg.maxAttempts && !ok; attempt++ {
				x := uniform(-h, h-maxSide)
				y := uniform(-h, h-maxSide)
				w := uniform(0, math.Min(h/2, math.Min(h-x, maxSide)))
				ht := uniform(0, math.Min(h/2, math.Min(h-y, maxSide)))

				r, err := geometry.NewRect(geometry.Pt(x, y), w, ht, pad)
				if err != nil {
					return fmt.Errorf("%s: %w", methodRandomRects, err)
				}
				ok = f.fits(r)
				if ok {
					f.obstacles = append(f.obstacles, r)
				}
			}
			if !ok {
				return fmt.Errorf("%s: obstacle %d not placed after %d attempts: %w",
					methodRandomRects, placed, cfg.maxAttempts, ErrConstructFailed)
			}
		}

		return nil
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
