package prm

import (
	"errors"

	"github.com/katalvlaran/roadmap/quadtree"
	"github.com/katalvlaran/roadmap/workspace"
)

// Sentinel errors for planner operations.
var (
	// ErrNilWorkspace is returned by New for a nil workspace.
	ErrNilWorkspace = errors.New("prm: workspace is nil")

	// ErrNilRand is returned by New for a nil random source.
	ErrNilRand = errors.New("prm: random source is nil")

	// ErrBadConfig wraps every invalid option value.
	ErrBadConfig = errors.New("prm: invalid configuration")

	// ErrAlreadySampled is returned when Sample runs on a planner that already has samples.
	ErrAlreadySampled = errors.New("prm: roadmap already sampled")

	// ErrEmptyNeighborIndex is returned by Connect and Path before any batch was sampled.
	ErrEmptyNeighborIndex = errors.New("prm: neighbor index is empty")

	// ErrInvalidQueryPoint is returned when a query endpoint is outside the
	// workspace or inside an obstacle.
	ErrInvalidQueryPoint = errors.New("prm: invalid query point")

	// ErrNoPathFound is returned when start and end are not connected in the roadmap.
	ErrNoPathFound = errors.New("prm: no path found")
)

// Re-exported so callers can branch without importing the lower packages.
var (
	ErrWorldSaturated      = workspace.ErrWorldSaturated
	ErrMalformedIdentifier = quadtree.ErrMalformedIdentifier
)
