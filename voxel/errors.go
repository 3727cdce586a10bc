package voxel

import "errors"

var (
	// ErrBadDims indicates a grid dimension that is zero or negative.
	ErrBadDims = errors.New("voxel: grid dimensions must all be positive")
	// ErrBadOrder indicates a multigrid level count below one.
	ErrBadOrder = errors.New("voxel: multigrid order must be at least 1")
	// ErrLevelIndex indicates a requested resolution level outside [0, Order).
	ErrLevelIndex = errors.New("voxel: resolution level out of range")
)
