// Package voxel provides the lattice primitives shared by the occupancy
// and contour packages: grid dimensions with row-major indexing, a flat
// boolean voxel grid, and a multigrid scalar field whose finest level
// carries per-voxel concentrations.
//
// 🚀 What is voxel?
//
//	The finest grid of a discretized simulation domain is an N×M×L box
//	of voxels. Rather than nesting slices three levels deep, every grid
//	here is a single contiguous buffer addressed by
//
//	  Index(i,j,k) = i*M*L + j*L + k
//
//	which keeps the hot refresh/scan loops cache-friendly and makes
//	whole-grid comparison and cloning a single slice operation.
//
// ✨ Key types:
//   - Dims       — validated (N,M,L) box with Index/Coordinate/InBounds
//   - BoolGrid   — flat boolean grid with checked and unchecked access
//   - Field      — multigrid scalar field; level Order-1 is the finest
//   - ScalarGrid — flat float64 grid with Sum/Max reductions
//
// Errors:
//
//   - ErrBadDims    — a dimension is zero or negative.
//   - ErrBadOrder   — multigrid level count is below one.
//   - ErrLevelIndex — a requested resolution level does not exist.
//
// Complexity: all point accessors are O(1); whole-grid operations are
// O(N·M·L).
package voxel
