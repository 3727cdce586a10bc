// Package biogrid classifies voxel occupancy on the finest grid of a
// discretized biofilm simulation domain and traces the border of the
// occupied region.
//
// 🚀 What is biogrid?
//
//	A small, focused library that answers three questions about every
//	voxel of an N×M×L simulation grid, once per simulation step:
//		• Is it biomass? — some species has positive concentration there
//		• Is it carrier? — the substratum oracle claims it as solid
//		• Is it on the border? — occupied, with a free in-bounds neighbor
//	and, in the 2D tube-reactor test mode, walks the ordered contour of
//	an occupied region with Moore-neighbor boundary following.
//
// ✨ Why choose biogrid?
//
//   - Explicit configuration – grid shape, multigrid order and the
//     carrier oracle are threaded through one Config value, no ambient
//     shared state
//   - Flat cache-friendly grids – every 3D grid is one contiguous
//     buffer with an explicit index function
//   - Total 2D queries – "outside the domain" reads as unoccupied,
//     never as an error
//   - Pure Go – no cgo; gonum for numeric reductions, nothing else at
//     runtime
//
// Everything is organized under three subpackages:
//
//	voxel/     — Dims, flat BoolGrid, multigrid scalar Field
//	occupancy/ — the Matrix: Refresh, border queries, regions, dumps
//	contour/   — Direction, Node and the bounded Moore-neighbor Trace
//
// Quick ASCII example (test plane, 1 = occupied):
//
//	0 0 0 0
//	0 1 1 0
//	0 1 1 0
//	1 1 1 1   ← substratum floor
//
//	The contour walk starts on the floor's western cell and hugs the
//	outline of the floor-plus-colony region.
//
// Dive into examples/ for runnable scenarios and each subpackage's
// doc.go for the full contract.
package biogrid
