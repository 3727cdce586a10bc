// Package occupancy maintains the voxel occupancy classification of the
// finest simulation grid: which voxels hold biomass, which are solid
// substratum ("carrier"), and which are occupied by either. On top of
// the three boolean grids it answers border-point queries (does an
// occupied voxel touch free space?), extracts connected occupied
// regions of the 2D test plane, and drives the contour walk.
//
// 🚀 What is occupancy?
//
//	Once per simulation step the diffusion/reaction solver hands over
//	the current per-species concentration fields. Refresh rebuilds all
//	three grids in one full sweep:
//
//	  1. ask the carrier oracle about the voxel; carrier voxels never
//	     count as biomass and skip the species scan entirely;
//	  2. otherwise mark biomass on the first species with a strictly
//	     positive finest-level concentration at the voxel;
//	  3. occupied = biomass OR carrier.
//
//	Between refreshes every query is read-only, so the solver, the
//	boundary-condition code and the contour walker may interleave
//	lookups freely without synchronization.
//
// ✨ Key surface:
//   - Matrix.Refresh             — full-sweep rebuild, O(N·M·L·S)
//   - Matrix.CarrierOrBiomass2D  — total 2D occupancy query at plane k=1
//   - Matrix.BorderPoint(2D)     — 26-neighbor interface test
//   - Matrix.Regions2D           — 8-connected occupied regions of the plane
//   - Matrix.Contour             — ordered border trace (package contour)
//
// Two bounds policies, deliberately distinct (do not conflate them):
//
//   - CarrierOrBiomass2D is a total function: out-of-range input yields
//     false, because "outside the simulated domain" reads as unoccupied.
//   - BorderPoint skips out-of-range neighbors instead: an edge voxel is
//     judged only on the neighbors that exist inside the grid, so the
//     domain edge itself never makes a voxel a border point.
//
// Errors:
//
//   - voxel.ErrBadDims / voxel.ErrBadOrder — fatal misconfiguration at New.
//   - ErrNilField      — a species carries no concentration field.
//   - ErrFieldMismatch — a species field disagrees with the matrix shape
//     or level count.
//   - ErrNoStart       — Contour found no occupied voxel in the test plane.
//
// Concurrency: none needed. Refresh is the only mutator and runs to
// completion inside the solver's sequential loop.
package occupancy
