// Package contour traces the ordered outline of an occupied region in a
// 2D lattice plane using Moore-neighbor boundary following.
//
// 🚀 What is contour?
//
//	Given a predicate that answers "is (i,j) occupied?" and one known
//	border cell, Trace walks the region's boundary cell by cell and
//	returns the ordered sequence of border nodes. The walk scans the
//	eight compass octants around the current cell:
//
//	  - neighbor occupied   → step onto it, record it, rotate the scan
//	    direction clockwise by three octants (135°) so the next scan
//	    starts from the side most likely to find the following border
//	    cell without re-entering the interior;
//	  - neighbor unoccupied → rotate counter-clockwise by one octant
//	    (45°) and retest without moving.
//
//	The two rotations are deliberately not inverses of each other; the
//	asymmetry is what makes the walk hug the boundary.
//
// ✨ Key types:
//   - Direction — 8-way compass octant with CCW (45°) and CW (135°) rotation
//   - Node      — immutable 2D lattice coordinate with Next stepping
//   - Occupied  — the occupancy predicate supplied by the caller
//   - Options   — initial direction and the bounded-step guard
//
// Termination:
//
//	A walk ends when it returns to its starting node (closed contour)
//	or when Options.MaxSteps scan steps have been spent, in which case
//	the partial sequence is returned together with ErrOpenContour. The
//	guard is what keeps a degenerate region — say a single isolated
//	cell with no occupied neighbors at all — from looping forever.
//
// Errors:
//
//   - ErrBadSteps        — Options.MaxSteps below one.
//   - ErrStartUnoccupied — the starting node fails the predicate.
//   - ErrOpenContour     — step guard exhausted before closing the loop.
//
// Complexity: O(MaxSteps) time, O(len(contour)) memory.
package contour
