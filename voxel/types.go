// Package voxel defines core types and sentinel errors for the lattice
// primitives of github.com/biofilmkit/biogrid.
package voxel

// Dims describes the shape of the finest simulation grid: N voxels
// along i, M along j, L along k. The zero value is invalid; call
// Validate before use.
type Dims struct {
	N, M, L int
}

// Validate reports ErrBadDims unless all three dimensions are positive.
func (d Dims) Validate() error {
	if d.N < 1 || d.M < 1 || d.L < 1 {
		return ErrBadDims
	}
	return nil
}

// Count returns the total number of voxels, N·M·L.
func (d Dims) Count() int { return d.N * d.M * d.L }

// Index maps (i,j,k) to a row-major buffer offset: i*M*L + j*L + k.
// The caller must hold the in-bounds invariant; use InBounds to check.
// Complexity: O(1).
func (d Dims) Index(i, j, k int) int { return i*d.M*d.L + j*d.L + k }

// Coordinate converts a row-major offset back to (i,j,k).
// Complexity: O(1).
func (d Dims) Coordinate(idx int) (i, j, k int) {
	i = idx / (d.M * d.L)
	rem := idx % (d.M * d.L)
	return i, rem / d.L, rem % d.L
}

// InBounds reports whether (i,j,k) lies inside [0,N)×[0,M)×[0,L).
// Complexity: O(1).
func (d Dims) InBounds(i, j, k int) bool {
	return i >= 0 && i < d.N && j >= 0 && j < d.M && k >= 0 && k < d.L
}

// InBounds2D reports whether (i,j) lies inside [0,N)×[0,M), ignoring
// the k axis. Used by the fixed-plane 2D queries.
func (d Dims) InBounds2D(i, j int) bool {
	return i >= 0 && i < d.N && j >= 0 && j < d.M
}

// coarser halves every dimension (rounding up, never below one),
// producing the shape one multigrid level above this one.
func (d Dims) coarser() Dims {
	half := func(n int) int {
		if n <= 1 {
			return 1
		}
		return (n + 1) / 2
	}
	return Dims{N: half(d.N), M: half(d.M), L: half(d.L)}
}
