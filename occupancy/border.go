package occupancy

// BorderPoint reports whether the voxel (i,j,k) is occupied and lies on
// the occupied/unoccupied interface: at least one of its in-bounds
// Moore neighbors (the 3×3×3 block around it) is unoccupied.
//
// Out-of-range neighbors are skipped, not substituted: an edge voxel is
// a border point only if an interior neighbor is empty, never merely
// because the domain edge is "outside". An unoccupied or out-of-range
// center voxel is not a border point.
//
// Complexity: O(27) = O(1).
func (m *Matrix) BorderPoint(i, j, k int) bool {
	v, ok := m.occup.At(i, j, k)
	if !ok || !v {
		return false
	}
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			for dk := -1; dk <= 1; dk++ {
				if nv, ok := m.occup.At(i+di, j+dj, k+dk); ok && !nv {
					return true
				}
			}
		}
	}
	return false
}

// BorderPoint2D is BorderPoint restricted to the test plane k=Plane.
func (m *Matrix) BorderPoint2D(i, j int) bool {
	return m.BorderPoint(i, j, Plane)
}
