package occupancy

// Regions2D finds all 8-connected regions of occupied cells in the test
// plane k=Plane. Each region is a slice of row-major plane indices
// (i*M + j) in BFS discovery order; use Coordinate2D to map an index
// back to (i,j). A plane with no occupied cell yields a nil slice.
//
// Diagonal connectivity matches the contour walk: two cells the walker
// can step between belong to the same region.
//
// Time:   O(N·M·8).
// Memory: O(N·M) for visited flags and output.
func (m *Matrix) Regions2D() [][]int {
	total := m.dims.N * m.dims.M
	seen := make([]bool, total)
	var regions [][]int

	for i := 0; i < m.dims.N; i++ {
		for j := 0; j < m.dims.M; j++ {
			if !m.CarrierOrBiomass2D(i, j) {
				continue
			}
			i0 := m.index2D(i, j)
			if seen[i0] {
				continue
			}
			// BFS to collect the region.
			queue := []int{i0}
			seen[i0] = true
			var region []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				region = append(region, u)
				ui, uj := m.Coordinate2D(u)
				for di := -1; di <= 1; di++ {
					for dj := -1; dj <= 1; dj++ {
						vi, vj := ui+di, uj+dj
						if !m.CarrierOrBiomass2D(vi, vj) {
							continue
						}
						v := m.index2D(vi, vj)
						if !seen[v] {
							seen[v] = true
							queue = append(queue, v)
						}
					}
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}

// index2D maps (i,j) to a row-major plane index: i*M + j.
func (m *Matrix) index2D(i, j int) int { return i*m.dims.M + j }

// Coordinate2D converts a row-major plane index back to (i,j).
func (m *Matrix) Coordinate2D(idx int) (i, j int) {
	return idx / m.dims.M, idx % m.dims.M
}
