package occupancy

import "strings"

// String renders the combined occupancy grid as text, one k-plane at a
// time: within a plane, each line runs along i (west to east) and lines
// are ordered from j=M-1 down to 0 (north at the top). Occupied voxels
// print as '1', free voxels as '0'; planes are separated by a blank
// line. Intended for debugging dumps and golden tests, not as a
// stable interchange format.
func (m *Matrix) String() string {
	var b strings.Builder
	b.Grow((m.dims.N + 1) * m.dims.M * m.dims.L)
	for k := 0; k < m.dims.L; k++ {
		if k > 0 {
			b.WriteByte('\n')
		}
		for j := m.dims.M - 1; j >= 0; j-- {
			for i := 0; i < m.dims.N; i++ {
				if m.occup.Get(i, j, k) {
					b.WriteByte('1')
				} else {
					b.WriteByte('0')
				}
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}
