package occupancy_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biofilmkit/biogrid/occupancy"
	"github.com/biofilmkit/biogrid/voxel"
)

// planeMatrix builds a refreshed matrix whose occupancy in the test
// plane follows the given 2D carrier predicate (constant along k).
func planeMatrix(t *testing.T, n, m int, occ func(i, j int) bool) *occupancy.Matrix {
	t.Helper()
	d := voxel.Dims{N: n, M: m, L: 3}
	carrier := func(i, j, k int) bool { return occ(i, j) }
	mx, err := occupancy.New(occupancy.Config{Dims: d, Order: 1, Carrier: carrier})
	require.NoError(t, err)
	require.NoError(t, mx.Refresh(nil))
	return mx
}

// TestRegions2D_TwoIslands separates two occupied blocks that do not
// touch even diagonally.
func TestRegions2D_TwoIslands(t *testing.T) {
	m := planeMatrix(t, 6, 6, func(i, j int) bool {
		inA := i <= 1 && j <= 1 // 2×2 block at the origin
		inB := i >= 4 && j >= 4 // 2×2 block at the far corner
		return inA || inB
	})

	regions := m.Regions2D()
	require.Len(t, regions, 2)

	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{4, 4}, sizes)
}

// TestRegions2D_DiagonalTouch verifies 8-connectivity: two cells
// meeting only at a corner form a single region, matching what the
// contour walker can traverse.
func TestRegions2D_DiagonalTouch(t *testing.T) {
	m := planeMatrix(t, 4, 4, func(i, j int) bool {
		return (i == 1 && j == 1) || (i == 2 && j == 2)
	})

	regions := m.Regions2D()
	require.Len(t, regions, 1)
	assert.Len(t, regions[0], 2)
}

// TestRegions2D_EmptyPlane yields no regions.
func TestRegions2D_EmptyPlane(t *testing.T) {
	m := planeMatrix(t, 3, 3, func(i, j int) bool { return false })
	assert.Nil(t, m.Regions2D())
}

// TestRegions2D_CoordinateRoundTrip maps the region indices back to
// coordinates and checks they are exactly the occupied cells.
func TestRegions2D_CoordinateRoundTrip(t *testing.T) {
	occ := func(i, j int) bool { return j == 0 } // southern row
	m := planeMatrix(t, 4, 3, occ)

	regions := m.Regions2D()
	require.Len(t, regions, 1)

	got := make(map[[2]int]bool)
	for _, idx := range regions[0] {
		i, j := m.Coordinate2D(idx)
		got[[2]int{i, j}] = true
	}
	want := map[[2]int]bool{{0, 0}: true, {1, 0}: true, {2, 0}: true, {3, 0}: true}
	assert.Equal(t, want, got)
}
