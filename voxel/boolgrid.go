package voxel

// BoolGrid is a flat, row-major boolean voxel grid. It is a plain value
// container: nothing here interprets what "true" means — the occupancy
// package layers biomass/carrier semantics on top.
type BoolGrid struct {
	dims Dims
	data []bool
}

// NewBoolGrid allocates an all-false grid with the given shape.
// Returns ErrBadDims if any dimension is not positive.
// Complexity: O(N·M·L) memory.
func NewBoolGrid(d Dims) (*BoolGrid, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &BoolGrid{dims: d, data: make([]bool, d.Count())}, nil
}

// Dims returns the grid shape.
func (g *BoolGrid) Dims() Dims { return g.dims }

// Get reads the voxel at (i,j,k). The coordinate must be in bounds;
// use At for the checked variant. Complexity: O(1).
func (g *BoolGrid) Get(i, j, k int) bool { return g.data[g.dims.Index(i, j, k)] }

// Set writes the voxel at (i,j,k). The coordinate must be in bounds.
// Complexity: O(1).
func (g *BoolGrid) Set(i, j, k int, v bool) { g.data[g.dims.Index(i, j, k)] = v }

// At reads the voxel at (i,j,k), reporting ok=false instead of
// panicking when the coordinate is out of bounds. Callers choose their
// own out-of-bounds policy (substitute false, or skip the candidate).
func (g *BoolGrid) At(i, j, k int) (v, ok bool) {
	if !g.dims.InBounds(i, j, k) {
		return false, false
	}
	return g.data[g.dims.Index(i, j, k)], true
}

// Fill sets every voxel to v. Complexity: O(N·M·L).
func (g *BoolGrid) Fill(v bool) {
	for i := range g.data {
		g.data[i] = v
	}
}

// CountTrue returns the number of true voxels. Complexity: O(N·M·L).
func (g *BoolGrid) CountTrue() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same shape and contents.
func (g *BoolGrid) Equal(o *BoolGrid) bool {
	if g.dims != o.dims {
		return false
	}
	for i, v := range g.data {
		if v != o.data[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent deep copy.
func (g *BoolGrid) Clone() *BoolGrid {
	c := &BoolGrid{dims: g.dims, data: make([]bool, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Values exposes the backing slice in row-major order. Mutating it
// mutates the grid.
func (g *BoolGrid) Values() []bool { return g.data }
