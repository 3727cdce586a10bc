package voxel

import "gonum.org/v1/gonum/floats"

// ScalarGrid is a flat, row-major float64 grid, one resolution level of
// a Field. Point access mirrors BoolGrid.
type ScalarGrid struct {
	dims Dims
	data []float64
}

// Dims returns the level shape.
func (s *ScalarGrid) Dims() Dims { return s.dims }

// Get reads the value at (i,j,k); the coordinate must be in bounds.
func (s *ScalarGrid) Get(i, j, k int) float64 { return s.data[s.dims.Index(i, j, k)] }

// Set writes the value at (i,j,k); the coordinate must be in bounds.
func (s *ScalarGrid) Set(i, j, k int, v float64) { s.data[s.dims.Index(i, j, k)] = v }

// Values exposes the backing slice in row-major order.
func (s *ScalarGrid) Values() []float64 { return s.data }

// Sum returns the total over all voxels of this level.
// Complexity: O(N·M·L).
func (s *ScalarGrid) Sum() float64 { return floats.Sum(s.data) }

// Max returns the largest value on this level.
// Complexity: O(N·M·L).
func (s *ScalarGrid) Max() float64 { return floats.Max(s.data) }

// Field is a multigrid scalar field: order resolution levels of the
// same quantity, level order-1 at the full finest shape and every
// coarser level halved per axis. The diffusion solver reads and writes
// all levels; occupancy classification reads only Finest().
type Field struct {
	levels []*ScalarGrid
}

// NewField allocates a zeroed field with the given finest shape and
// number of resolution levels.
// Returns ErrBadDims or ErrBadOrder on misconfiguration.
// Complexity: O(N·M·L) memory (the coarser levels add a constant factor).
func NewField(finest Dims, order int) (*Field, error) {
	if err := finest.Validate(); err != nil {
		return nil, err
	}
	if order < 1 {
		return nil, ErrBadOrder
	}
	levels := make([]*ScalarGrid, order)
	d := finest
	for l := order - 1; l >= 0; l-- {
		levels[l] = &ScalarGrid{dims: d, data: make([]float64, d.Count())}
		d = d.coarser()
	}
	return &Field{levels: levels}, nil
}

// Order returns the number of resolution levels.
func (f *Field) Order() int { return len(f.levels) }

// Level returns resolution level l, where level Order-1 is the finest.
// Returns ErrLevelIndex for l outside [0, Order).
func (f *Field) Level(l int) (*ScalarGrid, error) {
	if l < 0 || l >= len(f.levels) {
		return nil, ErrLevelIndex
	}
	return f.levels[l], nil
}

// Finest returns the highest-resolution level, index Order-1.
func (f *Field) Finest() *ScalarGrid { return f.levels[len(f.levels)-1] }
