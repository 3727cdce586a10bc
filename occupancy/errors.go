package occupancy

import "errors"

var (
	// ErrNilField indicates a species without a concentration field.
	ErrNilField = errors.New("occupancy: species has nil concentration field")
	// ErrFieldMismatch indicates a species field whose finest shape or
	// level count differs from the matrix configuration.
	ErrFieldMismatch = errors.New("occupancy: species field does not match matrix shape or order")
	// ErrNoStart indicates an empty test plane: no occupied voxel exists
	// to anchor a contour walk.
	ErrNoStart = errors.New("occupancy: no occupied voxel in the test plane")
)
