package contour

import "errors"

var (
	// ErrBadSteps indicates Options.MaxSteps below one.
	ErrBadSteps = errors.New("contour: MaxSteps must be at least 1")
	// ErrStartUnoccupied indicates the starting node is not occupied.
	ErrStartUnoccupied = errors.New("contour: starting node is not occupied")
	// ErrOpenContour indicates the step guard ran out before the walk
	// returned to its starting node; the traced prefix is still returned.
	ErrOpenContour = errors.New("contour: step limit reached before contour closed")
)
