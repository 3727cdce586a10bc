package contour

// Options configures a boundary trace.
//
// Fields:
//   - Dir      — initial scan direction. The conventional start is W:
//     entering from outside the region on its western side guarantees
//     the first probe looks back toward free space.
//   - MaxSteps — bound on the total number of scan steps (both probes
//     and moves). When exhausted before the walk returns to its start,
//     Trace returns the partial sequence with ErrOpenContour.
type Options struct {
	Dir      Direction
	MaxSteps int
}

// DefaultMaxSteps bounds a trace when the caller has no better
// perimeter estimate of its own.
const DefaultMaxSteps = 1024

// DefaultOptions returns the conventional trace configuration:
// scan starting W, DefaultMaxSteps step guard.
func DefaultOptions() Options {
	return Options{Dir: W, MaxSteps: DefaultMaxSteps}
}

// Trace walks the boundary of the occupied region containing start and
// returns the ordered sequence of border nodes, beginning with start
// itself.
//
// Moore-neighbor following: probe the neighbor in the current scan
// direction. Occupied → move there, append it, rotate CW (135°).
// Unoccupied → rotate CCW (45°) in place and probe again. The walk
// closes when it steps back onto start.
//
// Returns ErrStartUnoccupied if occ rejects start, ErrBadSteps for a
// non-positive step guard, and ErrOpenContour (with the partial trace)
// when the guard runs out — the degenerate single-cell region with no
// occupied neighbor is the canonical case.
//
// Complexity: O(MaxSteps) time, O(len(result)) memory.
func Trace(occ Occupied, start Node, opts Options) ([]Node, error) {
	if opts.MaxSteps < 1 {
		return nil, ErrBadSteps
	}
	if !occ(start.I, start.J) {
		return nil, ErrStartUnoccupied
	}

	nodes := []Node{start}
	node, dir := start, opts.Dir
	for step := 0; step < opts.MaxSteps; step++ {
		if node.NextOccupied(dir, occ) {
			node = node.Next(dir)
			if node == start {
				return nodes, nil
			}
			nodes = append(nodes, node)
			dir = dir.CW()
		} else {
			dir = dir.CCW()
		}
	}
	return nodes, ErrOpenContour
}
