package occupancy

import "github.com/biofilmkit/biogrid/contour"

// Contour traces the ordered border of the first occupied region found
// in the test plane k=Plane. The starting node is the occupied cell
// with the lowest (i,j) in row-major scan order; its western neighbor
// is necessarily free, so it sits on the region's border and a
// W-initial scan probes exactly that free cell first.
//
// The walk runs against CarrierOrBiomass2D, so coordinates outside the
// domain read as unoccupied. Termination and the bounded-step guard
// follow contour.Trace: a closed contour returns nil error, a
// degenerate region returns the partial trace with
// contour.ErrOpenContour.
//
// Returns ErrNoStart when the plane holds no occupied voxel.
//
// Complexity: O(N·M) to find the start plus O(opts.MaxSteps) to walk.
func (m *Matrix) Contour(opts contour.Options) ([]contour.Node, error) {
	for i := 0; i < m.dims.N; i++ {
		for j := 0; j < m.dims.M; j++ {
			if m.CarrierOrBiomass2D(i, j) {
				return contour.Trace(m.CarrierOrBiomass2D, contour.Node{I: i, J: j}, opts)
			}
		}
	}
	return nil, ErrNoStart
}
