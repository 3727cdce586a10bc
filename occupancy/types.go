// Package occupancy defines configuration types for the occupancy
// matrix of github.com/biofilmkit/biogrid.
package occupancy

import "github.com/biofilmkit/biogrid/voxel"

// Plane is the fixed k index of the 2D test geometry: the middle (and
// only usable) slab of the tube-reactor test mode. All *2D queries and
// the contour walk read this plane.
const Plane = 1

// CarrierFunc is the substratum oracle: it reports whether voxel
// (i,j,k) is solid carrier material. It must be a pure, deterministic
// function of position for the duration of a simulation step. A nil
// CarrierFunc means no carrier anywhere.
type CarrierFunc func(i, j, k int) bool

// Species pairs a particulate species with its multigrid concentration
// field. Refresh reads only the field's finest level; a voxel counts as
// biomass when any species has a strictly positive concentration there.
type Species struct {
	Name string
	Conc *voxel.Field
}

// Config carries everything a Matrix needs at construction: the finest
// grid shape, the multigrid level count, and the carrier oracle. It is
// an explicit value object, one per simulation run — there is no
// ambient shared context.
type Config struct {
	Dims    voxel.Dims
	Order   int
	Carrier CarrierFunc
}

// RefreshStats summarizes the last Refresh: voxel counts per class.
// Carrier and biomass are mutually exclusive, so Occupied is their sum.
type RefreshStats struct {
	Biomass  int
	Carrier  int
	Occupied int
}
