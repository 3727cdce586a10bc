package occupancy

import (
	"fmt"

	"github.com/biofilmkit/biogrid/voxel"
)

// Matrix is the single source of truth for voxel occupancy at the
// finest grid resolution. It owns three same-shaped boolean grids —
// biomass, carrier, occupied — rebuilt in place by Refresh once per
// simulation step and read-only between refreshes.
//
// Invariants, holding after every completed Refresh:
//
//	occupied(v) == biomass(v) || carrier(v)   for every voxel v
//	carrier(v)  == true  ⇒  biomass(v) == false
type Matrix struct {
	dims    voxel.Dims
	order   int
	isCarr  CarrierFunc
	biomass *voxel.BoolGrid
	carrier *voxel.BoolGrid
	occup   *voxel.BoolGrid
	stats   RefreshStats
}

// New constructs a Matrix for the given configuration. The shape and
// level count are fixed for the matrix's lifetime.
// Returns voxel.ErrBadDims or voxel.ErrBadOrder on misconfiguration;
// both are fatal to the caller, not recoverable here.
// Complexity: O(N·M·L) memory.
func New(cfg Config) (*Matrix, error) {
	if err := cfg.Dims.Validate(); err != nil {
		return nil, err
	}
	if cfg.Order < 1 {
		return nil, voxel.ErrBadOrder
	}
	biomass, err := voxel.NewBoolGrid(cfg.Dims)
	if err != nil {
		return nil, err
	}
	carrier, err := voxel.NewBoolGrid(cfg.Dims)
	if err != nil {
		return nil, err
	}
	occup, err := voxel.NewBoolGrid(cfg.Dims)
	if err != nil {
		return nil, err
	}
	return &Matrix{
		dims:    cfg.Dims,
		order:   cfg.Order,
		isCarr:  cfg.Carrier,
		biomass: biomass,
		carrier: carrier,
		occup:   occup,
	}, nil
}

// Dims returns the finest grid shape.
func (m *Matrix) Dims() voxel.Dims { return m.dims }

// Order returns the multigrid level count; species fields must carry
// the same number of levels.
func (m *Matrix) Order() int { return m.order }

// Biomass exposes the biomass grid. Callers must treat it as read-only.
func (m *Matrix) Biomass() *voxel.BoolGrid { return m.biomass }

// Carrier exposes the carrier grid. Callers must treat it as read-only.
func (m *Matrix) Carrier() *voxel.BoolGrid { return m.carrier }

// Occupied exposes the combined grid. Callers must treat it as read-only.
func (m *Matrix) Occupied() *voxel.BoolGrid { return m.occup }

// Stats returns the voxel counts of the last Refresh. The zero value is
// returned before the first refresh.
func (m *Matrix) Stats() RefreshStats { return m.stats }

// carrierAt queries the oracle, treating a nil oracle as "no carrier".
func (m *Matrix) carrierAt(i, j, k int) bool {
	return m.isCarr != nil && m.isCarr(i, j, k)
}

// Refresh rebuilds all three grids from the current species
// concentrations and the carrier oracle. Every voxel is visited; the
// rebuild is all-or-nothing from the caller's perspective. Per voxel:
//
//  1. carrier voxels (per the oracle) are never biomass and skip the
//     species scan entirely;
//  2. otherwise the species list is scanned in order and biomass is set
//     on the first strictly positive finest-level concentration — the
//     result is a logical OR over species, the early stop is only an
//     optimization;
//  3. the carrier grid is recomputed from the oracle unconditionally;
//  4. occupied = biomass OR carrier.
//
// Species whose finest level holds no positive entry anywhere are
// dropped from the per-voxel scan up front; the classification result
// is identical.
//
// Returns ErrNilField or ErrFieldMismatch (wrapped with the species
// name) when a species field disagrees with the matrix configuration;
// the grids are untouched in that case.
//
// Complexity: O(N·M·L·S) worst case, S = number of species.
func (m *Matrix) Refresh(species []Species) error {
	active := make([]*voxel.ScalarGrid, 0, len(species))
	for _, sp := range species {
		if sp.Conc == nil {
			return fmt.Errorf("%w: %s", ErrNilField, sp.Name)
		}
		if sp.Conc.Order() != m.order || sp.Conc.Finest().Dims() != m.dims {
			return fmt.Errorf("%w: %s", ErrFieldMismatch, sp.Name)
		}
		finest := sp.Conc.Finest()
		if finest.Max() > 0 {
			active = append(active, finest)
		}
	}

	var stats RefreshStats
	for i := 0; i < m.dims.N; i++ {
		for j := 0; j < m.dims.M; j++ {
			for k := 0; k < m.dims.L; k++ {
				biomass := false
				if !m.carrierAt(i, j, k) {
					for _, finest := range active {
						if finest.Get(i, j, k) > 0 {
							biomass = true
							break
						}
					}
				}
				// Re-query the oracle unconditionally; it is pure for
				// the step, so this is an idempotent guard.
				carrier := m.carrierAt(i, j, k)
				occupied := biomass || carrier
				m.biomass.Set(i, j, k, biomass)
				m.carrier.Set(i, j, k, carrier)
				m.occup.Set(i, j, k, occupied)
				if biomass {
					stats.Biomass++
				}
				if carrier {
					stats.Carrier++
				}
				if occupied {
					stats.Occupied++
				}
			}
		}
	}
	m.stats = stats
	return nil
}

// CarrierOrBiomass2D reports whether (i,j) in the test plane k=Plane is
// occupied. It is a total function: any out-of-range coordinate —
// including a grid too thin to contain the plane — yields false, never
// an error, because callers treat "outside the simulated domain" as
// simply unoccupied.
// Complexity: O(1).
func (m *Matrix) CarrierOrBiomass2D(i, j int) bool {
	v, ok := m.occup.At(i, j, Plane)
	return ok && v
}
